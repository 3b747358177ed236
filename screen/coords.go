package screen

import "github.com/jakecoffman/cp"

// ToWorld converts a level-editor coordinate into world space.
//
// Editor space has its origin at the top left of the whole level with Y
// pointing down; world space has its origin at the centre with Y pointing up:
//
//	(0,0) -- x --> (w,0)               (0,h/2)
//	  |                                   |
//	  y                 ->  (-w/2,0) --- (0,0) --- (w/2,0)
//	  v                                   |
//	(0,h)                              (0,-h/2)
//
// The Y term is negated because the axes point opposite ways. Editor rows are
// inclusive of their lower bound and world rows are not, which costs one unit
// on the Y axis.
func ToWorld(p cp.Vector, gridPixelWidth, gridPixelHeight int) cp.Vector {
	return cp.Vector{
		X: p.X - float64(gridPixelWidth/2),
		Y: -(p.Y - float64(gridPixelHeight/2)) - 1,
	}
}

// ToEditor is the inverse of ToWorld.
func ToEditor(p cp.Vector, gridPixelWidth, gridPixelHeight int) cp.Vector {
	return cp.Vector{
		X: p.X + float64(gridPixelWidth/2),
		Y: float64(gridPixelHeight/2) - 1 - p.Y,
	}
}

// ToWorld converts an editor coordinate using the grid's pixel size.
func (g *Grid) ToWorld(p cp.Vector) cp.Vector {
	return ToWorld(p, g.width, g.height)
}

// ToEditor converts a world coordinate using the grid's pixel size.
func (g *Grid) ToEditor(p cp.Vector) cp.Vector {
	return ToEditor(p, g.width, g.height)
}

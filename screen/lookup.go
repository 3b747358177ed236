package screen

import "github.com/jakecoffman/cp"

// Find returns the screen containing p. Points outside the tiled rectangle
// report false.
func (g *Grid) Find(p cp.Vector) (Screen, bool) {
	return g.FindWithMargin(p, 0, 0)
}

// FindWithMargin inflates every screen by marginX and marginY before testing,
// so a sprite whose centre sits just past the edge of the level still resolves
// to the screen it belongs to. When inflated screens overlap the first match
// in row-major order wins.
func (g *Grid) FindWithMargin(p cp.Vector, marginX, marginY float64) (Screen, bool) {
	for _, s := range g.screens {
		if s.XRange.inflate(marginX).Contains(p.X) && s.YRange.inflate(marginY).Contains(p.Y) {
			return s, true
		}
	}
	return Screen{}, false
}

// Above returns the screen one row above the screen containing p.
func (g *Grid) Above(p cp.Vector) (Screen, bool) {
	return g.neighbour(p, -1)
}

// Below returns the screen one row below the screen containing p.
func (g *Grid) Below(p cp.Vector) (Screen, bool) {
	return g.neighbour(p, 1)
}

func (g *Grid) neighbour(p cp.Vector, dRow int) (Screen, bool) {
	s, ok := g.Find(p)
	if !ok {
		return Screen{}, false
	}
	return g.At(s.Col, s.Row+dRow)
}

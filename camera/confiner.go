package camera

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/screencam/screen"
)

// Viewport corner indices, clockwise from the bottom right:
//
//	p2 +------------+ p3
//	   |            |
//	   |            |
//	p1 +------------+ p0
const (
	cornerBottomRight = iota
	cornerBottomLeft
	cornerTopLeft
	cornerTopRight
)

type edge [2]int

var (
	edgeRight = edge{cornerBottomRight, cornerTopRight}
	edgeLeft  = edge{cornerBottomLeft, cornerTopLeft}
	edgeUp    = edge{cornerTopLeft, cornerTopRight}
	edgeDown  = edge{cornerBottomRight, cornerBottomLeft}
)

// Confiner keeps a screen-sized camera inside the navigable screens of a grid.
type Confiner struct {
	grid          *screen.Grid
	crossingGuard bool
}

type ConfinerOption func(*Confiner)

// WithoutCrossingGuard only tests the leading edge for navigability. With the
// guard, a move whose leading edge is still inside the camera's current screen
// is refused and the axis snaps to the screen centre.
func WithoutCrossingGuard() ConfinerOption {
	return func(c *Confiner) {
		c.crossingGuard = false
	}
}

// WithCrossingGuard sets the crossing guard explicitly.
func WithCrossingGuard(enabled bool) ConfinerOption {
	return func(c *Confiner) {
		c.crossingGuard = enabled
	}
}

func NewConfiner(grid *screen.Grid, opts ...ConfinerOption) *Confiner {
	c := &Confiner{grid: grid, crossingGuard: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Corners returns the viewport corners of a camera centred on p, ordered
// bottom-right, bottom-left, top-left, top-right. The right and top edges sit
// one unit inside so the viewport covers exactly one screen of pixels.
func (c *Confiner) Corners(p cp.Vector) [4]cp.Vector {
	hw := float64(c.grid.ScreenWidth() / 2)
	hh := float64(c.grid.ScreenHeight() / 2)

	return [4]cp.Vector{
		cornerBottomRight: {X: p.X + hw - 1, Y: p.Y - hh + 1},
		cornerBottomLeft:  {X: p.X - hw, Y: p.Y - hh + 1},
		cornerTopLeft:     {X: p.X - hw, Y: p.Y + hh},
		cornerTopRight:    {X: p.X + hw - 1, Y: p.Y + hh},
	}
}

// MoveCamera moves the camera from old toward target one axis at a time,
// horizontal first. An axis only takes the target value when the leading edge
// of the viewport lands entirely on navigable screens; otherwise it snaps to
// the centre of the screen containing target, or stays put when target is off
// the grid.
func (c *Confiner) MoveCamera(old, target cp.Vector) cp.Vector {
	pos := old

	if dx := target.X - old.X; dx != 0 {
		corners := c.Corners(cp.Vector{X: target.X, Y: old.Y})
		leading := edgeLeft
		if dx > 0 {
			leading = edgeRight
		}
		if c.edgeAllowed(old, corners, leading) {
			pos.X = target.X
		} else if s, ok := c.grid.Find(target); ok {
			pos.X = s.Center().X
		}
	}

	if dy := target.Y - old.Y; dy != 0 {
		corners := c.Corners(cp.Vector{X: pos.X, Y: target.Y})
		leading := edgeDown
		if dy > 0 {
			leading = edgeUp
		}
		if c.edgeAllowed(old, corners, leading) {
			pos.Y = target.Y
		} else if s, ok := c.grid.Find(target); ok {
			pos.Y = s.Center().Y
		}
	}

	return pos
}

func (c *Confiner) edgeAllowed(old cp.Vector, corners [4]cp.Vector, e edge) bool {
	a, b := corners[e[0]], corners[e[1]]

	sa, ok := c.grid.Find(a)
	if !ok || !sa.Navigable {
		return false
	}
	sb, ok := c.grid.Find(b)
	if !ok || !sb.Navigable {
		return false
	}

	if c.crossingGuard {
		if current, ok := c.grid.Find(old); ok && (current.Contains(a) || current.Contains(b)) {
			return false
		}
	}
	return true
}

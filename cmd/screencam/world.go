package main

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/screencam/common"
	"github.com/milk9111/screencam/prefabs"
	"github.com/milk9111/screencam/screen"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePlayerGround
	collisionTypeSolid
)

const (
	// ledgeSpacing stays under the jump apex so every ledge is reachable
	// from the one below it.
	ledgeSpacing      = 144.0
	ledgeWidthFrac    = 0.4
	groundGraceFrames = 6
	// airborneSpeed is the vertical speed above which a grounded player is
	// still treated as jumping or falling.
	airborneSpeed = 50.0
)

type segment struct {
	a, b  cp.Vector
	ledge bool
}

// World is the physics side of the demo. Solid segments follow the edges of
// the navigable area of a grid, and screens that open upward get staggered
// ledges so the player can climb into them.
type World struct {
	grid  *screen.Grid
	space *cp.Space

	segments []segment

	playerBody  *cp.Body
	playerShape *cp.Shape
	groundShape *cp.Shape

	touching    bool
	groundGrace int
}

func NewWorld(grid *screen.Grid) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	w := &World{grid: grid, space: space}
	w.buildStaticShapes()
	w.setupHandlers()
	return w
}

func (w *World) navigable(col, row int) bool {
	s, ok := w.grid.At(col, row)
	return ok && s.Navigable
}

func (w *World) buildStaticShapes() {
	bottom := w.grid.Screens()[len(w.grid.Screens())-1].YRange.Start

	for _, s := range w.grid.Screens() {
		if !s.Navigable {
			continue
		}
		x0, x1 := s.XRange.Start, s.XRange.End
		y0, y1 := s.YRange.Start, s.YRange.End

		if !w.navigable(s.Col, s.Row+1) {
			w.addSegment(cp.Vector{X: x0, Y: y0}, cp.Vector{X: x1, Y: y0}, false)
		}
		if !w.navigable(s.Col, s.Row-1) {
			w.addSegment(cp.Vector{X: x0, Y: y1}, cp.Vector{X: x1, Y: y1}, false)
		}
		if !w.navigable(s.Col-1, s.Row) {
			w.addSegment(cp.Vector{X: x0, Y: y0}, cp.Vector{X: x0, Y: y1}, false)
		}
		if !w.navigable(s.Col+1, s.Row) {
			w.addSegment(cp.Vector{X: x1, Y: y0}, cp.Vector{X: x1, Y: y1}, false)
		}

		if !w.navigable(s.Col, s.Row-1) {
			continue
		}
		ledgeW := (x1 - x0) * ledgeWidthFrac
		for k := 1; float64(k)*ledgeSpacing <= y1-y0; k++ {
			y := y0 + float64(k)*ledgeSpacing
			idx := int(math.Round((y - bottom) / ledgeSpacing))
			if idx%2 == 0 {
				w.addSegment(cp.Vector{X: x0, Y: y}, cp.Vector{X: x0 + ledgeW, Y: y}, true)
			} else {
				w.addSegment(cp.Vector{X: x1 - ledgeW, Y: y}, cp.Vector{X: x1, Y: y}, true)
			}
		}
	}
}

func (w *World) addSegment(a, b cp.Vector, ledge bool) {
	shape := cp.NewSegment(w.space.StaticBody, a, b, 2)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	w.space.AddShape(shape)
	w.segments = append(w.segments, segment{a: a, b: b, ledge: ledge})
}

// AttachPlayer adds the player body centred on pos. Rotation is locked.
func (w *World) AttachPlayer(spec *prefabs.PlayerSpec, pos cp.Vector) *cp.Body {
	if w.playerBody != nil {
		w.space.RemoveShape(w.playerShape)
		w.space.RemoveShape(w.groundShape)
		w.space.RemoveBody(w.playerBody)
	}

	mass := spec.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(pos)

	shape := cp.NewBox(body, spec.Width, spec.Height, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypePlayer)

	groundShape := cp.NewBox2(body, cp.BB{
		L: -spec.Width * 0.45,
		B: -spec.Height/2 - 2,
		R: spec.Width * 0.45,
		T: -spec.Height / 2,
	}, 0)
	groundShape.SetSensor(true)
	groundShape.SetCollisionType(collisionTypePlayerGround)

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.space.AddShape(groundShape)

	w.playerBody = body
	w.playerShape = shape
	w.groundShape = groundShape
	w.groundGrace = 0
	return body
}

func (w *World) setupHandlers() {
	handler := w.space.NewCollisionHandler(collisionTypePlayerGround, collisionTypeSolid)
	handler.UserData = w
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}
		world.touching = true
		return true
	}
}

func (w *World) Step(dt float64) {
	if w.groundGrace > 0 {
		w.groundGrace--
	}
	w.touching = false
	w.space.Step(dt)
	if w.touching {
		w.groundGrace = groundGraceFrames
	}
}

func (w *World) Grounded() bool {
	return w.groundGrace > 0
}

// Airborne reports whether the player is jumping or falling.
func (w *World) Airborne() bool {
	if w.playerBody == nil {
		return false
	}
	return !w.Grounded() || math.Abs(w.playerBody.Velocity().Y) > airborneSpeed
}

func (w *World) PlayerPosition() cp.Vector {
	if w.playerBody == nil {
		return cp.Vector{}
	}
	return w.playerBody.Position()
}

func (w *World) Segments() []segment {
	return w.segments
}

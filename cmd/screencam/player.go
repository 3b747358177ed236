package main

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/screencam/prefabs"
)

// jumpCut scales upward velocity when jump is released early.
const jumpCut = 0.5

type Player struct {
	spec *prefabs.PlayerSpec
	body *cp.Body
}

func NewPlayer(spec *prefabs.PlayerSpec, world *World, pos cp.Vector) *Player {
	p := &Player{spec: spec}
	p.body = world.AttachPlayer(spec, pos)
	return p
}

func (p *Player) Update(in Input, grounded bool) {
	v := p.body.Velocity()
	vx := in.MoveX * p.spec.MoveSpeed
	vy := v.Y

	if in.JumpPressed && grounded {
		vy = p.spec.JumpSpeed
	} else if !in.Jump && vy > 0 {
		vy *= jumpCut
	}

	p.body.SetVelocity(vx, vy)
}

func (p *Player) Position() cp.Vector {
	return p.body.Position()
}

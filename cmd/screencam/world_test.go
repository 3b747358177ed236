package main

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/screencam/prefabs"
	"github.com/milk9111/screencam/screen"
)

func mustGrid(t *testing.T, template string) *screen.Grid {
	t.Helper()
	g, err := screen.NewGrid(template, 1280, 720)
	if err != nil {
		t.Fatalf("NewGrid(%q): %v", template, err)
	}
	return g
}

func countLedges(segs []segment) int {
	n := 0
	for _, s := range segs {
		if s.ledge {
			n++
		}
	}
	return n
}

func TestWorldSegments(t *testing.T) {
	cases := []struct {
		name     string
		template string
		total    int
		ledges   int
	}{
		{"single_row", "SO", 6, 0},
		{"column", "O\nS", 11, 5},
		{"mixed", "OX\nSO", 13, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld(mustGrid(t, c.template))
			segs := w.Segments()
			if len(segs) != c.total {
				t.Fatalf("segments = %d, want %d", len(segs), c.total)
			}
			if got := countLedges(segs); got != c.ledges {
				t.Fatalf("ledges = %d, want %d", got, c.ledges)
			}
		})
	}
}

func TestWorldLedgesAlternate(t *testing.T) {
	w := NewWorld(mustGrid(t, "O\nS"))

	var prevLeft *bool
	for _, s := range w.Segments() {
		if !s.ledge {
			continue
		}
		left := s.a.X == -640
		if prevLeft != nil && *prevLeft == left {
			t.Fatalf("consecutive ledges on the same side at y=%g", s.a.Y)
		}
		prevLeft = &left
	}
}

func TestWorldPlayerLands(t *testing.T) {
	w := NewWorld(mustGrid(t, "SO"))
	spec := &prefabs.PlayerSpec{Width: 48, Height: 72, Mass: 1}
	w.AttachPlayer(spec, cp.Vector{X: -640, Y: 0})

	if w.Grounded() {
		t.Fatalf("player should start in the air")
	}

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60)
	}

	p := w.PlayerPosition()
	if p.Y < -330 || p.Y > -310 {
		t.Fatalf("player y = %g, expected resting on the floor near -321", p.Y)
	}
	if !w.Grounded() || w.Airborne() {
		t.Fatalf("expected grounded player, grounded=%t airborne=%t", w.Grounded(), w.Airborne())
	}
}

package screen

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Transition governs how the camera reframes when the player crosses into a
// vertically adjacent screen.
type Transition int

const (
	Smooth Transition = iota
	Hard
)

func (t Transition) String() string {
	switch t {
	case Smooth:
		return "smooth"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Transition(%d)", int(t))
	}
}

// ParseTransition accepts "smooth" or "hard", case-insensitively.
func ParseTransition(s string) (Transition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "smooth":
		return Smooth, nil
	case "hard":
		return Hard, nil
	default:
		return Smooth, fmt.Errorf("%w: %q", ErrUnknownTransition, s)
	}
}

func (t Transition) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Transition) UnmarshalText(text []byte) error {
	parsed, err := ParseTransition(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Range is a half-open interval [Start, End).
type Range struct {
	Start float64
	End   float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Start && v < r.End
}

func (r Range) inflate(margin float64) Range {
	return Range{Start: r.Start - margin, End: r.End + margin}
}

func (r Range) String() string {
	return fmt.Sprintf("%g..%g", r.Start, r.End)
}

// Screen is one cell of a level's camera grid. Screens are values and never
// change once the grid that produced them is built.
type Screen struct {
	Col        int
	Row        int
	XRange     Range
	YRange     Range
	Start      bool
	Navigable  bool
	Fixed      bool
	Transition Transition
}

// Contains reports whether p lies inside the screen.
func (s Screen) Contains(p cp.Vector) bool {
	return s.XRange.Contains(p.X) && s.YRange.Contains(p.Y)
}

// Center returns the screen centre in world coordinates. The y ranges carry a
// +1 bias, removed here so the middle screen of an odd grid sits on the origin.
func (s Screen) Center() cp.Vector {
	return cp.Vector{
		X: (s.XRange.Start + s.XRange.End) / 2,
		Y: (s.YRange.Start+s.YRange.End)/2 - 1,
	}
}

// Indices returns (col, row), origin top-left.
func (s Screen) Indices() (int, int) {
	return s.Col, s.Row
}

func (s Screen) String() string {
	return fmt.Sprintf("screen(%d,%d) x=%s y=%s", s.Col, s.Row, s.XRange, s.YRange)
}

package screen

import "fmt"

// Override attaches authored metadata to one screen. Nil fields leave the
// screen's current value in place.
type Override struct {
	Col        int         `yaml:"col"`
	Row        int         `yaml:"row"`
	Fixed      *bool       `yaml:"fixed,omitempty"`
	Transition *Transition `yaml:"transition,omitempty"`
}

// WithOverrides returns a copy of the grid with the overrides applied in
// order. The receiver is left untouched.
func (g *Grid) WithOverrides(overrides ...Override) (*Grid, error) {
	out := *g
	out.screens = g.Screens()

	for i, o := range overrides {
		if o.Col < 0 || o.Col >= g.cols || o.Row < 0 || o.Row >= g.rows {
			return nil, fmt.Errorf("%w: override %d targets (%d,%d) in a %dx%d grid", ErrOverrideOutOfRange, i, o.Col, o.Row, g.cols, g.rows)
		}
		s := &out.screens[o.Row*g.cols+o.Col]
		if o.Fixed != nil {
			s.Fixed = *o.Fixed
		}
		if o.Transition != nil {
			s.Transition = *o.Transition
		}
	}

	return &out, nil
}

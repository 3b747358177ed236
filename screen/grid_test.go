package screen

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

const (
	testWidth  = 1280
	testHeight = 720
)

func mustGrid(t *testing.T, template string) *Grid {
	t.Helper()
	g, err := NewGrid(template, testWidth, testHeight)
	if err != nil {
		t.Fatalf("NewGrid(%q): %v", template, err)
	}
	return g
}

func boolPtr(b bool) *bool {
	return &b
}

func transitionPtr(tr Transition) *Transition {
	return &tr
}

func TestNewGridParsesTemplate(t *testing.T) {
	g := mustGrid(t, "XOX\nSOO\nXXX")

	if g.Cols() != 3 || g.Rows() != 3 {
		t.Fatalf("expected 3x3 grid, got %dx%d", g.Cols(), g.Rows())
	}
	if g.Width() != 3*testWidth || g.Height() != 3*testHeight {
		t.Fatalf("unexpected pixel size %dx%d", g.Width(), g.Height())
	}

	xRanges := []Range{{-1920, -640}, {-640, 640}, {640, 1920}}
	yRanges := []Range{{361, 1081}, {-359, 361}, {-1079, -359}}
	navigable := [][]bool{
		{false, true, false},
		{true, true, true},
		{false, false, false},
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			s, ok := g.At(col, row)
			if !ok {
				t.Fatalf("expected screen at (%d,%d)", col, row)
			}
			if s.XRange != xRanges[col] || s.YRange != yRanges[row] {
				t.Fatalf("(%d,%d): got x=%s y=%s, want x=%s y=%s", col, row, s.XRange, s.YRange, xRanges[col], yRanges[row])
			}
			if s.Navigable != navigable[row][col] {
				t.Fatalf("(%d,%d): navigable=%v, want %v", col, row, s.Navigable, navigable[row][col])
			}
			if s.Start != (col == 0 && row == 1) {
				t.Fatalf("(%d,%d): unexpected start flag %v", col, row, s.Start)
			}
			if s.Fixed || s.Transition != Smooth {
				t.Fatalf("(%d,%d): expected non-fixed smooth screen, got fixed=%v transition=%s", col, row, s.Fixed, s.Transition)
			}
		}
	}
}

func TestNewGridFixedSymbols(t *testing.T) {
	g := mustGrid(t, "XXO\nSHO\nOFX")

	cases := []struct {
		name       string
		col, row   int
		navigable  bool
		fixed      bool
		transition Transition
	}{
		{"hard", 1, 1, true, true, Hard},
		{"fixed_smooth", 1, 2, true, true, Smooth},
		{"off_map", 2, 2, false, false, Smooth},
		{"plain", 2, 0, true, false, Smooth},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, ok := g.At(c.col, c.row)
			if !ok {
				t.Fatalf("expected screen at (%d,%d)", c.col, c.row)
			}
			if s.Navigable != c.navigable || s.Fixed != c.fixed || s.Transition != c.transition {
				t.Fatalf("got navigable=%v fixed=%v transition=%s", s.Navigable, s.Fixed, s.Transition)
			}
		})
	}

	if _, ok := g.At(2, 3); ok {
		t.Fatalf("expected no screen outside the grid")
	}
}

func TestNewGridErrors(t *testing.T) {
	cases := []struct {
		name     string
		template string
		width    int
		height   int
		want     error
	}{
		{"empty", "", testWidth, testHeight, ErrEmptyTemplate},
		{"only_newlines", "\n\n", testWidth, testHeight, ErrEmptyTemplate},
		{"ragged", "SO\nX", testWidth, testHeight, ErrRaggedTemplate},
		{"empty_row", "SO\n\nXX", testWidth, testHeight, ErrRaggedTemplate},
		{"unknown_symbol", "SQ", testWidth, testHeight, ErrUnknownSymbol},
		{"no_start", "XO\nOX", testWidth, testHeight, ErrNoStartScreen},
		{"two_starts", "SO\nOS", testWidth, testHeight, ErrMultipleStartScreens},
		{"zero_width", "SO", 0, testHeight, ErrInvalidDimensions},
		{"negative_height", "SO", testWidth, -1, ErrInvalidDimensions},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := NewGrid(c.template, c.width, c.height)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if g != nil {
				t.Fatalf("expected nil grid on error")
			}
		})
	}
}

func TestNewGridToleratesLineEndings(t *testing.T) {
	for _, template := range []string{"SO\nXO\n", "SO\r\nXO\r\n"} {
		g := mustGrid(t, template)
		if g.Rows() != 2 || g.Cols() != 2 {
			t.Fatalf("%q: expected 2x2 grid, got %dx%d", template, g.Cols(), g.Rows())
		}
	}
}

func TestStartScreenCenter(t *testing.T) {
	g := mustGrid(t, "XXO\nSOO\nOXX")

	start := g.Start()
	if col, row := start.Indices(); col != 0 || row != 1 {
		t.Fatalf("expected start screen at (0,1), got (%d,%d)", col, row)
	}
	if got := start.Center(); got != (cp.Vector{X: -1280, Y: 0}) {
		t.Fatalf("expected start centre (-1280,0), got %v", got)
	}
}

func TestWithOverrides(t *testing.T) {
	g := mustGrid(t, "XXO\nSOO\nOXX")

	out, err := g.WithOverrides(
		Override{Col: 2, Row: 1, Fixed: boolPtr(true), Transition: transitionPtr(Hard)},
		Override{Col: 2, Row: 0, Fixed: boolPtr(true)},
	)
	if err != nil {
		t.Fatalf("WithOverrides: %v", err)
	}

	s, _ := out.At(2, 1)
	if !s.Fixed || s.Transition != Hard {
		t.Fatalf("expected (2,1) fixed+hard, got fixed=%v transition=%s", s.Fixed, s.Transition)
	}
	s, _ = out.At(2, 0)
	if !s.Fixed || s.Transition != Smooth {
		t.Fatalf("expected (2,0) fixed+smooth, got fixed=%v transition=%s", s.Fixed, s.Transition)
	}

	orig, _ := g.At(2, 1)
	if orig.Fixed || orig.Transition != Smooth {
		t.Fatalf("receiver must not change")
	}

	if got := out.String(); got != "XXF\nSOH\nOXX" {
		t.Fatalf("unexpected template render %q", got)
	}

	if _, err := g.WithOverrides(Override{Col: 3, Row: 0, Fixed: boolPtr(true)}); !errors.Is(err, ErrOverrideOutOfRange) {
		t.Fatalf("expected ErrOverrideOutOfRange, got %v", err)
	}
}

func TestParseTransition(t *testing.T) {
	cases := []struct {
		in      string
		want    Transition
		wantErr bool
	}{
		{"smooth", Smooth, false},
		{"Hard", Hard, false},
		{" hard ", Hard, false},
		{"snap", Smooth, true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseTransition(c.in)
			if c.wantErr {
				if !errors.Is(err, ErrUnknownTransition) {
					t.Fatalf("expected ErrUnknownTransition, got %v", err)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("got %s, %v; want %s", got, err, c.want)
			}
		})
	}
}

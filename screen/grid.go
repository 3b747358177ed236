package screen

import (
	"errors"
	"fmt"
	"strings"
)

// Template symbols, one per screen.
const (
	SymbolOffMap    = 'X'
	SymbolNavigable = 'O'
	SymbolStart     = 'S'
	SymbolFixed     = 'F'
	SymbolFixedHard = 'H'
)

var (
	ErrInvalidDimensions    = errors.New("screen: screen width and height must be positive")
	ErrEmptyTemplate        = errors.New("screen: empty template")
	ErrRaggedTemplate       = errors.New("screen: template rows have different lengths")
	ErrUnknownSymbol        = errors.New("screen: unknown template symbol")
	ErrNoStartScreen        = errors.New("screen: template has no start screen")
	ErrMultipleStartScreens = errors.New("screen: template has more than one start screen")
	ErrOverrideOutOfRange   = errors.New("screen: override outside the grid")
	ErrUnknownTransition    = errors.New("screen: unknown transition")
)

// Grid partitions world space into equally sized screens. A Grid is built once
// per level and never modified afterwards, so it can be shared freely between
// readers; overrides produce a new Grid.
type Grid struct {
	cols         int
	rows         int
	screenWidth  int
	screenHeight int
	width        int
	height       int
	start        int

	// row-major, len == cols*rows
	screens []Screen
}

// NewGrid builds a grid from a template such as "XXO\nSOO\nOXX". Row 0 of the
// template is the topmost row of the level.
func NewGrid(template string, screenWidth, screenHeight int) (*Grid, error) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, screenWidth, screenHeight)
	}

	rows, err := splitTemplate(template)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		cols:         len(rows[0]),
		rows:         len(rows),
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		start:        -1,
	}
	g.width = g.cols * screenWidth
	g.height = g.rows * screenHeight
	g.screens = make([]Screen, 0, g.cols*g.rows)

	halfW := g.width / 2
	halfH := g.height / 2

	for r, row := range rows {
		for c, symbol := range row {
			s := Screen{
				Col: c,
				Row: r,
				XRange: Range{
					Start: float64(c*screenWidth - halfW),
					End:   float64((c+1)*screenWidth - halfW),
				},
				YRange: Range{
					Start: float64(g.height-(r+1)*screenHeight-halfH) + 1,
					End:   float64(g.height-r*screenHeight-halfH) + 1,
				},
			}

			switch symbol {
			case SymbolOffMap:
			case SymbolNavigable:
				s.Navigable = true
			case SymbolStart:
				s.Navigable = true
				s.Start = true
			case SymbolFixed:
				s.Navigable = true
				s.Fixed = true
			case SymbolFixedHard:
				s.Navigable = true
				s.Fixed = true
				s.Transition = Hard
			default:
				return nil, fmt.Errorf("%w %q at row %d col %d", ErrUnknownSymbol, symbol, r, c)
			}

			if s.Start {
				if g.start >= 0 {
					first := g.screens[g.start]
					return nil, fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrMultipleStartScreens, first.Col, first.Row, c, r)
				}
				g.start = len(g.screens)
			}
			g.screens = append(g.screens, s)
		}
	}

	if g.start < 0 {
		return nil, ErrNoStartScreen
	}

	return g, nil
}

func splitTemplate(template string) ([][]rune, error) {
	template = strings.ReplaceAll(template, "\r", "")
	template = strings.TrimRight(template, "\n")
	if template == "" {
		return nil, ErrEmptyTemplate
	}

	lines := strings.Split(template, "\n")
	rows := make([][]rune, 0, len(lines))
	for i, line := range lines {
		row := []rune(line)
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrRaggedTemplate, i)
		}
		if i > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d screens, row 0 has %d", ErrRaggedTemplate, i, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (g *Grid) Cols() int         { return g.cols }
func (g *Grid) Rows() int         { return g.rows }
func (g *Grid) ScreenWidth() int  { return g.screenWidth }
func (g *Grid) ScreenHeight() int { return g.screenHeight }

// Width is the total pixel width of the tiled rectangle.
func (g *Grid) Width() int { return g.width }

// Height is the total pixel height of the tiled rectangle.
func (g *Grid) Height() int { return g.height }

// Start returns the screen marked with the start symbol.
func (g *Grid) Start() Screen {
	return g.screens[g.start]
}

// At returns the screen at (col, row), origin top-left.
func (g *Grid) At(col, row int) (Screen, bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return Screen{}, false
	}
	return g.screens[row*g.cols+col], true
}

// Screens returns a row-major copy of every screen in the grid.
func (g *Grid) Screens() []Screen {
	out := make([]Screen, len(g.screens))
	copy(out, g.screens)
	return out
}

// String renders the grid back into template form. Screens that were made
// fixed by an override render as F or H.
func (g *Grid) String() string {
	var b strings.Builder
	for i, s := range g.screens {
		if i > 0 && i%g.cols == 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(s.Symbol())
	}
	return b.String()
}

// Symbol returns the template symbol that would produce s.
func (s Screen) Symbol() rune {
	switch {
	case !s.Navigable:
		return SymbolOffMap
	case s.Start:
		return SymbolStart
	case s.Fixed && s.Transition == Hard:
		return SymbolFixedHard
	case s.Fixed:
		return SymbolFixed
	default:
		return SymbolNavigable
	}
}

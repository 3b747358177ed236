package levels

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/milk9111/screencam/screen"
)

// ScreensGroup is the Tiled object group holding one rectangle per screen.
const ScreensGroup = "Screens"

// LoadTMX reads a level authored in Tiled. Each object in the Screens group
// covers exactly one screen and carries a "symbol" property (X, O, S, F or H,
// default O) and an optional "transition" property. Cells without an object
// are off-map. The screen size is taken from the objects and the grid size
// from the map.
func LoadTMX(fsys fs.FS, p string) (Spec, error) {
	m, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
	if err != nil {
		return Spec{}, fmt.Errorf("levels: load TMX %s: %w", p, err)
	}

	spec, err := specFromMap(levelName(p), m)
	if err != nil {
		return Spec{}, fmt.Errorf("levels: load TMX %s: %w", p, err)
	}
	return spec, nil
}

func specFromMap(name string, m *tiled.Map) (Spec, error) {
	var group *tiled.ObjectGroup
	for _, og := range m.ObjectGroups {
		if og.Name == ScreensGroup {
			group = og
			break
		}
	}
	if group == nil || len(group.Objects) == 0 {
		return Spec{}, ErrNoScreens
	}

	sw := int(group.Objects[0].Width)
	sh := int(group.Objects[0].Height)
	if sw <= 0 || sh <= 0 {
		return Spec{}, fmt.Errorf("%w: got %dx%d", screen.ErrInvalidDimensions, sw, sh)
	}

	mapW := m.Width * m.TileWidth
	mapH := m.Height * m.TileHeight
	if mapW%sw != 0 || mapH%sh != 0 {
		return Spec{}, fmt.Errorf("%w: %dx%d map is not a whole number of %dx%d screens", ErrMisalignedScreen, mapW, mapH, sw, sh)
	}
	cols, rows := mapW/sw, mapH/sh

	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = []rune(strings.Repeat(string(screen.SymbolOffMap), cols))
	}

	var overrides []screen.Override
	for _, o := range group.Objects {
		x, y := int(o.X), int(o.Y)
		if int(o.Width) != sw || int(o.Height) != sh || float64(x) != o.X || float64(y) != o.Y || x%sw != 0 || y%sh != 0 {
			return Spec{}, fmt.Errorf("%w: object %d at (%g,%g) size %gx%g", ErrMisalignedScreen, o.ID, o.X, o.Y, o.Width, o.Height)
		}
		col, row := x/sw, y/sh
		if col < 0 || col >= cols || row < 0 || row >= rows {
			return Spec{}, fmt.Errorf("%w: object %d lies outside the map", ErrMisalignedScreen, o.ID)
		}

		symbol := strings.TrimSpace(o.Properties.GetString("symbol"))
		if symbol == "" {
			symbol = string(screen.SymbolNavigable)
		}
		sr := []rune(strings.ToUpper(symbol))
		if len(sr) != 1 {
			return Spec{}, fmt.Errorf("%w %q on object %d", screen.ErrUnknownSymbol, symbol, o.ID)
		}
		cells[row][col] = sr[0]

		if t := o.Properties.GetString("transition"); t != "" {
			tr, err := screen.ParseTransition(t)
			if err != nil {
				return Spec{}, fmt.Errorf("object %d: %w", o.ID, err)
			}
			overrides = append(overrides, screen.Override{Col: col, Row: row, Transition: &tr})
		}
	}

	lines := make([]string, rows)
	for r, row := range cells {
		lines[r] = string(row)
	}

	return Spec{
		Name:         name,
		ScreenWidth:  sw,
		ScreenHeight: sh,
		Screens:      strings.Join(lines, "\n"),
		Overrides:    overrides,
	}, nil
}

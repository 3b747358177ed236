package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/screencam/common"
	"github.com/milk9111/screencam/screen"
	"golang.org/x/image/colornames"
)

func screenColor(s screen.Screen) color.Color {
	switch {
	case !s.Navigable:
		return colornames.Black
	case s.Start:
		return colornames.Darkolivegreen
	case s.Fixed && s.Transition == screen.Hard:
		return colornames.Darkred
	case s.Fixed:
		return colornames.Midnightblue
	case s.Transition == screen.Hard:
		return colornames.Saddlebrown
	default:
		return colornames.Darkslategray
	}
}

func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(colornames.Black)

	g.drawScreens(dst)
	g.drawSegments(dst)
	g.drawPlayer(dst)

	if g.flashAlpha > 0 {
		a := uint8(common.Clamp(float64(g.flashAlpha), 0, 255))
		vector.FillRect(dst, 0, 0, common.BaseWidth, common.BaseHeight, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: a}, false)
	}

	switch g.mode {
	case modeMenu:
		ebitenutil.DebugPrintAt(dst, "screencam", common.BaseWidth/2-30, common.BaseHeight/2-20)
		ebitenutil.DebugPrintAt(dst, "press Enter to start", common.BaseWidth/2-60, common.BaseHeight/2)
	case modePaused:
		g.pauseUI.Draw(dst)
	}

	g.drawHUD(dst)
}

func (g *Game) drawScreens(dst *ebiten.Image) {
	zoom := float32(g.view.Zoom)
	if zoom == 0 {
		zoom = 1
	}
	for _, s := range g.grid.Screens() {
		x, y := g.toScreen(cp.Vector{X: s.XRange.Start, Y: s.YRange.End})
		w := float32(s.XRange.End-s.XRange.Start) * zoom
		h := float32(s.YRange.End-s.YRange.Start) * zoom
		vector.FillRect(dst, x, y, w, h, screenColor(s), false)
		vector.StrokeRect(dst, x, y, w, h, 1, colornames.Dimgray, false)
		if g.debug {
			ebitenutil.DebugPrintAt(dst, fmt.Sprintf("(%d,%d) %s", s.Col, s.Row, s.Transition), int(x)+6, int(y)+6)
		}
	}
}

func (g *Game) drawSegments(dst *ebiten.Image) {
	for _, seg := range g.world.Segments() {
		x0, y0 := g.toScreen(seg.a)
		x1, y1 := g.toScreen(seg.b)
		c := colornames.Lightgrey
		if seg.ledge {
			c = colornames.Goldenrod
		}
		vector.StrokeLine(dst, x0, y0, x1, y1, 3, c, true)
	}
}

func (g *Game) drawPlayer(dst *ebiten.Image) {
	if g.player == nil || g.mode == modeMenu {
		return
	}
	p := g.player.Position()
	zoom := float32(g.view.Zoom)
	if zoom == 0 {
		zoom = 1
	}
	w := float32(g.playerDef.Width) * zoom
	h := float32(g.playerDef.Height) * zoom
	x, y := g.toScreen(p)
	c := colornames.Crimson
	if g.world.Airborne() {
		c = colornames.Orange
	}
	vector.FillRect(dst, x-w/2, y-h/2, w, h, c, false)
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	lines := fmt.Sprintf("%s    FPS: %.2f", g.levelName, ebiten.ActualFPS())
	if g.debug {
		state := g.rig.State()
		lines += fmt.Sprintf("\ncamera %.1f,%.1f  offset %.1f  zoom %.3f", state.Position.X, state.Position.Y, state.VerticalOffset, g.view.Zoom)
		if g.player != nil {
			p := g.player.Position()
			lines += fmt.Sprintf("\nplayer %.1f,%.1f  grounded %t  airborne %t", p.X, p.Y, g.world.Grounded(), g.world.Airborne())
		}
		if g.view.OnGrid {
			lines += fmt.Sprintf("\nscreen %s", g.view.Screen)
		}
		lines += "\nA/D move  Space jump  K shake  R restart  C copy  Esc pause  F1 debug"
	}
	if g.status != "" {
		lines += "\n" + g.status
	}
	ebitenutil.DebugPrintAt(dst, lines, 8, 8)
}

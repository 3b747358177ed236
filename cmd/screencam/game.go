package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/screencam/camera"
	"github.com/milk9111/screencam/common"
	"github.com/milk9111/screencam/event"
	"github.com/milk9111/screencam/levels"
	"github.com/milk9111/screencam/prefabs"
	"github.com/milk9111/screencam/screen"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.design/x/clipboard"
)

type mode int

const (
	modeMenu mode = iota
	modePlaying
	modePaused
)

type Game struct {
	frames int
	mode   mode
	debug  bool

	rig       *camera.Rig
	camSpec   *prefabs.CameraSpec
	playerDef *prefabs.PlayerSpec

	levelName string
	grid      *screen.Grid
	world     *World
	player    *Player
	view      camera.View

	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher

	clipboardReady bool
	status         string

	lastScreen screen.Screen
	onScreen   bool
	flash      *gween.Tween
	flashAlpha float32
}

func NewGame(levelName string, debug bool, watch bool) *Game {
	camSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		log.Printf("camera spec: %v (using defaults)", err)
	}
	playerDef, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("player spec: %v (using defaults)", err)
		playerDef = &prefabs.PlayerSpec{Name: "player", MoveSpeed: common.PlayerSpeed, JumpSpeed: 900, Width: 48, Height: 72, Mass: 1}
	}

	g := &Game{
		debug:     debug,
		rig:       camera.NewRig(camSpec.Config()),
		camSpec:   camSpec,
		playerDef: playerDef,
	}
	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}

	if levelName == "" {
		names, err := levels.Names()
		if err != nil || len(names) == 0 {
			log.Fatalf("no levels available: %v", err)
		}
		levelName = names[0]
	}
	spec, grid, err := levels.LoadGrid(levelName)
	if err != nil {
		log.Fatalf("failed to load level %s: %v", levelName, err)
	}
	g.setLevel(spec.Name, grid)

	if watch {
		w, err := prefabs.NewWatcher(levels.Dir, "prefabs")
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g
}

// setLevel swaps the physics world right away. The camera picks the new grid
// up from its queue at the start of the next tick.
func (g *Game) setLevel(name string, grid *screen.Grid) {
	g.levelName = name
	g.grid = grid
	g.world = NewWorld(grid)
	g.player = NewPlayer(g.playerDef, g.world, grid.Start().Center())
	g.onScreen = false
	g.rig.Events().Push(event.LevelLoaded(name, grid))
}

func (g *Game) respawn() {
	g.player = NewPlayer(g.playerDef, g.world, g.grid.Start().Center())
	g.onScreen = false
}

func (g *Game) Resume() {
	g.mode = modePlaying
}

func (g *Game) RestartLevel() {
	g.respawn()
	g.rig.Events().Push(event.LevelRestarted())
	g.mode = modePlaying
}

func (g *Game) EnterMenu() {
	g.rig.Events().Push(event.MenuEntered())
	g.mode = modeMenu
}

func (g *Game) StartGame() {
	g.respawn()
	g.rig.Events().Push(event.GameStarted())
	g.mode = modePlaying
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	in := ReadInput()
	if in.Debug {
		g.debug = !g.debug
	}
	dt := 1.0 / float64(ebiten.TPS())

	switch g.mode {
	case modeMenu:
		if in.Confirm {
			g.StartGame()
		}
		g.rig.Flush()
		g.view = camera.View{Position: g.rig.State().Position, Zoom: 1}
		return nil
	case modePaused:
		if in.Pause {
			g.Resume()
		}
		g.pauseUI.Update()
		g.rig.Flush()
		return nil
	}

	if in.Pause {
		g.mode = modePaused
		return nil
	}
	if in.Restart {
		g.RestartLevel()
	}
	if in.Shake {
		g.rig.Events().Push(event.ShakeRequested())
	}
	if in.Copy {
		g.copyPlayerPosition()
	}

	g.player.Update(in, g.world.Grounded())
	g.world.Step(dt)

	g.view = g.rig.Update(camera.Input{
		Player:   g.player.Position(),
		Airborne: g.world.Airborne(),
		Dt:       dt,
	})
	g.updateFlash(dt)
	return nil
}

// updateFlash starts a short white flash whenever the player enters a new
// screen.
func (g *Game) updateFlash(dt float64) {
	var mx, my float64
	if g.camSpec != nil {
		mx, my = g.camSpec.MarginX, g.camSpec.MarginY
	}
	s, ok := g.grid.FindWithMargin(g.player.Position(), mx, my)
	if ok && (!g.onScreen || s.Col != g.lastScreen.Col || s.Row != g.lastScreen.Row) {
		if g.onScreen {
			g.flash = gween.New(96, 0, 0.6, ease.OutQuad)
		}
		g.lastScreen = s
	}
	g.onScreen = g.onScreen || ok

	if g.flash == nil {
		g.flashAlpha = 0
		return
	}
	alpha, done := g.flash.Update(float32(dt))
	g.flashAlpha = alpha
	if done {
		g.flash = nil
	}
}

func (g *Game) copyPlayerPosition() {
	p := g.grid.ToEditor(g.player.Position())
	text := fmt.Sprintf("%.0f,%.0f", p.X, p.Y)
	if !g.clipboardReady {
		g.status = "clipboard unavailable: " + text
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	g.status = "copied editor position " + text
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeConfig:
		camSpec, err := prefabs.LoadCameraSpec()
		if err != nil {
			log.Printf("reload camera spec: %v", err)
			return
		}
		g.camSpec = camSpec
		g.rig.Configure(camSpec.Config())
		if playerDef, err := prefabs.LoadPlayerSpec(); err == nil {
			g.playerDef = playerDef
		}
		log.Printf("reloaded %s", filepath.Base(change.Path))
	case prefabs.ChangeLevel:
		spec, err := levels.LoadFile(change.Path)
		if err != nil {
			log.Printf("reload level: %v", err)
			return
		}
		if spec.Name != g.levelName {
			return
		}
		grid, err := spec.Grid()
		if err != nil {
			log.Printf("reload level: %v", err)
			return
		}
		g.setLevel(spec.Name, grid)
		log.Printf("reloaded level %s", spec.Name)
	}
}

// toScreen maps a world position to pixel coordinates on the base-resolution
// canvas, Y flipped.
func (g *Game) toScreen(p cp.Vector) (float32, float32) {
	zoom := g.view.Zoom
	if zoom == 0 {
		zoom = 1
	}
	x := (p.X-g.view.Position.X)*zoom + common.BaseWidth/2
	y := (g.view.Position.Y-p.Y)*zoom + common.BaseHeight/2
	return float32(x), float32(y)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

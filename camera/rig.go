package camera

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/screencam/event"
	"github.com/milk9111/screencam/screen"
)

// View is the camera output for one tick.
type View struct {
	// Position is the confined camera position plus any shake offset.
	Position cp.Vector
	Zoom     float64
	Screen   screen.Screen
	OnGrid   bool
}

// Rig owns everything the camera needs for the running level: the grid, the
// scroll controller, the camera state and the shake. Hosts talk to it through
// its event queue and call Update once per tick.
type Rig struct {
	cfg        Config
	grid       *screen.Grid
	controller *ScrollController
	state      State
	shake      *Shake
	events     event.Queue
	levelName  string
}

func NewRig(cfg Config) *Rig {
	return &Rig{
		cfg:   cfg,
		shake: NewShake(cfg.Shake),
	}
}

// Configure swaps the camera tuning. The camera keeps its position and any
// smooth transition in progress; a running shake is dropped.
func (r *Rig) Configure(cfg Config) {
	r.cfg = cfg
	r.shake = NewShake(cfg.Shake)
	if r.grid != nil {
		r.controller = NewScrollController(r.grid, cfg)
	}
}

func (r *Rig) Config() Config {
	return r.cfg
}

// Events returns the queue drained at the start of every Update.
func (r *Rig) Events() *event.Queue {
	return &r.events
}

func (r *Rig) Grid() *screen.Grid {
	return r.grid
}

func (r *Rig) LevelName() string {
	return r.levelName
}

func (r *Rig) State() State {
	return r.state
}

func (r *Rig) Shaking() bool {
	return r.shake.Active()
}

// CurrentScreen returns the screen the camera is centred in.
func (r *Rig) CurrentScreen() (screen.Screen, bool) {
	if r.grid == nil {
		return screen.Screen{}, false
	}
	return r.grid.Find(r.state.Position)
}

// StartScreen returns the level's start screen.
func (r *Rig) StartScreen() (screen.Screen, bool) {
	if r.grid == nil {
		return screen.Screen{}, false
	}
	return r.grid.Start(), true
}

// Flush applies queued events without moving the camera. Hosts that skip
// camera ticks, e.g. while paused, call it so level swaps still land.
func (r *Rig) Flush() {
	for _, evt := range r.events.Drain() {
		r.apply(evt)
	}
}

// Update applies queued events, then moves the camera for this tick.
func (r *Rig) Update(in Input) View {
	r.Flush()

	if r.controller == nil {
		return View{Position: r.state.Position, Zoom: 1}
	}

	if r.shake.Active() {
		r.snapAtVerticalEdge()
	}

	r.state = r.controller.Tick(r.state, in)
	offsetY, zoom := r.shake.Update(in.Dt)

	view := View{
		Position: r.state.Position.Add(cp.Vector{Y: offsetY}),
		Zoom:     zoom,
	}
	view.Screen, view.OnGrid = r.grid.Find(r.state.Position)
	return view
}

func (r *Rig) apply(evt event.Event) {
	switch evt.Kind {
	case event.KindLevelLoaded:
		load, ok := evt.Data.(event.LevelLoad)
		if !ok || load.Grid == nil {
			return
		}
		r.grid = load.Grid
		r.levelName = load.Name
		r.controller = NewScrollController(load.Grid, r.cfg)
		r.state = State{}
		r.moveToStart()
	case event.KindGameStarted, event.KindLevelRestarted:
		r.shake.Stop()
		r.state.ResetOffset()
		r.moveToStart()
	case event.KindMenuEntered:
		r.shake.Stop()
		r.state = State{}
	case event.KindShakeRequested:
		r.shake.Trigger()
	}
}

func (r *Rig) moveToStart() {
	if s, ok := r.StartScreen(); ok {
		r.state.Position = s.Center()
	}
}

// snapAtVerticalEdge keeps a shaking camera centred vertically when there is
// nothing above or below it to reveal.
func (r *Rig) snapAtVerticalEdge() {
	pos := r.state.Position
	_, hasAbove := r.grid.Above(pos)
	_, hasBelow := r.grid.Below(pos)
	if hasAbove && hasBelow {
		return
	}
	if s, ok := r.grid.Find(pos); ok {
		r.state.Position.Y = s.Center().Y
	}
}

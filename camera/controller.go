package camera

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/screencam/common"
	"github.com/milk9111/screencam/screen"
)

// Input is what the camera reads from the rest of the game each tick.
type Input struct {
	Player cp.Vector
	// Airborne is true while the player is jumping or falling.
	Airborne bool
	// Dt is the tick duration in seconds.
	Dt float64
}

// State is the camera's mutable state. It is owned by whoever drives the
// controller and handed back and forth explicitly every tick.
type State struct {
	Position       cp.Vector
	VerticalOffset float64
}

// ResetOffset drops any smooth transition in progress.
func (s *State) ResetOffset() {
	s.VerticalOffset = 0
}

// ScrollController decides where the camera wants to go each tick and hands
// that target to a Confiner.
type ScrollController struct {
	grid        *screen.Grid
	confiner    *Confiner
	playerSpeed float64
	smoothX     float64
}

func NewScrollController(grid *screen.Grid, cfg Config) *ScrollController {
	speed := cfg.PlayerSpeed
	if speed <= 0 {
		speed = common.PlayerSpeed
	}
	return &ScrollController{
		grid:        grid,
		confiner:    NewConfiner(grid, WithCrossingGuard(cfg.CrossingGuard)),
		playerSpeed: speed,
		smoothX:     cfg.SmoothFactorX,
	}
}

// Target computes the desired camera position for this tick. Horizontal
// tracking is direct; the vertical axis follows the screen metadata under and
// above the player.
func (sc *ScrollController) Target(state State, in Input) (State, cp.Vector) {
	player := in.Player

	center := player
	fixed := false
	transition := screen.Smooth
	if s, ok := sc.grid.Find(player); ok {
		center = s.Center()
		fixed = s.Fixed
		transition = s.Transition
	}

	// The top of the level behaves like a fixed smooth screen.
	aboveFixed := true
	aboveTransition := screen.Smooth
	if s, ok := sc.grid.Above(player); ok {
		aboveFixed = s.Fixed
		aboveTransition = s.Transition
	}

	dist := center.Y - player.Y
	step := sc.playerSpeed / 2 * in.Dt
	target := cp.Vector{X: player.X, Y: player.Y}

	// A Hard screen above counts whether or not it is fixed.
	switch {
	case fixed && transition == screen.Hard,
		!fixed && aboveTransition == screen.Hard:
		if in.Airborne {
			target.Y = player.Y + state.VerticalOffset
			break
		}
		state.ResetOffset()
		target.Y = player.Y + dist

	case fixed && transition == screen.Smooth:
		// going down into a fixed screen
		if dist > 0 && !in.Airborne {
			if state.Position.Y < center.Y {
				state.VerticalOffset += step
			} else {
				state.VerticalOffset = dist
			}
		}
		target.Y = player.Y + state.VerticalOffset

	case !fixed && aboveFixed && aboveTransition == screen.Smooth:
		// climbing out of a fixed screen
		if dist < 0 && !in.Airborne {
			state.VerticalOffset = math.Max(0, state.VerticalOffset-step)
		}
		target.Y = player.Y + state.VerticalOffset
	}

	return state, target
}

// Tick computes the target, confines it and stores the new camera position in
// the returned state.
func (sc *ScrollController) Tick(state State, in Input) State {
	state, target := sc.Target(state, in)
	old := state.Position
	pos := sc.confiner.MoveCamera(old, target)

	if sc.smoothX > 0 {
		pos.X = common.Lerp(old.X, pos.X, common.Clamp(sc.smoothX*in.Dt, 0, 1))
	}

	state.Position = pos
	return state
}

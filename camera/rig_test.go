package camera

import (
	"testing"

	"github.com/milk9111/screencam/event"
)

func newRig(t *testing.T, template string) *Rig {
	t.Helper()
	r := NewRig(DefaultConfig())
	r.Events().Push(event.LevelLoaded("test", mustGrid(t, template)))
	r.Flush()
	return r
}

func TestRigWithoutLevel(t *testing.T) {
	r := NewRig(DefaultConfig())
	view := r.Update(Input{Player: vec(100, 100), Dt: tickDt})
	if view.Position != vec(0, 0) || view.Zoom != 1 || view.OnGrid {
		t.Fatalf("unexpected view without a level: %+v", view)
	}
	if _, ok := r.CurrentScreen(); ok {
		t.Fatalf("expected no current screen without a level")
	}
	if _, ok := r.StartScreen(); ok {
		t.Fatalf("expected no start screen without a level")
	}
}

func TestRigLevelLoadedPlacesCameraOnStart(t *testing.T) {
	r := newRig(t, "XXO\nSOO\nOXX")

	if r.State().Position != vec(-1280, 0) {
		t.Fatalf("expected camera at start centre, got %v", r.State().Position)
	}
	if r.LevelName() != "test" {
		t.Fatalf("unexpected level name %q", r.LevelName())
	}
	s, ok := r.CurrentScreen()
	if !ok || !s.Start {
		t.Fatalf("expected current screen to be the start screen, got %v ok=%v", s, ok)
	}

	view := r.Update(Input{Player: vec(-1240, 0), Dt: tickDt})
	if view.Position != vec(-1240, 0) || view.Zoom != 1 || !view.OnGrid {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestRigLevelRestartedZeroesOffset(t *testing.T) {
	r := newRig(t, "F\nS")

	// player below the centre of a fixed smooth screen with the camera below it
	for i := 0; i < 3; i++ {
		r.Update(Input{Player: vec(0, 200), Dt: tickDt})
	}
	if r.State().VerticalOffset == 0 {
		t.Fatalf("expected a non-zero offset before restart")
	}

	r.Events().Push(event.LevelRestarted())
	r.Flush()
	if r.State().VerticalOffset != 0 {
		t.Fatalf("expected offset 0 after restart, got %g", r.State().VerticalOffset)
	}
	if r.State().Position != vec(0, -360) {
		t.Fatalf("expected camera back on the start screen, got %v", r.State().Position)
	}
}

func TestRigShakeAndReset(t *testing.T) {
	r := newRig(t, "XXO\nSOO\nOXX")

	r.Events().Push(event.ShakeRequested())
	view := r.Update(Input{Player: vec(-1280, 0), Dt: 1.5})
	if !r.Shaking() || view.Zoom >= 1 {
		t.Fatalf("expected an active shake, got %+v", view)
	}
	if view.Position.Y == r.State().Position.Y {
		t.Fatalf("expected the shake offset on top of the confined position")
	}
	if r.State().Position != vec(-1280, 0) {
		t.Fatalf("shake must not leak into the camera state, got %v", r.State().Position)
	}

	r.Events().Push(event.GameStarted())
	view = r.Update(Input{Player: vec(-1280, 0), Dt: tickDt})
	if r.Shaking() || view.Zoom != 1 {
		t.Fatalf("expected shake stopped after game start, got %+v", view)
	}
}

func TestRigMenuEntered(t *testing.T) {
	r := newRig(t, "XXO\nSOO\nOXX")
	r.Update(Input{Player: vec(-1240, 0), Dt: tickDt})

	r.Events().Push(event.MenuEntered())
	r.Flush()
	if r.State() != (State{}) {
		t.Fatalf("expected zero state on menu, got %+v", r.State())
	}
}

func TestRigLevelSwapBetweenTicks(t *testing.T) {
	r := newRig(t, "XXO\nSOO\nOXX")
	r.Events().Push(event.LevelLoaded("second", mustGrid(t, "OS")))

	view := r.Update(Input{Player: vec(640, 0), Dt: tickDt})
	if r.LevelName() != "second" {
		t.Fatalf("expected the queued level to be loaded")
	}
	// start centre of "OS" is (640,0)
	if view.Position != vec(640, 0) {
		t.Fatalf("expected camera on the new start screen, got %v", view.Position)
	}
}

func TestRigConfigureKeepsState(t *testing.T) {
	r := newRig(t, "F\nS")
	r.Update(Input{Player: vec(0, 200), Dt: tickDt})
	before := r.State()
	if before.VerticalOffset == 0 {
		t.Fatalf("expected a smooth transition in progress")
	}

	r.Events().Push(event.ShakeRequested())
	r.Flush()

	cfg := DefaultConfig()
	cfg.PlayerSpeed = 100
	r.Configure(cfg)

	if r.State() != before {
		t.Fatalf("Configure changed state: %+v -> %+v", before, r.State())
	}
	if r.Shaking() {
		t.Fatalf("expected Configure to drop the running shake")
	}
	if r.Config().PlayerSpeed != 100 {
		t.Fatalf("config not stored: %+v", r.Config())
	}
}

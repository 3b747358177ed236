// Package event carries level-load, reset and shake notifications from the
// host to the camera. Events are queued by the host and drained by the camera
// at the start of its next tick, so a level swap never lands mid-tick.
package event

import "github.com/milk9111/screencam/screen"

// Kind identifies event types.
type Kind string

const (
	KindLevelLoaded    Kind = "level_loaded"
	KindGameStarted    Kind = "game_started"
	KindLevelRestarted Kind = "level_restarted"
	KindMenuEntered    Kind = "menu_entered"
	KindShakeRequested Kind = "shake_requested"
)

// Event is a queued notification. Data is only set for KindLevelLoaded.
type Event struct {
	Kind Kind
	Data any
}

// LevelLoad is the payload of a KindLevelLoaded event.
type LevelLoad struct {
	Name string
	Grid *screen.Grid
}

func LevelLoaded(name string, grid *screen.Grid) Event {
	return Event{Kind: KindLevelLoaded, Data: LevelLoad{Name: name, Grid: grid}}
}

func GameStarted() Event    { return Event{Kind: KindGameStarted} }
func LevelRestarted() Event { return Event{Kind: KindLevelRestarted} }
func MenuEntered() Event    { return Event{Kind: KindMenuEntered} }
func ShakeRequested() Event { return Event{Kind: KindShakeRequested} }

// Queue is a simple FIFO queue. It is not safe for concurrent use; push from
// the goroutine that runs the game loop.
type Queue struct {
	items []Event
}

// Push adds an event.
func (q *Queue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

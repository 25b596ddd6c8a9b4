// Package events defines the observability sink the game core reports transitions to.
package events

import "mazerunner/pkg/engine/world"

// Kind identifies a notable transition in the game core
type Kind int

// Event kinds
const (
	BoardCleared Kind = iota
	LevelGenerated
	PlayerMoved
	MoveBlocked
	MoveOutOfBounds
	KeyCollected
	DoorLocked
	LevelComplete
	NothingHere
)

// String returns the string representation of an event kind
func (k Kind) String() string {
	switch k {
	case BoardCleared:
		return "board_cleared"
	case LevelGenerated:
		return "level_generated"
	case PlayerMoved:
		return "player_moved"
	case MoveBlocked:
		return "move_blocked"
	case MoveOutOfBounds:
		return "move_out_of_bounds"
	case KeyCollected:
		return "key_collected"
	case DoorLocked:
		return "door_locked"
	case LevelComplete:
		return "level_complete"
	case NothingHere:
		return "nothing_here"
	default:
		return "unknown"
	}
}

// Event is one reported transition. Pos is the cell the event concerns.
type Event struct {
	Kind  Kind
	Pos   world.Position
	Level int
}

// Sink receives events from the game core
type Sink interface {
	Emit(ev Event)
}

// Nop discards every event
type Nop struct{}

// Emit does nothing
func (Nop) Emit(Event) {}

// Recorder keeps every event in order
type Recorder struct {
	Events []Event
}

// Emit appends the event
func (r *Recorder) Emit(ev Event) {
	r.Events = append(r.Events, ev)
}

// Kinds returns the recorded kinds in order
func (r *Recorder) Kinds() []Kind {
	kinds := make([]Kind, len(r.Events))
	for i, ev := range r.Events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// Last returns the most recent event and false if none were recorded
func (r *Recorder) Last() (Event, bool) {
	if len(r.Events) == 0 {
		return Event{}, false
	}
	return r.Events[len(r.Events)-1], true
}

// Reset drops all recorded events
func (r *Recorder) Reset() {
	r.Events = nil
}

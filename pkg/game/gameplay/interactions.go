package gameplay

import (
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/events"
)

// Interact resolves the player's current cell against the key and the door.
// The key is checked first; only one branch runs per call.
func (e *Engine) Interact() InteractionOutcome {
	g := e.Game
	here := g.Player.Position

	if g.Player.IsPlaced() && g.Key.IsPlaced() && here == g.Key.Position {
		// A key assigned off the board is left alone rather than half collected
		if err := g.Grid.SetAt(g.Key.Position, world.Floor); err != nil {
			e.emit(events.NothingHere, here)
			return Nothing
		}
		g.Key.Position = world.Offboard

		g.Door.Locked = false
		if g.Door.IsPlaced() {
			// PlaceDoor bounds-checks the position, so the write only fails
			// for a door moved by hand; the lock state above still holds.
			_ = g.Grid.SetAt(g.Door.Position, world.UnlockedDoor)
		}

		e.emit(events.KeyCollected, here)
		return KeyCollected
	}

	if g.Player.IsPlaced() && g.Door.IsPlaced() && here == g.Door.Position {
		if g.Door.Locked {
			e.emit(events.DoorLocked, here)
			return DoorLocked
		}
		e.emit(events.LevelComplete, here)
		return LevelComplete
	}

	e.emit(events.NothingHere, here)
	return Nothing
}

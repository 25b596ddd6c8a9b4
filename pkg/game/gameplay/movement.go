package gameplay

import (
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/events"
)

// Move attempts to step the player by (dx, dy).
// Out-of-bounds and wall destinations are rejected with no state change.
// Key and door cells are not walls, so stepping onto them always succeeds.
func (e *Engine) Move(dx, dy int) MoveOutcome {
	g := e.Game
	dest := g.Player.Add(dx, dy)

	if !g.Player.IsPlaced() || !g.Grid.IsValidPosition(dest.X, dest.Y) {
		e.emit(events.MoveOutOfBounds, dest)
		return OutOfBounds
	}

	tag, err := g.Grid.GetAt(dest)
	if err != nil || tag == world.Wall {
		e.emit(events.MoveBlocked, dest)
		return BlockedByWall
	}

	g.Player.Position = dest
	e.emit(events.PlayerMoved, dest)
	return Moved
}

// MoveDirection moves the player one step in a cardinal direction
func (e *Engine) MoveDirection(dir world.Direction) MoveOutcome {
	dx, dy := dir.Delta()
	return e.Move(dx, dy)
}

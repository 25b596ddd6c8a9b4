package gameplay

import (
	"fmt"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/events"
)

// ClearBoard resets every cell to Wall and every entity to Offboard
func (e *Engine) ClearBoard() {
	e.Game.ClearBoard()
	e.emit(events.BoardCleared, world.Offboard)
}

// NewLevel clears the board, generates a fresh layout and places the player,
// a locked door and the key. On error the board is left cleared.
func (e *Engine) NewLevel() error {
	e.ClearBoard()

	g := e.Game
	layout, err := e.generator.Generate(g.Grid)
	if err != nil {
		g.ClearBoard()
		return fmt.Errorf("generating level with %s: %w", e.generator.Name(), err)
	}
	if err := layout.Validate(g.Grid.Size()); err != nil {
		g.ClearBoard()
		return err
	}

	g.Rooms = layout.Rooms
	if err := g.PlacePlayer(layout.Player); err != nil {
		g.ClearBoard()
		return err
	}
	if err := g.PlaceDoor(layout.Door); err != nil {
		g.ClearBoard()
		return err
	}
	if err := g.PlaceKey(layout.Key); err != nil {
		g.ClearBoard()
		return err
	}

	e.emit(events.LevelGenerated, layout.Player)
	return nil
}

// AdvanceLevel bumps the level counter and generates the next maze
func (e *Engine) AdvanceLevel() error {
	e.Game.AdvanceLevel()
	return e.NewLevel()
}

// Start generates the first level and greets the player
func (e *Engine) Start() error {
	if err := e.NewLevel(); err != nil {
		return err
	}
	e.Game.ClearMessages()
	logMessage(e.Game, "WELCOME")
	return nil
}

package gameplay

import (
	engineinput "mazerunner/pkg/engine/input"
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/i18n"
	"mazerunner/pkg/game/state"
)

// ProcessIntent handles a high-level input intent.
// Zoom intents are view concerns and are ignored here.
func (e *Engine) ProcessIntent(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone, engineinput.ActionZoomIn, engineinput.ActionZoomOut:
		return

	case engineinput.ActionQuit:
		e.done = true
		return

	case engineinput.ActionMoveNorth:
		e.moveWithFeedback(world.North)
	case engineinput.ActionMoveSouth:
		e.moveWithFeedback(world.South)
	case engineinput.ActionMoveWest:
		e.moveWithFeedback(world.West)
	case engineinput.ActionMoveEast:
		e.moveWithFeedback(world.East)

	case engineinput.ActionNewLevel:
		if err := e.NewLevel(); err != nil {
			logMessage(e.Game, "GENERATION_FAILED", err.Error())
			return
		}
		logMessage(e.Game, "NEW_LEVEL")

	case engineinput.ActionInteract:
		e.interactWithFeedback()
	}
}

func (e *Engine) moveWithFeedback(dir world.Direction) {
	switch e.MoveDirection(dir) {
	case BlockedByWall:
		logMessage(e.Game, "HIT_WALL")
	case OutOfBounds:
		logMessage(e.Game, "MAP_EDGE")
	}
}

func (e *Engine) interactWithFeedback() {
	switch e.Interact() {
	case KeyCollected:
		logMessage(e.Game, "KEY_COLLECTED")
	case DoorLocked:
		logMessage(e.Game, "DOOR_LOCKED")
	case Nothing:
		logMessage(e.Game, "NOTHING_HERE")
	case LevelComplete:
		if err := e.AdvanceLevel(); err != nil {
			logMessage(e.Game, "GENERATION_FAILED", err.Error())
			return
		}
		logMessage(e.Game, "LEVEL_ADVANCED", e.Game.Level)
	}
}

// logMessage adds a translated message to the game's message log
func logMessage(g *state.Game, key string, a ...any) {
	if len(a) == 0 {
		g.AddMessage(i18n.Get(key))
		return
	}
	g.AddMessage(i18n.Getf(key, a...))
}

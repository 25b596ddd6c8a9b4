// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/events"
	"mazerunner/pkg/game/generator"
	"mazerunner/pkg/game/state"
)

// Engine drives one game over a state and a level generator.
// It is not safe for concurrent use; a single dispatcher calls it between frames.
type Engine struct {
	Game *state.Game

	generator generator.LevelGenerator
	sink      events.Sink
	done      bool
}

// NewEngine creates an engine over g. A nil sink discards events.
func NewEngine(g *state.Game, gen generator.LevelGenerator, sink events.Sink) *Engine {
	if sink == nil {
		sink = events.Nop{}
	}
	return &Engine{
		Game:      g,
		generator: gen,
		sink:      sink,
	}
}

// Done reports whether a quit was requested
func (e *Engine) Done() bool {
	return e.done
}

// emit reports an event at p
func (e *Engine) emit(kind events.Kind, p world.Position) {
	e.sink.Emit(events.Event{Kind: kind, Pos: p, Level: e.Game.Level})
}

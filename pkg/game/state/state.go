package state

import (
	"fmt"

	"mazerunner/pkg/engine/world"
)

// maxMessages is how many log lines the HUD keeps
const maxMessages = 5

// Player is the player entity
type Player struct {
	world.Position
}

// Key is the key entity. It is Offboard once collected.
type Key struct {
	world.Position
}

// Door is the exit door entity
type Door struct {
	world.Position
	Locked bool
}

// Game represents the runtime state of one maze session
type Game struct {
	Grid  *world.Grid
	Rooms []world.Room

	Player Player
	Key    Key
	Door   Door

	Messages []string

	Level int // Current level number, starting at 1
}

// NewGame creates a game on an all-wall board with every entity Offboard
func NewGame(size int) (*Game, error) {
	grid, err := world.NewGrid(size)
	if err != nil {
		return nil, err
	}
	return &Game{
		Grid:     grid,
		Player:   Player{Position: world.Offboard},
		Key:      Key{Position: world.Offboard},
		Door:     Door{Position: world.Offboard, Locked: true},
		Messages: make([]string, 0),
		Level:    1,
	}, nil
}

// ClearBoard resets every cell to Wall and every entity to Offboard
func (g *Game) ClearBoard() {
	g.Grid.Clear()
	g.Rooms = nil
	g.Player.Position = world.Offboard
	g.Key.Position = world.Offboard
	g.Door.Position = world.Offboard
}

// PlacePlayer puts the player at p. The cell is left as it is.
func (g *Game) PlacePlayer(p world.Position) error {
	if !g.Grid.IsValidPosition(p.X, p.Y) {
		return &world.BoundsError{X: p.X, Y: p.Y, Size: g.Grid.Size()}
	}
	g.Player.Position = p
	return nil
}

// PlaceKey puts the key at p and stamps the cell as KeySlot
func (g *Game) PlaceKey(p world.Position) error {
	if err := g.Grid.SetAt(p, world.KeySlot); err != nil {
		return fmt.Errorf("placing key: %w", err)
	}
	g.Key.Position = p
	return nil
}

// PlaceDoor puts a locked door at p and stamps the cell as LockedDoor
func (g *Game) PlaceDoor(p world.Position) error {
	if err := g.Grid.SetAt(p, world.LockedDoor); err != nil {
		return fmt.Errorf("placing door: %w", err)
	}
	g.Door.Position = p
	g.Door.Locked = true
	return nil
}

// CellAt returns the tag under p, or Wall when p is off the board
func (g *Game) CellAt(p world.Position) world.CellType {
	tag, err := g.Grid.GetAt(p)
	if err != nil {
		return world.Wall
	}
	return tag
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AdvanceLevel increments the level counter
func (g *Game) AdvanceLevel() {
	g.Level++
}

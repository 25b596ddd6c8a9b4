package devtools

import (
	"fmt"

	"mazerunner/pkg/engine/world"
	"mazerunner/pkg/game/state"
)

// devMinSize is the smallest board the developer rooms fit on
const devMinSize = 21

// SwitchToDevMap clears g's board and lays a small fixed level on it: three rooms
// in a row joined by one corridor, with the player in the west room, the door in
// the middle room and the key in the east room. The board keeps its size, so the
// engine's generator can still fill it for the next level.
func SwitchToDevMap(g *state.Game) error {
	size := g.Grid.Size()
	if size < devMinSize {
		return fmt.Errorf("%w: dev map needs a board of at least %d, got %d",
			world.ErrInvalidConfiguration, devMinSize, size)
	}
	g.ClearBoard()

	top := size/2 - 2
	rooms := []world.Room{
		world.NewRoom(1, top, 5, 5),
		world.NewRoom(8, top, 5, 5),
		world.NewRoom(15, top, 5, 5),
	}
	for _, r := range rooms {
		if err := g.Grid.FillRect(r.X, r.Y, r.W, r.H, world.Floor); err != nil {
			return fmt.Errorf("laying dev room: %w", err)
		}
	}
	if err := g.Grid.FillRect(rooms[0].CX, rooms[0].CY, rooms[2].CX-rooms[0].CX+1, 1, world.Floor); err != nil {
		return fmt.Errorf("laying dev corridor: %w", err)
	}

	g.Rooms = rooms
	if err := g.PlacePlayer(rooms[0].Center()); err != nil {
		return err
	}
	if err := g.PlaceDoor(rooms[1].Center()); err != nil {
		return err
	}
	return g.PlaceKey(rooms[2].Center())
}

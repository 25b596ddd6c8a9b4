// Package generator lays out rooms on a grid, connects them and picks spawn positions.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"mazerunner/pkg/engine/world"
)

// LevelGenerator is an interface for level layout algorithms.
// Generate stamps onto a grid that the caller has already cleared to walls.
type LevelGenerator interface {
	Generate(grid *world.Grid) (*Layout, error)
	Name() string
}

// minRooms is the smallest room list that has an interior room for the door
const minRooms = 3

// Layout is the result of one generation run
type Layout struct {
	// Rooms in connection order: room i is joined to room i+1
	Rooms []world.Room

	Player world.Position
	Key    world.Position
	Door   world.Position
}

// Validate checks the layout against a board of the given size
func (l *Layout) Validate(size int) error {
	if len(l.Rooms) < minRooms {
		return fmt.Errorf("%w: need at least %d rooms, got %d", world.ErrInvalidConfiguration, minRooms, len(l.Rooms))
	}
	for i, r := range l.Rooms {
		if !r.Within(size) {
			return fmt.Errorf("%w: room %d %+v outside board of size %d", world.ErrOutOfBounds, i, r, size)
		}
	}

	spawns := mapset.New[world.Position]()
	for _, p := range []world.Position{l.Player, l.Key, l.Door} {
		if !p.IsPlaced() {
			return fmt.Errorf("%w: spawn not placed", world.ErrInvalidConfiguration)
		}
		if spawns.Has(p) {
			return fmt.Errorf("%w: spawn %v used twice", world.ErrInvalidConfiguration, p)
		}
		spawns.Put(p)
	}
	return nil
}

// finishLayout connects the rooms as a chain and selects spawns.
// The player starts in the first room, the key sits in the last room and the
// door is in a uniformly chosen room strictly between them in list order.
func finishLayout(grid *world.Grid, rooms []world.Room, rng *rand.Rand) (*Layout, error) {
	if len(rooms) < minRooms {
		return nil, fmt.Errorf("%w: need at least %d rooms for door placement, got %d", world.ErrInvalidConfiguration, minRooms, len(rooms))
	}

	for i := 0; i < len(rooms)-1; i++ {
		if err := connectRooms(grid, rooms[i], rooms[i+1]); err != nil {
			return nil, err
		}
	}

	interior := rooms[1 : len(rooms)-1]
	doorRoom := interior[rng.Intn(len(interior))]

	return &Layout{
		Rooms:  rooms,
		Player: rooms[0].Center(),
		Key:    rooms[len(rooms)-1].Center(),
		Door:   doorRoom.Center(),
	}, nil
}

// connectRooms carves an L-shaped corridor: horizontal along from's center row,
// then vertical along to's center column.
func connectRooms(grid *world.Grid, from, to world.Room) error {
	if err := carveCorridorHorizontal(grid, from.CY, from.CX, to.CX); err != nil {
		return err
	}
	return carveCorridorVertical(grid, to.CX, from.CY, to.CY)
}

// carveCorridorHorizontal carves floor along a row, inclusive of both ends
func carveCorridorHorizontal(grid *world.Grid, row, startCol, endCol int) error {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		if err := grid.Set(col, row, world.Floor); err != nil {
			return err
		}
	}
	return nil
}

// carveCorridorVertical carves floor along a column, inclusive of both ends
func carveCorridorVertical(grid *world.Grid, col, startRow, endRow int) error {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		if err := grid.Set(col, row, world.Floor); err != nil {
			return err
		}
	}
	return nil
}

// ByName returns the generator registered under name
func ByName(name string, params Params, rng *rand.Rand) (LevelGenerator, error) {
	switch name {
	case "", BlocksName:
		return NewBlocks(params, rng), nil
	case BSPName:
		return NewBSP(params, rng), nil
	default:
		return nil, fmt.Errorf("%w: unknown generator %q", world.ErrInvalidConfiguration, name)
	}
}

package generator

import (
	"fmt"
	"math/rand"

	"mazerunner/pkg/engine/world"
)

// Generator names accepted by ByName
const (
	BlocksName = "blocks"
	BSPName    = "bsp"
)

// Params are the layout constants shared by the generators
type Params struct {
	BlocksPerSide int // macro-blocks per board side
	BlockSize     int // pitch between block origins
	BlockOffset   int // room anchor offset inside a block
	RoomMin       int // inclusive lower bound for room width/height
	RoomMax       int // inclusive upper bound for room width/height
}

// DefaultParams returns the parameters for a 61x61 board
func DefaultParams() Params {
	return Params{
		BlocksPerSide: 3,
		BlockSize:     20,
		BlockOffset:   1,
		RoomMin:       5,
		RoomMax:       19,
	}
}

// Blocks places one room per macro-block of a fixed partition, visiting the
// blocks in shuffled order. Rooms are anchored at the block origin and are not
// clamped, so a large room may spill into the neighbouring block.
type Blocks struct {
	params Params
	rng    *rand.Rand
}

// NewBlocks creates a macro-block generator drawing all randomness from rng
func NewBlocks(params Params, rng *rand.Rand) *Blocks {
	return &Blocks{params: params, rng: rng}
}

// Name returns the name of this generator
func (b *Blocks) Name() string {
	return "Macro Blocks"
}

// block is one cell of the macro partition
type block struct {
	col, row int
}

// Generate stamps the rooms and corridors and returns the layout
func (b *Blocks) Generate(grid *world.Grid) (*Layout, error) {
	p := b.params
	if p.RoomMin <= 0 || p.RoomMax < p.RoomMin {
		return nil, fmt.Errorf("%w: room size range [%d, %d]", world.ErrInvalidConfiguration, p.RoomMin, p.RoomMax)
	}
	if p.BlocksPerSide <= 0 {
		return nil, fmt.Errorf("%w: %d blocks per side", world.ErrInvalidConfiguration, p.BlocksPerSide)
	}

	blocks := make([]block, 0, p.BlocksPerSide*p.BlocksPerSide)
	for col := 0; col < p.BlocksPerSide; col++ {
		for row := 0; row < p.BlocksPerSide; row++ {
			blocks = append(blocks, block{col: col, row: row})
		}
	}
	b.rng.Shuffle(len(blocks), func(i, j int) {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	})

	rooms := make([]world.Room, 0, len(blocks))
	for _, blk := range blocks {
		w := p.RoomMin + b.rng.Intn(p.RoomMax-p.RoomMin+1)
		h := p.RoomMin + b.rng.Intn(p.RoomMax-p.RoomMin+1)
		x := blk.col*p.BlockSize + p.BlockOffset
		y := blk.row*p.BlockSize + p.BlockOffset

		if err := grid.FillRect(x, y, w, h, world.Floor); err != nil {
			return nil, fmt.Errorf("stamping room in block (%d,%d): %w", blk.col, blk.row, err)
		}
		rooms = append(rooms, world.NewRoom(x, y, w, h))
	}

	return finishLayout(grid, rooms, b.rng)
}

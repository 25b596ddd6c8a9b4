package generator

import (
	"fmt"
	"math/rand"

	"mazerunner/pkg/engine/world"
)

// BSPGenerator lays out rooms using Binary Space Partitioning, then joins them
// with the same chain of L-shaped corridors as the block generator.
type BSPGenerator struct {
	params Params
	rng    *rand.Rand
}

// NewBSP creates a BSP generator drawing all randomness from rng
func NewBSP(params Params, rng *rand.Rand) *BSPGenerator {
	return &BSPGenerator{params: params, rng: rng}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *world.Room
}

// roomPadding is the minimum gap between a room and its node edge
const roomPadding = 2

// Generate creates the room layout on grid
func (g *BSPGenerator) Generate(grid *world.Grid) (*Layout, error) {
	p := g.params
	if p.RoomMin <= 0 || p.RoomMax < p.RoomMin {
		return nil, fmt.Errorf("%w: room size range [%d, %d]", world.ErrInvalidConfiguration, p.RoomMin, p.RoomMax)
	}

	size := grid.Size()
	if size < 2+p.RoomMin+roomPadding {
		return nil, fmt.Errorf("%w: board of size %d too small for rooms of %d", world.ErrInvalidConfiguration, size, p.RoomMin)
	}

	// Leave a 1 cell border for perimeter walls
	root := &bspNode{
		x:      1,
		y:      1,
		width:  size - 2,
		height: size - 2,
	}

	g.split(root, p.RoomMin+roomPadding+1)
	g.createRooms(root)

	rooms := collectRooms(root)
	for _, r := range rooms {
		if err := grid.FillRect(r.X, r.Y, r.W, r.H, world.Floor); err != nil {
			return nil, fmt.Errorf("stamping room %+v: %w", r, err)
		}
	}

	// Tree order is spatial; shuffle so first/last/interior is not tied to position
	g.rng.Shuffle(len(rooms), func(i, j int) {
		rooms[i], rooms[j] = rooms[j], rooms[i]
	})

	return finishLayout(grid, rooms, g.rng)
}

// split recursively splits a BSP node
func (g *BSPGenerator) split(node *bspNode, minSize int) {
	canSplitW := node.width >= minSize*2
	canSplitH := node.height >= minSize*2

	var splitHorizontal bool
	switch {
	case canSplitW && canSplitH:
		if node.width == node.height {
			splitHorizontal = g.rng.Intn(2) == 0
		} else {
			splitHorizontal = node.height > node.width
		}
	case canSplitW:
		splitHorizontal = false
	case canSplitH:
		splitHorizontal = true
	default:
		return // Too small to split
	}

	if splitHorizontal {
		splitPoint := minSize + g.rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + g.rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	g.split(node.left, minSize)
	g.split(node.right, minSize)
}

// createRooms creates a room in every leaf large enough to hold one
func (g *BSPGenerator) createRooms(node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			g.createRooms(node.left)
		}
		if node.right != nil {
			g.createRooms(node.right)
		}
		return
	}

	maxW := min(g.params.RoomMax, node.width-roomPadding)
	maxH := min(g.params.RoomMax, node.height-roomPadding)
	if maxW < g.params.RoomMin || maxH < g.params.RoomMin {
		return
	}

	w := g.params.RoomMin + g.rng.Intn(maxW-g.params.RoomMin+1)
	h := g.params.RoomMin + g.rng.Intn(maxH-g.params.RoomMin+1)
	x := node.x + g.rng.Intn(node.width-w)
	y := node.y + g.rng.Intn(node.height-h)

	room := world.NewRoom(x, y, w, h)
	node.room = &room
}

// collectRooms collects all rooms from the BSP tree in left-to-right order
func collectRooms(node *bspNode) []world.Room {
	var rooms []world.Room

	if node.room != nil {
		rooms = append(rooms, *node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}

package world

import "fmt"

// Grid is a square board of cell tags with side length fixed at construction.
// Every coordinate in [0, size) x [0, size) holds a tag; anything else is out of bounds.
type Grid struct {
	size  int
	cells []CellType
}

// NewGrid creates a grid of the given side length with every cell set to Wall
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidConfiguration, size)
	}
	return &Grid{
		size:  size,
		cells: make([]CellType, size*size),
	}, nil
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

func (g *Grid) index(x, y int) (int, error) {
	if !g.IsValidPosition(x, y) {
		return 0, &BoundsError{X: x, Y: y, Size: g.size}
	}
	return y*g.size + x, nil
}

// Get returns the tag at (x, y)
func (g *Grid) Get(x, y int) (CellType, error) {
	i, err := g.index(x, y)
	if err != nil {
		return Wall, err
	}
	return g.cells[i], nil
}

// GetAt returns the tag at p
func (g *Grid) GetAt(p Position) (CellType, error) {
	return g.Get(p.X, p.Y)
}

// Set writes a tag at (x, y). Callers are responsible for not clobbering special cells.
func (g *Grid) Set(x, y int, tag CellType) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cells[i] = tag
	return nil
}

// SetAt writes a tag at p
func (g *Grid) SetAt(p Position, tag CellType) error {
	return g.Set(p.X, p.Y, tag)
}

// Clear sets every cell to Wall. Entity positions are not owned by the grid.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Wall
	}
}

// FillRect stamps a w x h rectangle anchored at (x, y). Nothing is written if any part is out of bounds.
func (g *Grid) FillRect(x, y, w, h int, tag CellType) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if !g.IsValidPosition(x, y) {
		return &BoundsError{X: x, Y: y, Size: g.size}
	}
	if !g.IsValidPosition(x+w-1, y+h-1) {
		return &BoundsError{X: x + w - 1, Y: y + h - 1, Size: g.size}
	}
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			g.cells[row*g.size+col] = tag
		}
	}
	return nil
}

// ForEachCell iterates over all cells in the grid, row by row
func (g *Grid) ForEachCell(fn func(x, y int, tag CellType)) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			fn(x, y, g.cells[y*g.size+x])
		}
	}
}

// Count returns how many cells carry the given tag
func (g *Grid) Count(tag CellType) int {
	n := 0
	for _, c := range g.cells {
		if c == tag {
			n++
		}
	}
	return n
}

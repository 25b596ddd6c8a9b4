package renderer

import "mazerunner/pkg/engine/world"

// Viewport is the square window of the board drawn on screen
type Viewport struct {
	X, Y int // top-left board cell
	Size int // width and height in tiles
}

// Camera centres a window of size tiles on focus, locked to the edges of an
// n-cell board. A window larger than the board is shrunk to the board.
func Camera(focus world.Position, size, n int) Viewport {
	if size > n {
		size = n
	}
	if size < 1 {
		size = 1
	}
	return Viewport{
		X:    cameraAxis(focus.X, size, n),
		Y:    cameraAxis(focus.Y, size, n),
		Size: size,
	}
}

func cameraAxis(p, size, n int) int {
	half := size / 2
	switch {
	case p-half < 0:
		return 0
	case p+half > n-1:
		return n - size
	default:
		return p - half
	}
}

// Contains reports whether board cell (x, y) is inside the window
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.Size && y >= v.Y && y < v.Y+v.Size
}

// ToScreen converts a board cell to its tile coordinates inside the window
func (v Viewport) ToScreen(x, y int) (col, row int) {
	return x - v.X, y - v.Y
}

// Each calls fn for every board cell in the window, row by row
func (v Viewport) Each(fn func(x, y int)) {
	for y := v.Y; y < v.Y+v.Size; y++ {
		for x := v.X; x < v.X+v.Size; x++ {
			fn(x, y)
		}
	}
}

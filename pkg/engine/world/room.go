package world

// Room is a rectangular region stamped as floor during generation.
// CX and CY are the precomputed center (integer division).
type Room struct {
	X, Y   int
	W, H   int
	CX, CY int
}

// NewRoom creates a room anchored at (x, y) and computes its center
func NewRoom(x, y, w, h int) Room {
	return Room{
		X:  x,
		Y:  y,
		W:  w,
		H:  h,
		CX: x + w/2,
		CY: y + h/2,
	}
}

// Center returns the room center as a position
func (r Room) Center() Position {
	return Position{X: r.CX, Y: r.CY}
}

// Contains returns true if p lies inside the room rectangle
func (r Room) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Within returns true if the room has positive dimensions and lies inside [0, size)
func (r Room) Within(size int) bool {
	return r.W > 0 && r.H > 0 &&
		r.X >= 0 && r.Y >= 0 &&
		r.X+r.W <= size && r.Y+r.H <= size
}

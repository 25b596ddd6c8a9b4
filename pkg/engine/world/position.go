package world

import "fmt"

// Position is an (x, y) coordinate on the board. Entities embed it.
type Position struct {
	X int
	Y int
}

// Offboard is the sentinel for "not placed" and for a collected key.
var Offboard = Position{X: -1, Y: -1}

// Pos is a shorthand constructor
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// IsPlaced returns true unless the position is the Offboard sentinel
func (p Position) IsPlaced() bool {
	return p != Offboard
}

// Add returns the position offset by (dx, dy)
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns the position as "[x, y]"
func (p Position) String() string {
	return fmt.Sprintf("[%d, %d]", p.X, p.Y)
}

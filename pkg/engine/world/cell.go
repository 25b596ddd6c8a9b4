// Package world provides the grid primitives the maze is built from.
// These are engine-level constructs with no knowledge of game rules.
package world

// CellType is the tag carried by every cell of the grid.
// A cell holds exactly one tag; it is the only record of what occupies the cell.
type CellType int

// Cell type constants. The zero value is Wall so a freshly allocated grid is solid.
const (
	Wall CellType = iota
	Floor
	KeySlot
	LockedDoor
	UnlockedDoor
)

// AllCellTypes returns every cell type for iteration
func AllCellTypes() []CellType {
	return []CellType{Wall, Floor, KeySlot, LockedDoor, UnlockedDoor}
}

// String returns the string representation of a cell type
func (c CellType) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case KeySlot:
		return "KeySlot"
	case LockedDoor:
		return "LockedDoor"
	case UnlockedDoor:
		return "UnlockedDoor"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the cell type is one of the known tags
func (c CellType) IsValid() bool {
	return c >= Wall && c <= UnlockedDoor
}

// IsWalkable returns true if the player may stand on a cell of this type.
// Key and door cells are walkable; standing on them is how interaction happens.
func (c CellType) IsWalkable() bool {
	return c.IsValid() && c != Wall
}

// IsDoor returns true for both door states
func (c CellType) IsDoor() bool {
	return c == LockedDoor || c == UnlockedDoor
}

package gameplay

// MoveOutcome is the tagged result of a move request
type MoveOutcome int

const (
	Moved MoveOutcome = iota
	BlockedByWall
	OutOfBounds
)

// String returns the string representation of a move outcome
func (m MoveOutcome) String() string {
	switch m {
	case Moved:
		return "Moved"
	case BlockedByWall:
		return "BlockedByWall"
	case OutOfBounds:
		return "OutOfBounds"
	default:
		return "Unknown"
	}
}

// InteractionOutcome is the tagged result of an interact request
type InteractionOutcome int

const (
	Nothing InteractionOutcome = iota
	KeyCollected
	DoorLocked
	LevelComplete
)

// String returns the string representation of an interaction outcome
func (i InteractionOutcome) String() string {
	switch i {
	case Nothing:
		return "Nothing"
	case KeyCollected:
		return "KeyCollected"
	case DoorLocked:
		return "DoorLocked"
	case LevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

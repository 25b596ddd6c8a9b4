package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate falls outside [0, size).
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidConfiguration is returned when parameters cannot produce a playable level.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// BoundsError describes a rejected coordinate. It matches ErrOutOfBounds with errors.Is.
type BoundsError struct {
	X, Y int
	Size int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: [%d, %d] not in [0, %d)", ErrOutOfBounds, e.X, e.Y, e.Size)
}

// Unwrap returns ErrOutOfBounds
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

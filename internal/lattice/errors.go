package lattice

import "errors"

var (
	// ErrOutOfRange is returned when a position lies outside the grid.
	ErrOutOfRange = errors.New("lattice: position out of range")
	// ErrFormat is returned when an initial configuration cannot be parsed.
	ErrFormat = errors.New("lattice: malformed configuration")
	// ErrDimensions is returned for grids with a non-positive extent.
	ErrDimensions = errors.New("lattice: invalid dimensions")
)

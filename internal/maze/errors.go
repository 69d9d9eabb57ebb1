package maze

import "errors"

var (
	// ErrInvalidDimension indicates a grid with non-positive rows or columns.
	ErrInvalidDimension = errors.New("maze: rows and columns must be positive")

	// ErrNotAdjacent indicates a wall removal between cells that are not one orthogonal step apart.
	ErrNotAdjacent = errors.New("maze: cells are not adjacent")

	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
)

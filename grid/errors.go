package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrMalformedGrid indicates rows of differing lengths.
	ErrMalformedGrid = errors.New("grid: all rows must have the same length")
	// ErrMissingStart indicates no cell holds the start marker.
	ErrMissingStart = errors.New("grid: start marker not found")
	// ErrOutOfBounds indicates a coordinate outside the grid where one is required.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

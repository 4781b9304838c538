package life

import "errors"

// Validation errors for field construction and seeding.
var (
	// ErrInvalidDimension indicates a non-positive field width or height.
	ErrInvalidDimension = errors.New("life: dimension must be positive")

	// ErrInvalidProbability indicates an alive probability outside [0, 1].
	ErrInvalidProbability = errors.New("life: alive probability must be within [0, 1]")
)

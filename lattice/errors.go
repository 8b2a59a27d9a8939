package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrNonPositiveDimension indicates New was called with width, height,
	// or depth less than 1.
	ErrNonPositiveDimension = errors.New("lattice: width, height, and depth must each be >= 1")
)

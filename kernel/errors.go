package kernel

import "errors"

var (
	// ErrUnknownKernel indicates an Options.Type outside the enumerated set.
	ErrUnknownKernel = errors.New("kernel: unknown kernel type")

	// ErrNilInput indicates a nil X matrix was supplied.
	ErrNilInput = errors.New("kernel: nil input matrix")

	// ErrDimensionMismatch indicates X and Y disagree on feature count.
	ErrDimensionMismatch = errors.New("kernel: feature dimension mismatch")

	// ErrBadDegree indicates a polynomial degree below 1.
	ErrBadDegree = errors.New("kernel: polynomial degree must be >= 1")
)

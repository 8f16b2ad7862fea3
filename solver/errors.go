package solver

import "errors"

var (
	// ErrBadShape indicates a non-square system matrix or mismatched operands.
	ErrBadShape = errors.New("solver: bad operand shape")

	// ErrBadLabels indicates a QP label vector with entries outside {−1,+1}.
	ErrBadLabels = errors.New("solver: QP labels must be -1 or +1")

	// ErrBadPenalty indicates a QP box bound C ≤ 0.
	ErrBadPenalty = errors.New("solver: QP penalty C must be > 0")

	// ErrQPNoConvergence indicates the SMO loop hit its iteration cap before
	// the KKT violation dropped below tolerance.
	ErrQPNoConvergence = errors.New("solver: QP did not converge")

	// ErrSingular indicates an exactly singular linear system.
	ErrSingular = errors.New("solver: singular system matrix")

	// ErrEigenFailed indicates the eigendecomposition did not converge.
	ErrEigenFailed = errors.New("solver: eigen decomposition failed")
)

package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Linear solves the dense system A·X = B by LU decomposition and returns X.
// An ill-conditioned but solvable system is accepted (gonum's Condition
// convention); exact singularity surfaces ErrSingular.
func Linear(a, b mat.Matrix) (*mat.Dense, error) {
	if a == nil || b == nil {
		return nil, ErrBadShape
	}
	n, m := a.Dims()
	br, _ := b.Dims()
	if n != m || br != n {
		return nil, ErrBadShape
	}

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		// A finite condition number means "solved, but ill-conditioned";
		// an infinite one means exact singularity.
		var cond mat.Condition
		if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
			return &x, nil
		}

		return nil, fmt.Errorf("linear solve: %w", ErrSingular)
	}

	return &x, nil
}

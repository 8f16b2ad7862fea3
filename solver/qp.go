package solver

import (
	"gonum.org/v1/gonum/mat"
)

// tau is the floor for the pairwise curvature term; a non-positive curvature
// means the objective is flat (or concave) along the pair direction and the
// step degenerates to a box move.
const tau = 1e-12

// QPOptions configures the SMO loop.
//
// Fields:
//   - Tol     — KKT violation threshold for convergence. Zero or negative
//     selects the 1e-6 default.
//   - MaxIter — iteration cap. Zero or negative selects max(10000, 100·n).
type QPOptions struct {
	Tol     float64
	MaxIter int
}

// DefaultQPOptions returns the documented defaults (Tol 1e-6, auto cap).
func DefaultQPOptions() QPOptions {
	return QPOptions{Tol: 1e-6, MaxIter: 0}
}

// QP solves min ½αᵀQα − 1ᵀα subject to yᵀα = 0 and 0 ≤ αᵢ ≤ c by
// sequential minimal optimization with maximal-violating-pair selection.
//
// q must be square and symmetric with len(y) rows; y entries must be ±1.
// Non-convergence within the iteration cap returns ErrQPNoConvergence and
// no α — a partial solution must never be mistaken for a fit.
func QP(q mat.Matrix, y []float64, c float64, opts QPOptions) ([]float64, error) {
	if q == nil {
		return nil, ErrBadShape
	}
	n, m := q.Dims()
	if n != m || n != len(y) {
		return nil, ErrBadShape
	}
	for _, v := range y {
		if v != 1 && v != -1 {
			return nil, ErrBadLabels
		}
	}
	if c <= 0 {
		return nil, ErrBadPenalty
	}

	tol := opts.Tol
	if tol <= 0 {
		tol = 1e-6
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = 100 * n
		if maxIter < 10000 {
			maxIter = 10000
		}
	}

	alpha := make([]float64, n)
	// Gradient of the objective at α=0: G = Qα − 1 = −1.
	grad := make([]float64, n)
	for t := range grad {
		grad[t] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		i, j, gap := selectPair(alpha, grad, y, c)
		if i < 0 || gap <= tol {
			return alpha, nil
		}

		// Curvature along the feasible pair direction.
		a := q.At(i, i) + q.At(j, j) - 2*y[i]*y[j]*q.At(i, j)
		if a <= 0 {
			a = tau
		}
		step := gap / a

		// Move along ±y while preserving yᵀα, then project onto the box.
		oldI, oldJ := alpha[i], alpha[j]
		sum := y[i]*oldI + y[j]*oldJ
		alpha[i] = clip(oldI+y[i]*step, c)
		alpha[j] = clip(y[j]*(sum-y[i]*alpha[i]), c)
		alpha[i] = clip(y[i]*(sum-y[j]*alpha[j]), c)

		dI, dJ := alpha[i]-oldI, alpha[j]-oldJ
		for t := 0; t < n; t++ {
			grad[t] += q.At(t, i)*dI + q.At(t, j)*dJ
		}
	}

	return nil, ErrQPNoConvergence
}

// selectPair picks the maximal violating pair (i from the "up" set, j from
// the "down" set) and returns the KKT gap between them. i = −1 signals an
// empty candidate set (already optimal).
func selectPair(alpha, grad, y []float64, c float64) (i, j int, gap float64) {
	i, j = -1, -1
	up, down := 0.0, 0.0
	for t := range alpha {
		v := -y[t] * grad[t]
		if canIncrease(alpha[t], y[t], c) && (i < 0 || v > up) {
			i, up = t, v
		}
		if canDecrease(alpha[t], y[t], c) && (j < 0 || v < down) {
			j, down = t, v
		}
	}
	if i < 0 || j < 0 {
		return -1, -1, 0
	}

	return i, j, up - down
}

// canIncrease reports whether α_t may grow along +y_t without leaving the box.
func canIncrease(a, y, c float64) bool {
	return (y > 0 && a < c) || (y < 0 && a > 0)
}

// canDecrease reports whether α_t may shrink along +y_t without leaving the box.
func canDecrease(a, y, c float64) bool {
	return (y > 0 && a > 0) || (y < 0 && a < c)
}

// clip projects v onto [0, c].
func clip(v, c float64) float64 {
	if v < 0 {
		return 0
	}
	if v > c {
		return c
	}

	return v
}

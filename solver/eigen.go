package solver

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// eigenRidge scales the diagonal stabilizer added to the constraint matrix
// before inversion. Centered constraint matrices (K·H·Kᵀ) are rank-deficient
// by construction, so the reduction to a standard eigenproblem needs a ridge.
const eigenRidge = 1e-10

// GeneralizedEigen solves A·v = θ·B·v for square A, B of equal size.
//
// The pair is reduced to the standard problem (B+εI)⁻¹·A and decomposed with
// a non-symmetric eigensolver. Returned are the eigenvalue magnitudes |θ|
// and the real parts of the right eigenvectors, columns sorted by ascending
// |θ| — the smallest-discrepancy directions come first, matching the
// minimization objective of the embedding drivers.
//
// Errors:
//   - ErrBadShape    — operands not square or sizes differ.
//   - ErrSingular    — B is singular even after ridge stabilization.
//   - ErrEigenFailed — the eigendecomposition did not converge.
func GeneralizedEigen(a, b mat.Matrix) ([]float64, *mat.Dense, error) {
	if a == nil || b == nil {
		return nil, nil, ErrBadShape
	}
	n, m := a.Dims()
	bn, bm := b.Dims()
	if n != m || bn != bm || n != bn {
		return nil, nil, ErrBadShape
	}

	// Ridge-stabilize B relative to its diagonal scale.
	bd := mat.DenseCopyOf(b)
	var diagScale float64
	for i := 0; i < n; i++ {
		diagScale += math.Abs(bd.At(i, i))
	}
	eps := eigenRidge * (1 + diagScale/float64(n))
	for i := 0; i < n; i++ {
		bd.Set(i, i, bd.At(i, i)+eps)
	}

	var lu mat.LU
	lu.Factorize(bd)
	var reduced mat.Dense
	if err := lu.SolveTo(&reduced, false, a); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, nil, fmt.Errorf("generalized eigen: %w", ErrSingular)
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(&reduced, mat.EigenRight); !ok {
		return nil, nil, ErrEigenFailed
	}

	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	// Ascending |θ|, ties broken by original index for determinism.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return cmplx.Abs(values[order[x]]) < cmplx.Abs(values[order[y]])
	})

	outVals := make([]float64, n)
	outVecs := mat.NewDense(n, n, nil)
	for rank, idx := range order {
		outVals[rank] = cmplx.Abs(values[idx])
		for row := 0; row < n; row++ {
			outVecs.Set(row, rank, real(vectors.At(row, idx)))
		}
	}

	return outVals, outVecs, nil
}

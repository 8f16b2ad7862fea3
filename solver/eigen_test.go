package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/domainshift/adapt/solver"
)

// TestGeneralizedEigen_DiagonalPair checks a pair with hand-computable
// eigenvalues: A=diag(2,6), B=diag(1,2) ⇒ θ ∈ {2, 3}, ascending order.
func TestGeneralizedEigen_DiagonalPair(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 0, 0, 6})
	b := mat.NewDense(2, 2, []float64{1, 0, 0, 2})

	vals, vecs, err := solver.GeneralizedEigen(a, b)
	require.NoError(t, err)

	require.Len(t, vals, 2)
	assert.InDelta(t, 2.0, vals[0], 1e-6, "smallest |θ| first")
	assert.InDelta(t, 3.0, vals[1], 1e-6)

	// Residual check A·v ≈ θ·B·v per returned column.
	for k := 0; k < 2; k++ {
		v := mat.NewVecDense(2, []float64{vecs.At(0, k), vecs.At(1, k)})
		var av, bv mat.VecDense
		av.MulVec(a, v)
		bv.MulVec(b, v)
		for row := 0; row < 2; row++ {
			assert.InDelta(t, av.AtVec(row), vals[k]*bv.AtVec(row), 1e-6,
				"residual of eigenpair %d at row %d", k, row)
		}
	}
}

// TestGeneralizedEigen_AscendingOrder verifies the ordering contract on a
// shuffled spectrum.
func TestGeneralizedEigen_AscendingOrder(t *testing.T) {
	a := mat.NewDense(3, 3, []float64{
		5, 0, 0,
		0, 1, 0,
		0, 0, 3,
	})
	b := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})

	vals, _, err := solver.GeneralizedEigen(a, b)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, vals[0], 1e-6)
	assert.InDelta(t, 3.0, vals[1], 1e-6)
	assert.InDelta(t, 5.0, vals[2], 1e-6)
}

// TestGeneralizedEigen_RankDeficientConstraint verifies the ridge lets a
// centering-style singular B through (the embedding drivers depend on this).
func TestGeneralizedEigen_RankDeficientConstraint(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 2})
	// B = [[1,−1],[−1,1]] is singular (rank 1).
	b := mat.NewDense(2, 2, []float64{1, -1, -1, 1})

	vals, vecs, err := solver.GeneralizedEigen(a, b)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	r, c := vecs.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
}

// TestGeneralizedEigen_ShapeValidation covers the operand sentinels.
func TestGeneralizedEigen_ShapeValidation(t *testing.T) {
	square := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	_, _, err := solver.GeneralizedEigen(nil, square)
	assert.ErrorIs(t, err, solver.ErrBadShape)

	rect := mat.NewDense(2, 3, nil)
	_, _, err = solver.GeneralizedEigen(rect, square)
	assert.ErrorIs(t, err, solver.ErrBadShape)

	big := mat.NewDense(3, 3, nil)
	_, _, err = solver.GeneralizedEigen(square, big)
	assert.ErrorIs(t, err, solver.ErrBadShape)
}

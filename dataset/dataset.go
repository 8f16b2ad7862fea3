package dataset

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilSource indicates Pool was called without source data.
	ErrNilSource = errors.New("dataset: source matrix must not be nil")

	// ErrEmptyMatrix indicates a matrix with zero rows or columns.
	ErrEmptyMatrix = errors.New("dataset: matrix must have at least one row and one column")

	// ErrDimensionMismatch indicates source and target feature counts differ.
	ErrDimensionMismatch = errors.New("dataset: source/target feature dimension mismatch")

	// ErrLabelSize indicates labels that do not align with their sample rows:
	// ys must label every source row, yt at most a leading block of target rows.
	ErrLabelSize = errors.New("dataset: label slice size mismatch")
)

// Pooled is the stacked source-then-target training set.
type Pooled struct {
	// X holds the pooled samples, source rows first.
	X *mat.Dense

	// Y holds the pooled labels: all source labels followed by the labeled
	// target block. len(Y) == NLabeled, which may be less than N().
	Y []int

	// Ns and Nt are the source and target row counts (Nt is 0 without target).
	Ns, Nt int

	// NLabeled counts the labeled leading rows of X.
	NLabeled int
}

// N returns the pooled sample count Ns+Nt.
func (p *Pooled) N() int { return p.Ns + p.Nt }

// Pool stacks source and target samples into one matrix, source rows first,
// and concatenates the label slices. ys may be nil (unsupervised embedding);
// when present it must label every source row. yt may be nil or label a
// leading block of target rows; yt without ys is rejected since labeled rows
// must form one contiguous leading block.
func Pool(xs mat.Matrix, ys []int, xt mat.Matrix, yt []int) (*Pooled, error) {
	if xs == nil {
		return nil, ErrNilSource
	}
	ns, d := xs.Dims()
	if ns == 0 || d == 0 {
		return nil, ErrEmptyMatrix
	}
	if ys != nil && len(ys) != ns {
		return nil, ErrLabelSize
	}

	var nt int
	if xt != nil {
		var dt int
		nt, dt = xt.Dims()
		if nt == 0 || dt == 0 {
			return nil, ErrEmptyMatrix
		}
		if dt != d {
			return nil, ErrDimensionMismatch
		}
	}
	if len(yt) > 0 && (ys == nil || xt == nil || len(yt) > nt) {
		return nil, ErrLabelSize
	}

	n := ns + nt
	x := mat.NewDense(n, d, nil)
	row := make([]float64, d)
	for i := 0; i < ns; i++ {
		mat.Row(row, i, xs)
		x.SetRow(i, row)
	}
	for i := 0; i < nt; i++ {
		mat.Row(row, i, xt)
		x.SetRow(ns+i, row)
	}

	var y []int
	if ys != nil {
		y = make([]int, 0, len(ys)+len(yt))
		y = append(y, ys...)
		y = append(y, yt...)
	}

	return &Pooled{X: x, Y: y, Ns: ns, Nt: nt, NLabeled: len(y)}, nil
}

// Identity returns the n×n identity matrix as a Dense.
func Identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// Centering returns H = I − (1/n)·1·1ᵀ, the idempotent matrix that removes
// the column mean: H·1 = 0.
func Centering(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	off := -1 / float64(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				m.Set(i, j, 1+off)
			} else {
				m.Set(i, j, off)
			}
		}
	}

	return m
}

// LabeledMask returns the n×n label-presence matrix J: identity on the first
// nl (labeled) rows, zero elsewhere.
func LabeledMask(n, nl int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < nl && i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

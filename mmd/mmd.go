package mmd

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Kind selects the MMD weighting variant.
type Kind int

const (
	// Marginal weighting uses domain membership only.
	Marginal Kind = iota

	// Joint weighting adds class-conditional terms to the marginal ones.
	Joint
)

// String returns the canonical lowercase name of the weighting kind.
func (k Kind) String() string {
	switch k {
	case Marginal:
		return "marginal"
	case Joint:
		return "joint"
	default:
		return "unknown"
	}
}

var (
	// ErrBadSize indicates ns < 1 or nt < 1.
	ErrBadSize = errors.New("mmd: source and target sizes must be >= 1")

	// ErrBadMu indicates a negative balance parameter.
	ErrBadMu = errors.New("mmd: mu must be >= 0")

	// ErrUnknownKind indicates a Kind outside the enumerated set.
	ErrUnknownKind = errors.New("mmd: unknown weighting kind")

	// ErrLabelSize indicates len(ys) != ns or len(yt) > nt.
	ErrLabelSize = errors.New("mmd: label slice size mismatch")
)

// Coef builds the (ns+nt)×(ns+nt) MMD coefficient matrix.
//
// Row order is source-then-target, matching the pooled dataset convention.
// ys must label every source row when present; yt may label only a leading
// block of target rows (semi-supervised). For Kind Joint with labels absent
// the result degenerates to the marginal weighting.
//
// μ interpolates the conditional contribution: M = M₀ + μ·Σ_c M_c, so μ=0
// reproduces the marginal matrix exactly (TCA), μ=1 the full joint weighting
// (JDA), and intermediate values the BDA blend.
func Coef(ns, nt int, ys, yt []int, kind Kind, mu float64) (*mat.Dense, error) {
	if ns < 1 || nt < 1 {
		return nil, ErrBadSize
	}
	if mu < 0 {
		return nil, ErrBadMu
	}
	if kind != Marginal && kind != Joint {
		return nil, ErrUnknownKind
	}
	if ys != nil && len(ys) != ns {
		return nil, ErrLabelSize
	}
	if len(yt) > nt {
		return nil, ErrLabelSize
	}

	n := ns + nt
	e := make([]float64, n)
	for i := 0; i < ns; i++ {
		e[i] = 1 / float64(ns)
	}
	for i := ns; i < n; i++ {
		e[i] = -1 / float64(nt)
	}

	m := mat.NewDense(n, n, nil)
	addOuter(m, e, 1)

	if kind == Joint && ys != nil && mu > 0 {
		for _, c := range classUnion(ys, yt) {
			ec, ok := classIndicator(ns, n, ys, yt, c)
			if !ok {
				continue // class absent in one domain: no conditional term
			}
			addOuter(m, ec, mu)
		}
	}

	return m, nil
}

// classUnion returns the sorted distinct classes across both label slices.
func classUnion(ys, yt []int) []int {
	seen := make(map[int]struct{}, len(ys))
	for _, c := range ys {
		seen[c] = struct{}{}
	}
	for _, c := range yt {
		seen[c] = struct{}{}
	}

	classes := make([]int, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	return classes
}

// classIndicator builds the class-restricted weighting vector for class c:
// +1/ns_c on source rows of class c, −1/nt_c on target rows of class c.
// ok is false when either domain has no labeled rows of the class.
func classIndicator(ns, n int, ys, yt []int, c int) ([]float64, bool) {
	var srcCount, tgtCount int
	for _, y := range ys {
		if y == c {
			srcCount++
		}
	}
	for _, y := range yt {
		if y == c {
			tgtCount++
		}
	}
	if srcCount == 0 || tgtCount == 0 {
		return nil, false
	}

	ec := make([]float64, n)
	for i, y := range ys {
		if y == c {
			ec[i] = 1 / float64(srcCount)
		}
	}
	for i, y := range yt {
		if y == c {
			ec[ns+i] = -1 / float64(tgtCount)
		}
	}

	return ec, true
}

// addOuter accumulates dst += w·(e·eᵀ), walking the upper triangle and
// mirroring to keep the result symmetric by construction.
func addOuter(dst *mat.Dense, e []float64, w float64) {
	n := len(e)
	for i := 0; i < n; i++ {
		if e[i] == 0 {
			continue
		}
		for j := i; j < n; j++ {
			if e[j] == 0 {
				continue
			}
			v := w * e[i] * e[j]
			dst.Set(i, j, dst.At(i, j)+v)
			if i != j {
				dst.Set(j, i, dst.At(j, i)+v)
			}
		}
	}
}

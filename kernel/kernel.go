package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix computes the pairwise kernel matrix K (n×m) between the rows of x
// (n×d) and y (m×d) under opts. Passing y == nil evaluates the Gram matrix
// of x against itself, which is symmetric for every supported family.
//
// NaN entries (degenerate inputs such as zero vectors under Cosine) are
// replaced by 0 before the matrix is returned.
//
// Errors:
//   - ErrNilInput          — x is nil.
//   - ErrDimensionMismatch — x and y disagree on column count.
//   - ErrBadDegree         — Polynomial with Degree < 1.
//   - ErrUnknownKernel     — Options.Type outside the enumerated families.
func Matrix(x, y mat.Matrix, opts Options) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilInput
	}
	if y == nil {
		y = x
	}

	n, d := x.Dims()
	m, dy := y.Dims()
	if d != dy {
		return nil, ErrDimensionMismatch
	}
	if opts.Type == Polynomial && opts.Degree < 1 {
		return nil, ErrBadDegree
	}

	// Resolve the gamma default once: 1/n_features when unset.
	gamma := opts.Gamma
	if gamma <= 0 {
		gamma = 1 / float64(d)
	}

	eval, err := evaluator(opts, gamma)
	if err != nil {
		return nil, err
	}

	k := mat.NewDense(n, m, nil)
	xi := make([]float64, d)
	yj := make([]float64, d)
	for i := 0; i < n; i++ {
		mat.Row(xi, i, x)
		for j := 0; j < m; j++ {
			mat.Row(yj, j, y)
			v := eval(xi, yj)
			if math.IsNaN(v) {
				v = 0 // sanitize: NaN must not reach downstream solvers
			}
			k.Set(i, j, v)
		}
	}

	return k, nil
}

// evaluator returns the scalar kernel function for the configured family.
func evaluator(opts Options, gamma float64) (func(a, b []float64) float64, error) {
	switch opts.Type {
	case Linear:
		return floats.Dot, nil
	case Polynomial:
		degree := opts.Degree
		coef0 := opts.Coef0
		return func(a, b []float64) float64 {
			return powi(gamma*floats.Dot(a, b)+coef0, degree)
		}, nil
	case RBF:
		return func(a, b []float64) float64 {
			return math.Exp(-gamma * sqDist(a, b))
		}, nil
	case Sigmoid:
		coef0 := opts.Coef0
		return func(a, b []float64) float64 {
			return math.Tanh(gamma*floats.Dot(a, b) + coef0)
		}, nil
	case Cosine:
		return func(a, b []float64) float64 {
			return floats.Dot(a, b) / (floats.Norm(a, 2) * floats.Norm(b, 2))
		}, nil
	default:
		return nil, ErrUnknownKernel
	}
}

// sqDist returns the squared Euclidean distance between a and b.
func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}

// powi computes base^times by repeated squaring for non-negative integer
// exponents, avoiding math.Pow's domain edge cases.
func powi(base float64, times int) float64 {
	tmp, ret := base, 1.0
	for t := times; t > 0; t /= 2 {
		if t%2 == 1 {
			ret *= tmp
		}
		tmp *= tmp
	}

	return ret
}

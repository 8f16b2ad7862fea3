package manifold

import (
	"math"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LapNorm builds the symmetric normalized graph Laplacian
// L = I − D^{−1/2}·W·D^{−1/2} over the k-nearest-neighbor graph of the rows
// of x. W is the max-symmetrized adjacency; edge weights follow opts.Mode.
//
// Errors:
//   - ErrNilInput         — x is nil.
//   - ErrBadNeighborCount — KNeighbors < 1.
//   - ErrTooFewSamples    — KNeighbors >= n.
//   - ErrUnknownMetric / ErrUnknownMode — invalid configuration.
func LapNorm(x mat.Matrix, opts Options) (*mat.Dense, error) {
	if x == nil {
		return nil, ErrNilInput
	}
	n, d := x.Dims()
	if opts.KNeighbors < 1 {
		return nil, ErrBadNeighborCount
	}
	if opts.KNeighbors >= n {
		return nil, ErrTooFewSamples
	}
	if opts.Mode != Connectivity && opts.Mode != Distance {
		return nil, ErrUnknownMode
	}
	dist, err := metricFunc(opts.Metric)
	if err != nil {
		return nil, err
	}

	// Directed k-NN adjacency in sparse storage: n·k nonzeros out of n².
	adj := sparse.NewDOK(n, n)
	ri := make([]float64, d)
	rj := make([]float64, d)
	cand := make([]neighbor, 0, n-1)
	for i := 0; i < n; i++ {
		mat.Row(ri, i, x)
		cand = cand[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			mat.Row(rj, j, x)
			cand = append(cand, neighbor{idx: j, dist: dist(ri, rj)})
		}
		// Deterministic order: by distance, ties by index.
		sort.Slice(cand, func(a, b int) bool {
			if cand[a].dist != cand[b].dist {
				return cand[a].dist < cand[b].dist
			}

			return cand[a].idx < cand[b].idx
		})
		for _, nb := range cand[:opts.KNeighbors] {
			if opts.Mode == Connectivity {
				adj.Set(i, nb.idx, 1)
			} else {
				adj.Set(i, nb.idx, nb.dist)
			}
		}
	}

	// Undirected graph: W = max(W, Wᵀ).
	w := sparse.NewDOK(n, n)
	adj.DoNonZero(func(i, j int, v float64) {
		if back := adj.At(j, i); back > v {
			v = back
		}
		w.Set(i, j, v)
		w.Set(j, i, v)
	})

	// Degree vector and its inverse square root.
	deg := make([]float64, n)
	w.DoNonZero(func(i, _ int, v float64) {
		deg[i] += v
	})
	invSqrt := make([]float64, n)
	for i, dv := range deg {
		if dv > 0 {
			invSqrt[i] = 1 / math.Sqrt(dv)
		}
	}

	// L = I − D^{−1/2}·W·D^{−1/2}, dense for the downstream solvers.
	lap := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		lap.Set(i, i, 1)
	}
	w.DoNonZero(func(i, j int, v float64) {
		lap.Set(i, j, lap.At(i, j)-invSqrt[i]*v*invSqrt[j])
	})

	return lap, nil
}

// neighbor pairs a candidate row index with its distance to the query row.
type neighbor struct {
	idx  int
	dist float64
}

// metricFunc maps a Metric to its pairwise distance function.
func metricFunc(m Metric) (func(a, b []float64) float64, error) {
	switch m {
	case Euclidean:
		return func(a, b []float64) float64 {
			return math.Sqrt(sqDist(a, b))
		}, nil
	case Cosine:
		return func(a, b []float64) float64 {
			sim := floats.Dot(a, b) / (floats.Norm(a, 2) * floats.Norm(b, 2))
			if math.IsNaN(sim) {
				sim = 0 // zero-norm rows carry no directional similarity
			}

			return 1 - sim
		}, nil
	case Manhattan:
		return func(a, b []float64) float64 {
			var s float64
			for i := range a {
				s += math.Abs(a[i] - b[i])
			}

			return s
		}, nil
	default:
		return nil, ErrUnknownMetric
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

package manifold

import "errors"

// Metric enumerates the supported neighbor distance metrics.
type Metric int

const (
	// Euclidean distance: ‖a−b‖₂.
	Euclidean Metric = iota

	// Cosine distance: 1 − aᵀb/(‖a‖·‖b‖). Zero-norm rows are treated as
	// zero-similarity, giving distance 1.
	Cosine

	// Manhattan distance: Σ|aᵢ−bᵢ|.
	Manhattan
)

// String returns the canonical lowercase metric name.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Cosine:
		return "cosine"
	case Manhattan:
		return "manhattan"
	default:
		return "unknown"
	}
}

// Mode selects how k-NN edges are weighted.
type Mode int

const (
	// Connectivity weights every edge 1.
	Connectivity Mode = iota

	// Distance weights each edge by the metric distance between endpoints.
	Distance
)

// String returns the canonical lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Connectivity:
		return "connectivity"
	case Distance:
		return "distance"
	default:
		return "unknown"
	}
}

var (
	// ErrNilInput indicates a nil sample matrix.
	ErrNilInput = errors.New("manifold: nil input matrix")

	// ErrBadNeighborCount indicates KNeighbors < 1.
	ErrBadNeighborCount = errors.New("manifold: k must be >= 1")

	// ErrTooFewSamples indicates KNeighbors >= n: there are not enough
	// distinct neighbors, and truncating silently would hide the problem.
	ErrTooFewSamples = errors.New("manifold: k must be smaller than the sample count")

	// ErrUnknownMetric indicates a Metric outside the enumerated set.
	ErrUnknownMetric = errors.New("manifold: unknown distance metric")

	// ErrUnknownMode indicates a Mode outside the enumerated set.
	ErrUnknownMode = errors.New("manifold: unknown edge-weight mode")
)

// Options configures the k-NN graph underlying the Laplacian.
//
// Fields:
//   - KNeighbors — neighbors per row; must satisfy 1 ≤ k < n.
//   - Metric     — neighbor distance metric.
//   - Mode       — Connectivity (binary edges) or Distance (weighted edges).
type Options struct {
	KNeighbors int
	Metric     Metric
	Mode       Mode
}

// DefaultOptions returns the documented defaults: 5 neighbors under cosine
// distance with distance-valued edges.
func DefaultOptions() Options {
	return Options{
		KNeighbors: 5,
		Metric:     Cosine,
		Mode:       Distance,
	}
}

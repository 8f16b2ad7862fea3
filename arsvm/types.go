package arsvm

import (
	"errors"

	"github.com/domainshift/adapt/kernel"
	"github.com/domainshift/adapt/manifold"
	"github.com/domainshift/adapt/solver"
)

var (
	// ErrNotFitted indicates inference was attempted on a nil or zero Fitted.
	ErrNotFitted = errors.New("arsvm: model not fitted")

	// ErrMissingLabels indicates Fit was called without source labels.
	ErrMissingLabels = errors.New("arsvm: source labels are required")
)

// Options is the full ARSVM hyperparameter set.
//
// Fields:
//   - Kernel         — kernel family and parameters shared by fit and inference.
//   - C              — SVM slack penalty (box bound of the dual).
//   - Lambda         — MMD regularization weight λ.
//   - Gamma          — manifold regularization weight γ; 0 skips the
//     Laplacian entirely.
//   - Mu             — conditional-MMD balance μ (1 = full joint weighting).
//   - KNeighbors     — k for the manifold k-NN graph.
//   - ManifoldMetric — distance metric of that graph.
//   - KNNMode        — Connectivity or Distance edge weights.
//   - QP             — SMO tolerance and iteration cap.
type Options struct {
	Kernel         kernel.Options
	C              float64
	Lambda         float64
	Gamma          float64
	Mu             float64
	KNeighbors     int
	ManifoldMetric manifold.Metric
	KNNMode        manifold.Mode
	QP             solver.QPOptions
}

// DefaultOptions returns the documented defaults: linear kernel, C=1, λ=1,
// γ=0, μ=1, 5 cosine neighbors with distance-valued edges.
func DefaultOptions() Options {
	return Options{
		Kernel:         kernel.DefaultOptions(),
		C:              1,
		Lambda:         1,
		Gamma:          0,
		Mu:             1,
		KNeighbors:     5,
		ManifoldMetric: manifold.Cosine,
		KNNMode:        manifold.Distance,
		QP:             solver.DefaultQPOptions(),
	}
}

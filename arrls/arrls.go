package arrls

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/domainshift/adapt/dataset"
	"github.com/domainshift/adapt/kernel"
	"github.com/domainshift/adapt/labels"
	"github.com/domainshift/adapt/manifold"
	"github.com/domainshift/adapt/mmd"
	"github.com/domainshift/adapt/solver"
)

var (
	// ErrNotFitted indicates inference was attempted on a nil or zero Fitted.
	ErrNotFitted = errors.New("arrls: model not fitted")

	// ErrMissingLabels indicates Fit was called without source labels.
	ErrMissingLabels = errors.New("arrls: source labels are required")

	// ErrBadSigma indicates a non-positive ridge weight; σ must be > 0 to
	// keep the linear system well-posed.
	ErrBadSigma = errors.New("arrls: sigma must be > 0")
)

// Options is the full ARRLS hyperparameter set.
//
// Fields:
//   - Kernel         — kernel family and parameters shared by fit and inference.
//   - Lambda         — MMD regularization weight λ.
//   - Gamma          — manifold regularization weight γ; 0 skips the Laplacian.
//   - Sigma          — L2 ridge weight σ; must be > 0.
//   - Mu             — conditional-MMD balance μ (1 = full joint weighting).
//   - KNeighbors     — k for the manifold k-NN graph.
//   - ManifoldMetric — distance metric of that graph.
//   - KNNMode        — Connectivity or Distance edge weights.
type Options struct {
	Kernel         kernel.Options
	Lambda         float64
	Gamma          float64
	Sigma          float64
	Mu             float64
	KNeighbors     int
	ManifoldMetric manifold.Metric
	KNNMode        manifold.Mode
}

// DefaultOptions returns the documented defaults: linear kernel, λ=1, γ=0,
// σ=1, μ=1, 5 cosine neighbors with distance-valued edges.
func DefaultOptions() Options {
	return Options{
		Kernel:         kernel.DefaultOptions(),
		Lambda:         1,
		Gamma:          0,
		Sigma:          1,
		Mu:             1,
		KNeighbors:     5,
		ManifoldMetric: manifold.Cosine,
		KNNMode:        manifold.Distance,
	}
}

// ARRLS is the immutable driver configuration.
type ARRLS struct {
	opts Options
}

// New returns an ARRLS driver with the given options.
func New(opts Options) *ARRLS {
	return &ARRLS{opts: opts}
}

// Fitted is the trained model state produced by Fit.
type Fitted struct {
	opts Options
	x    *mat.Dense
	ns   int
	coef *mat.Dense
	bin  labels.Binarizer
}

// Fit trains the model on labeled source data xs/ys plus optional target
// data xt, of which a leading block may be labeled by yt.
func (m *ARRLS) Fit(xs mat.Matrix, ys []int, xt mat.Matrix, yt []int) (*Fitted, error) {
	if len(ys) == 0 {
		return nil, ErrMissingLabels
	}
	if m.opts.Sigma <= 0 {
		return nil, ErrBadSigma
	}

	p, err := dataset.Pool(xs, ys, xt, yt)
	if err != nil {
		return nil, err
	}
	n := p.N()
	nl := p.NLabeled

	k, err := kernel.Matrix(p.X, nil, m.opts.Kernel)
	if err != nil {
		return nil, err
	}

	// reg = J + λM (+ γL)
	reg := dataset.LabeledMask(n, nl)
	if p.Nt > 0 {
		mm, err := mmd.Coef(p.Ns, p.Nt, p.Y[:p.Ns], p.Y[p.Ns:], mmd.Joint, m.opts.Mu)
		if err != nil {
			return nil, err
		}
		var lm mat.Dense
		lm.Scale(m.opts.Lambda, mm)
		reg.Add(reg, &lm)
	}
	if m.opts.Gamma != 0 {
		lap, err := manifold.LapNorm(p.X, manifold.Options{
			KNeighbors: m.opts.KNeighbors,
			Metric:     m.opts.ManifoldMetric,
			Mode:       m.opts.KNNMode,
		})
		if err != nil {
			return nil, err
		}
		var gl mat.Dense
		gl.Scale(m.opts.Gamma, lap)
		reg.Add(reg, &gl)
	}

	// Q = reg·K + σI
	q := mat.NewDense(n, n, nil)
	q.Mul(reg, k)
	for i := 0; i < n; i++ {
		q.Set(i, i, q.At(i, i)+m.opts.Sigma)
	}

	var bin labels.Binarizer
	yEnc, err := bin.FitTransform(p.Y)
	if err != nil {
		return nil, err
	}

	// J·Y: binarized labels zero-padded over the unlabeled trailing rows.
	yPad := mat.NewDense(n, bin.Width(), nil)
	for i := 0; i < nl; i++ {
		for j := 0; j < bin.Width(); j++ {
			yPad.Set(i, j, yEnc.At(i, j))
		}
	}

	coef, err := solver.Linear(q, yPad)
	if err != nil {
		return nil, err
	}

	return &Fitted{
		opts: m.opts,
		x:    p.X,
		ns:   p.Ns,
		coef: coef,
		bin:  bin,
	}, nil
}

// FitPredict fits the model and classifies the target rows (the source rows
// when no target data was supplied), mirroring the semi-supervised workflow
// where the unlabeled target block is the prediction set of interest.
func (m *ARRLS) FitPredict(xs mat.Matrix, ys []int, xt mat.Matrix, yt []int) ([]int, error) {
	fitted, err := m.Fit(xs, ys, xt, yt)
	if err != nil {
		return nil, err
	}

	n, _ := fitted.x.Dims()
	if fitted.ns == n {
		return fitted.Predict(fitted.x)
	}
	_, d := fitted.x.Dims()

	return fitted.Predict(fitted.x.Slice(fitted.ns, n, 0, d))
}

// DecisionFunction evaluates kernel rows of x against the pooled training
// set and returns the per-class score matrix (one column for binary).
func (f *Fitted) DecisionFunction(x mat.Matrix) (*mat.Dense, error) {
	if f == nil || f.x == nil {
		return nil, ErrNotFitted
	}

	kq, err := kernel.Matrix(x, f.x, f.opts.Kernel)
	if err != nil {
		return nil, err
	}

	var scores mat.Dense
	scores.Mul(kq, f.coef)

	return &scores, nil
}

// Predict classifies the rows of x: sign of the decision value for binary
// problems, argmax across class columns otherwise.
func (f *Fitted) Predict(x mat.Matrix) ([]int, error) {
	scores, err := f.DecisionFunction(x)
	if err != nil {
		return nil, err
	}

	return f.bin.Inverse(scores)
}

// Classes returns the fitted class values in ascending order.
func (f *Fitted) Classes() []int {
	if f == nil {
		return nil
	}

	return f.bin.Classes()
}

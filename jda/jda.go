package jda

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/domainshift/adapt/dataset"
	"github.com/domainshift/adapt/kernel"
	"github.com/domainshift/adapt/mmd"
	"github.com/domainshift/adapt/solver"
)

var (
	// ErrNotFitted indicates Transform was called on a nil or zero Fitted.
	ErrNotFitted = errors.New("jda: model not fitted")

	// ErrBadComponents indicates NComponents < 1 or > pooled sample count.
	ErrBadComponents = errors.New("jda: invalid component count")
)

// Options is the full TCA/JDA/BDA hyperparameter set.
//
// Fields:
//   - NComponents — embedding dimension used at transform time; must satisfy
//     1 ≤ NComponents ≤ n pooled samples.
//   - Kernel      — kernel family and parameters shared by fit and transform.
//   - Lambda      — regularization weight λ on the objective diagonal.
//   - Mu          — marginal/conditional balance: 0 TCA, 1 JDA, else BDA.
type Options struct {
	NComponents int
	Kernel      kernel.Options
	Lambda      float64
	Mu          float64
}

// DefaultOptions returns the documented defaults: 2 components, linear
// kernel, λ=1, μ=1 (full JDA weighting).
func DefaultOptions() Options {
	return Options{
		NComponents: 2,
		Kernel:      kernel.DefaultOptions(),
		Lambda:      1,
		Mu:          1,
	}
}

// JDA is the immutable driver configuration.
type JDA struct {
	opts Options
}

// New returns a TCA/JDA/BDA driver with the given options.
func New(opts Options) *JDA {
	return &JDA{opts: opts}
}

// Fitted holds the pooled training data and the full eigenvector matrix.
// All eigenvectors are retained; only the leading NComponents columns are
// consumed at transform time.
type Fitted struct {
	opts Options
	x    *mat.Dense
	u    *mat.Dense
}

// Fit learns the embedding. ys and yt are optional: without both label
// slices the MMD weighting falls back to the pure marginal form, and without
// target data it is zero (plain kernel components on source only).
func (m *JDA) Fit(xs mat.Matrix, ys []int, xt mat.Matrix, yt []int) (*Fitted, error) {
	p, err := dataset.Pool(xs, ys, xt, yt)
	if err != nil {
		return nil, err
	}
	n := p.N()
	if m.opts.NComponents < 1 || m.opts.NComponents > n {
		return nil, ErrBadComponents
	}

	var weight *mat.Dense
	switch {
	case p.Nt == 0:
		weight = mat.NewDense(n, n, nil) // no target: nothing to align
	case ys != nil && yt != nil:
		weight, err = mmd.Coef(p.Ns, p.Nt, ys, yt, mmd.Joint, m.opts.Mu)
	default:
		weight, err = mmd.Coef(p.Ns, p.Nt, nil, nil, mmd.Marginal, 0)
	}
	if err != nil {
		return nil, err
	}

	k, err := kernel.Matrix(p.X, nil, m.opts.Kernel)
	if err != nil {
		return nil, err
	}

	// Objective K·M·Kᵀ + λI, constraint K·H·Kᵀ.
	var km, obj mat.Dense
	km.Mul(k, weight)
	obj.Mul(&km, k.T())
	for i := 0; i < n; i++ {
		obj.Set(i, i, obj.At(i, i)+m.opts.Lambda)
	}

	var kh, st mat.Dense
	kh.Mul(k, dataset.Centering(n))
	st.Mul(&kh, k.T())

	_, vecs, err := solver.GeneralizedEigen(&obj, &st)
	if err != nil {
		return nil, err
	}

	return &Fitted{opts: m.opts, x: p.X, u: vecs}, nil
}

// Transform embeds the rows of x: kernel rows against the pooled training
// set, projected onto the leading NComponents eigenvector columns.
func (f *Fitted) Transform(x mat.Matrix) (*mat.Dense, error) {
	if f == nil || f.x == nil {
		return nil, ErrNotFitted
	}

	return f.TransformK(x, f.opts.NComponents)
}

// TransformK embeds with an explicit component count, which may differ from
// the fitted NComponents since every eigenvector is retained.
func (f *Fitted) TransformK(x mat.Matrix, components int) (*mat.Dense, error) {
	if f == nil || f.x == nil {
		return nil, ErrNotFitted
	}
	n, _ := f.u.Dims()
	if components < 1 || components > n {
		return nil, ErrBadComponents
	}

	kq, err := kernel.Matrix(x, f.x, f.opts.Kernel)
	if err != nil {
		return nil, err
	}

	var emb mat.Dense
	emb.Mul(kq, f.u.Slice(0, n, 0, components))

	return &emb, nil
}

// FitTransform fits the embedding and returns the transformed source and
// target sets. The target embedding is nil when xt is nil.
func (m *JDA) FitTransform(xs mat.Matrix, ys []int, xt mat.Matrix, yt []int) (*mat.Dense, *mat.Dense, error) {
	fitted, err := m.Fit(xs, ys, xt, yt)
	if err != nil {
		return nil, nil, err
	}

	xsEmb, err := fitted.Transform(xs)
	if err != nil {
		return nil, nil, err
	}
	if xt == nil {
		return xsEmb, nil, nil
	}

	xtEmb, err := fitted.Transform(xt)
	if err != nil {
		return nil, nil, err
	}

	return xsEmb, xtEmb, nil
}

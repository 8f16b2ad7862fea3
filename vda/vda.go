package vda

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/domainshift/adapt/dataset"
	"github.com/domainshift/adapt/kernel"
	"github.com/domainshift/adapt/mmd"
	"github.com/domainshift/adapt/solver"
)

var (
	// ErrNotFitted indicates Transform was called on a nil or zero Fitted.
	ErrNotFitted = errors.New("vda: model not fitted")

	// ErrMissingData indicates a nil source or target matrix; VDA has no
	// single-domain fallback.
	ErrMissingData = errors.New("vda: source and target data are required")

	// ErrLabelSize indicates ys does not cover every source row or yt does
	// not cover every target row (full supervision is mandatory).
	ErrLabelSize = errors.New("vda: labels must cover every row of both domains")

	// ErrClassMismatch indicates the source and target class sets differ.
	ErrClassMismatch = errors.New("vda: source and target class sets must match")

	// ErrBadComponents indicates NComponents < 1 or > pooled sample count.
	ErrBadComponents = errors.New("vda: invalid component count")
)

// Options is the full VDA hyperparameter set.
//
// Fields:
//   - NComponents — embedding dimension; 1 ≤ NComponents ≤ n pooled samples.
//   - Kernel      — kernel family and parameters used during fit only.
//   - Lambda      — regularization weight λ on the objective diagonal.
type Options struct {
	NComponents int
	Kernel      kernel.Options
	Lambda      float64
}

// DefaultOptions returns the documented defaults: 2 components, linear
// kernel, λ=1.
func DefaultOptions() Options {
	return Options{
		NComponents: 2,
		Kernel:      kernel.DefaultOptions(),
		Lambda:      1,
	}
}

// VDA is the immutable driver configuration.
type VDA struct {
	opts Options
}

// New returns a VDA driver with the given options.
func New(opts Options) *VDA {
	return &VDA{opts: opts}
}

// Fitted holds the feature-space projection basis. Unlike the kernel-indexed
// drivers no training data is retained: Transform needs only Components.
type Fitted struct {
	components *mat.Dense // NComponents×d
}

// Fit learns the projection. Both domains must be fully labeled and share
// the same class set; any violation is fatal before numerical work begins.
func (m *VDA) Fit(xs mat.Matrix, ys []int, xt mat.Matrix, yt []int) (*Fitted, error) {
	if xs == nil || xt == nil {
		return nil, ErrMissingData
	}
	ns, _ := xs.Dims()
	nt, _ := xt.Dims()
	if len(ys) != ns || len(yt) != nt {
		return nil, ErrLabelSize
	}

	classes := distinct(ys)
	if !equalSets(classes, distinct(yt)) {
		return nil, ErrClassMismatch
	}
	nClasses := len(classes)

	p, err := dataset.Pool(xs, ys, xt, yt)
	if err != nil {
		return nil, err
	}
	n := p.N()
	if m.opts.NComponents < 1 || m.opts.NComponents > n {
		return nil, ErrBadComponents
	}

	// L = C·M₀ + Σ_c M_c. The joint coefficient at μ=1 is M₀ + Σ_c M_c, so
	// add the marginal term another C−1 times.
	weight, err := mmd.Coef(p.Ns, p.Nt, ys, yt, mmd.Joint, 1)
	if err != nil {
		return nil, err
	}
	marginal, err := mmd.Coef(p.Ns, p.Nt, nil, nil, mmd.Marginal, 0)
	if err != nil {
		return nil, err
	}
	var extra mat.Dense
	extra.Scale(float64(nClasses-1), marginal)
	weight.Add(weight, &extra)

	k, err := kernel.Matrix(p.X, nil, m.opts.Kernel)
	if err != nil {
		return nil, err
	}

	sw := scatter(k, p.Y)

	// Objective K·L·Kᵀ + λI + Sw, constraint K·H·Kᵀ.
	var kl, obj mat.Dense
	kl.Mul(k, weight)
	obj.Mul(&kl, k.T())
	obj.Add(&obj, sw)
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

	// Project the leading eigenvectors back to feature space:
	// Components = Wᵀ·X (NComponents×d).
	w := vecs.Slice(0, n, 0, m.opts.NComponents)
	var comps mat.Dense
	comps.Mul(w.T(), p.X)

	out := mat.DenseCopyOf(&comps)

	return &Fitted{components: out}, nil
}

// Components returns the fitted NComponents×d feature-space basis.
func (f *Fitted) Components() *mat.Dense {
	if f == nil {
		return nil
	}

	return f.components
}

// Transform projects the rows of x onto the fitted components: X·Componentsᵀ.
func (f *Fitted) Transform(x mat.Matrix) (*mat.Dense, error) {
	if f == nil || f.components == nil {
		return nil, ErrNotFitted
	}

	var emb mat.Dense
	emb.Mul(x, f.components.T())

	return &emb, nil
}

// FitTransform fits the projection and returns the transformed source and
// target sets.
func (m *VDA) FitTransform(xs mat.Matrix, ys []int, xt mat.Matrix, yt []int) (*mat.Dense, *mat.Dense, error) {
	fitted, err := m.Fit(xs, ys, xt, yt)
	if err != nil {
		return nil, nil, err
	}

	xsEmb, err := fitted.Transform(xs)
	if err != nil {
		return nil, nil, err
	}
	xtEmb, err := fitted.Transform(xt)
	if err != nil {
		return nil, nil, err
	}

	return xsEmb, xtEmb, nil
}

// scatter builds the within-class scatter Sw in kernel space: each kernel
// row minus the mean kernel row of its class, deviations accumulated as
// Sw = DᵀD.
func scatter(k *mat.Dense, y []int) *mat.Dense {
	n, _ := k.Dims()

	counts := make(map[int]float64, 4)
	for _, c := range y {
		counts[c]++
	}

	// Mean kernel row per class.
	means := make(map[int][]float64, len(counts))
	for c := range counts {
		means[c] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		row := means[y[i]]
		for j := 0; j < n; j++ {
			row[j] += k.At(i, j) / counts[y[i]]
		}
	}

	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		row := means[y[i]]
		for j := 0; j < n; j++ {
			d.Set(i, j, k.At(i, j)-row[j])
		}
	}

	var sw mat.Dense
	sw.Mul(d.T(), d)

	return mat.DenseCopyOf(&sw)
}

// distinct returns the sorted distinct values of y.
func distinct(y []int) []int {
	seen := make(map[int]struct{}, len(y))
	for _, c := range y {
		seen[c] = struct{}{}
	}
	out := make([]int, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Ints(out)

	return out
}

// equalSets reports whether two sorted class slices are identical.
func equalSets(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

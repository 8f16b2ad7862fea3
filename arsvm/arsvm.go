package arsvm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/domainshift/adapt/dataset"
	"github.com/domainshift/adapt/kernel"
	"github.com/domainshift/adapt/labels"
	"github.com/domainshift/adapt/manifold"
	"github.com/domainshift/adapt/mmd"
	"github.com/domainshift/adapt/solver"
)

// ARSVM is the immutable driver configuration. Fit does not mutate it, so a
// single value may fit any number of independent models.
type ARSVM struct {
	opts Options
}

// New returns an ARSVM driver with the given options.
func New(opts Options) *ARSVM {
	return &ARSVM{opts: opts}
}

// Fitted is the trained model state produced by Fit: the pooled training
// data (kept for inference-time kernel evaluation), the per-class dual
// coefficients mapped into pooled-kernel space, and the label encoding.
type Fitted struct {
	opts    Options
	x       *mat.Dense
	coef    *mat.Dense
	bin     labels.Binarizer
	support [][]int
}

// Fit trains the model on labeled source data xs/ys plus optional target
// data xt, of which a leading block may be labeled by yt. It returns a new
// Fitted value; the driver itself stays unchanged.
func (m *ARSVM) Fit(xs mat.Matrix, ys []int, xt mat.Matrix, yt []int) (*Fitted, error) {
	if len(ys) == 0 {
		return nil, ErrMissingLabels
	}

	p, err := dataset.Pool(xs, ys, xt, yt)
	if err != nil {
		return nil, err
	}
	n := p.N()

	k, err := kernel.Matrix(p.X, nil, m.opts.Kernel)
	if err != nil {
		return nil, err
	}

	q, err := m.objective(p, k)
	if err != nil {
		return nil, err
	}

	var bin labels.Binarizer
	yEnc, err := bin.FitTransform(p.Y)
	if err != nil {
		return nil, err
	}

	nl := p.NLabeled
	// Z = Q⁻¹[:, :nl], computed once for all class columns.
	z, err := solver.Linear(q, dataset.LabeledMask(n, nl).Slice(0, n, 0, nl))
	if err != nil {
		return nil, err
	}

	// Modified dual kernel P = K[:nl,:]·Z, symmetrized — only the symmetric
	// part contributes to the quadratic form.
	var pm mat.Dense
	pm.Mul(k.Slice(0, nl, 0, n), z)
	psym := mat.NewDense(nl, nl, nil)
	for i := 0; i < nl; i++ {
		for j := 0; j < nl; j++ {
			psym.Set(i, j, (pm.At(i, j)+pm.At(j, i))/2)
		}
	}

	width := bin.Width()
	coef := mat.NewDense(n, width, nil)
	support := make([][]int, width)
	ycol := make([]float64, nl)
	qd := mat.NewDense(nl, nl, nil)
	for col := 0; col < width; col++ {
		mat.Col(ycol, col, yEnc)
		for i := 0; i < nl; i++ {
			for j := 0; j < nl; j++ {
				qd.Set(i, j, ycol[i]*ycol[j]*psym.At(i, j))
			}
		}

		alpha, err := solver.QP(qd, ycol, m.opts.C, m.opts.QP)
		if err != nil {
			return nil, fmt.Errorf("arsvm: class column %d: %w", col, err)
		}

		// β = Z·(y∘α): coefficients over all n pooled kernel rows.
		ya := mat.NewVecDense(nl, nil)
		for i := 0; i < nl; i++ {
			ya.SetVec(i, ycol[i]*alpha[i])
		}
		var beta mat.VecDense
		beta.MulVec(z, ya)
		for i := 0; i < n; i++ {
			coef.Set(i, col, beta.AtVec(i))
		}

		for i, a := range alpha {
			if a > 0 && a < m.opts.C {
				support[col] = append(support[col], i)
			}
		}
	}

	return &Fitted{
		opts:    m.opts,
		x:       p.X,
		coef:    coef,
		bin:     bin,
		support: support,
	}, nil
}

// FitPredict fits the model and classifies the pooled training set.
func (m *ARSVM) FitPredict(xs mat.Matrix, ys []int, xt mat.Matrix, yt []int) ([]int, error) {
	fitted, err := m.Fit(xs, ys, xt, yt)
	if err != nil {
		return nil, err
	}

	return fitted.Predict(fitted.x)
}

// objective assembles Q = I + (λM + γL)·K over the pooled set.
func (m *ARSVM) objective(p *dataset.Pooled, k *mat.Dense) (*mat.Dense, error) {
	n := p.N()

	reg := mat.NewDense(n, n, nil)
	if p.Nt > 0 {
		mm, err := mmd.Coef(p.Ns, p.Nt, p.Y[:p.Ns], p.Y[p.Ns:], mmd.Joint, m.opts.Mu)
		if err != nil {
			return nil, err
		}
		reg.Scale(m.opts.Lambda, mm)
	}
	// Without target data M stays zero: plain supervised training.

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

	q := mat.NewDense(n, n, nil)
	q.Mul(reg, k)
	for i := 0; i < n; i++ {
		q.Set(i, i, q.At(i, i)+1)
	}

	return q, nil
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

// Support returns, per class column, the labeled-row indices whose dual
// variables ended strictly inside the box (the active support set).
func (f *Fitted) Support() [][]int {
	if f == nil {
		return nil
	}

	return f.support
}

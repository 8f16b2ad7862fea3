package jda_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/domainshift/adapt/jda"
)

// blobs returns a deterministic two-class scenario: source classes centered
// at (0,0) and (0,4); the target is the same geometry shifted by (10,2).
func blobs() (xs *mat.Dense, ys []int, xt *mat.Dense, yt []int) {
	xs = mat.NewDense(8, 2, []float64{
		0, 0,
		0.5, 0.2,
		-0.3, 0.4,
		0.2, -0.4,
		0, 4,
		0.5, 4.2,
		-0.3, 4.4,
		0.2, 3.6,
	})
	ys = []int{0, 0, 0, 0, 1, 1, 1, 1}

	xt = mat.NewDense(8, 2, nil)
	xt.Copy(xs)
	for i := 0; i < 8; i++ {
		xt.Set(i, 0, xt.At(i, 0)+10)
		xt.Set(i, 1, xt.At(i, 1)+2)
	}
	yt = []int{0, 0, 0, 0, 1, 1, 1, 1}

	return xs, ys, xt, yt
}

// meanGapRatio measures ‖mean(rows a) − mean(rows b)‖² divided by the total
// variance of the stacked rows: the quantity TCA minimizes.
func meanGapRatio(a, b *mat.Dense) float64 {
	ra, c := a.Dims()
	rb, _ := b.Dims()

	meanA := make([]float64, c)
	meanB := make([]float64, c)
	global := make([]float64, c)
	for j := 0; j < c; j++ {
		for i := 0; i < ra; i++ {
			meanA[j] += a.At(i, j) / float64(ra)
		}
		for i := 0; i < rb; i++ {
			meanB[j] += b.At(i, j) / float64(rb)
		}
		global[j] = (meanA[j]*float64(ra) + meanB[j]*float64(rb)) / float64(ra+rb)
	}

	var gap, variance float64
	for j := 0; j < c; j++ {
		d := meanA[j] - meanB[j]
		gap += d * d
		for i := 0; i < ra; i++ {
			dv := a.At(i, j) - global[j]
			variance += dv * dv
		}
		for i := 0; i < rb; i++ {
			dv := b.At(i, j) - global[j]
			variance += dv * dv
		}
	}
	variance /= float64(ra + rb)

	return gap / variance
}

// TestJDA_Unfitted verifies the explicit unfitted failure mode.
func TestJDA_Unfitted(t *testing.T) {
	x := mat.NewDense(1, 2, []float64{0, 0})

	var nilFit *jda.Fitted
	_, err := nilFit.Transform(x)
	assert.ErrorIs(t, err, jda.ErrNotFitted)

	_, err = (&jda.Fitted{}).Transform(x)
	assert.ErrorIs(t, err, jda.ErrNotFitted)
}

// TestJDA_ComponentValidation covers the NComponents bounds.
func TestJDA_ComponentValidation(t *testing.T) {
	xs, ys, xt, yt := blobs()

	opts := jda.DefaultOptions()
	opts.NComponents = 0
	_, err := jda.New(opts).Fit(xs, ys, xt, yt)
	assert.ErrorIs(t, err, jda.ErrBadComponents)

	opts.NComponents = 17 // > 16 pooled rows
	_, err = jda.New(opts).Fit(xs, ys, xt, yt)
	assert.ErrorIs(t, err, jda.ErrBadComponents)
}

// TestJDA_TCAAlignsBlobs is the mean-shift scenario: with μ=0 (TCA) the
// embedded domains must overlap far more tightly, relative to their spread,
// than the raw inputs do.
func TestJDA_TCAAlignsBlobs(t *testing.T) {
	xs, _, xt, _ := blobs()

	rawRatio := meanGapRatio(xs, xt)
	require.Greater(t, rawRatio, 1.0, "raw domains must start far apart")

	opts := jda.DefaultOptions()
	opts.NComponents = 2
	opts.Mu = 0 // TCA

	xsEmb, xtEmb, err := jda.New(opts).FitTransform(xs, nil, xt, nil)
	require.NoError(t, err)

	embRatio := meanGapRatio(xsEmb, xtEmb)
	assert.Less(t, embRatio, rawRatio,
		"TCA must shrink the domain gap relative to spread")
}

// TestJDA_MuZeroEqualsUnlabeledMarginal verifies the TCA boundary: μ=0 with
// labels present must produce the same embedding as the label-free marginal
// path.
func TestJDA_MuZeroEqualsUnlabeledMarginal(t *testing.T) {
	xs, ys, xt, yt := blobs()

	opts := jda.DefaultOptions()
	opts.Mu = 0

	withLabels, err := jda.New(opts).Fit(xs, ys, xt, yt)
	require.NoError(t, err)
	withoutLabels, err := jda.New(opts).Fit(xs, nil, xt, nil)
	require.NoError(t, err)

	ea, err := withLabels.Transform(xs)
	require.NoError(t, err)
	eb, err := withoutLabels.Transform(xs)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(ea, eb, 1e-9),
		"μ=0 joint weighting must equal the marginal path")
}

// TestJDA_FitTransformEqualsFitThenTransform verifies the convenience
// composition round-trip exactly.
func TestJDA_FitTransformEqualsFitThenTransform(t *testing.T) {
	xs, ys, xt, yt := blobs()
	model := jda.New(jda.DefaultOptions())

	xsOne, xtOne, err := model.FitTransform(xs, ys, xt, yt)
	require.NoError(t, err)

	fitted, err := model.Fit(xs, ys, xt, yt)
	require.NoError(t, err)
	xsTwo, err := fitted.Transform(xs)
	require.NoError(t, err)
	xtTwo, err := fitted.Transform(xt)
	require.NoError(t, err)

	assert.True(t, mat.Equal(xsOne, xsTwo), "source embeddings must match exactly")
	assert.True(t, mat.Equal(xtOne, xtTwo), "target embeddings must match exactly")
}

// TestJDA_RefitIdempotent verifies refitting carries no hidden state.
func TestJDA_RefitIdempotent(t *testing.T) {
	xs, ys, xt, yt := blobs()
	model := jda.New(jda.DefaultOptions())

	fit1, err := model.Fit(xs, ys, xt, yt)
	require.NoError(t, err)
	fit2, err := model.Fit(xs, ys, xt, yt)
	require.NoError(t, err)

	e1, err := fit1.Transform(xt)
	require.NoError(t, err)
	e2, err := fit2.Transform(xt)
	require.NoError(t, err)

	assert.True(t, mat.Equal(e1, e2))
}

// TestJDA_NoTargetPath verifies the unsupervised source-only fallback still
// produces an embedding of the requested width.
func TestJDA_NoTargetPath(t *testing.T) {
	xs, _, _, _ := blobs()

	opts := jda.DefaultOptions()
	opts.NComponents = 3

	xsEmb, xtEmb, err := jda.New(opts).FitTransform(xs, nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, xtEmb)

	r, c := xsEmb.Dims()
	assert.Equal(t, 8, r)
	assert.Equal(t, 3, c)
}

// TestJDA_TransformKWiderThanFit verifies the retained eigenvectors allow a
// wider embedding after fit.
func TestJDA_TransformKWiderThanFit(t *testing.T) {
	xs, ys, xt, yt := blobs()

	fitted, err := jda.New(jda.DefaultOptions()).Fit(xs, ys, xt, yt)
	require.NoError(t, err)

	wide, err := fitted.TransformK(xs, 5)
	require.NoError(t, err)
	_, c := wide.Dims()
	assert.Equal(t, 5, c)

	_, err = fitted.TransformK(xs, 99)
	assert.ErrorIs(t, err, jda.ErrBadComponents)
}

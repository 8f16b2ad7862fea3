package labels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/domainshift/adapt/labels"
)

// TestBinarizer_Unfitted verifies the explicit unfitted failure mode.
func TestBinarizer_Unfitted(t *testing.T) {
	var b labels.Binarizer

	_, err := b.Transform([]int{0, 1})
	assert.ErrorIs(t, err, labels.ErrNotFitted)

	_, err = b.Inverse(mat.NewDense(1, 1, []float64{0.5}))
	assert.ErrorIs(t, err, labels.ErrNotFitted)
}

// TestBinarizer_FitValidation covers empty and single-class inputs.
func TestBinarizer_FitValidation(t *testing.T) {
	var b labels.Binarizer

	assert.ErrorIs(t, b.Fit(nil), labels.ErrEmptyLabels)
	assert.ErrorIs(t, b.Fit([]int{3, 3, 3}), labels.ErrSingleClass)
}

// TestBinarizer_BinarySingleColumn verifies the two-class encoding: one
// column, +1 for the larger class, −1 for the smaller.
func TestBinarizer_BinarySingleColumn(t *testing.T) {
	var b labels.Binarizer

	y, err := b.FitTransform([]int{5, 2, 5, 2})
	require.NoError(t, err)

	r, c := y.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 1, c, "binary problems encode as one column")
	assert.Equal(t, []int{2, 5}, b.Classes())
	assert.True(t, b.Binary())

	assert.Equal(t, 1.0, y.At(0, 0), "class 5 is +1")
	assert.Equal(t, -1.0, y.At(1, 0), "class 2 is −1")
}

// TestBinarizer_MulticlassOneVsRest verifies the C-column ±1 encoding.
func TestBinarizer_MulticlassOneVsRest(t *testing.T) {
	var b labels.Binarizer

	y, err := b.FitTransform([]int{0, 1, 2})
	require.NoError(t, err)

	r, c := y.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := -1.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, y.At(i, j), "row %d col %d", i, j)
		}
	}
}

// TestBinarizer_RoundTrip verifies Transform→Inverse recovers the labels
// for both binary and multiclass encodings.
func TestBinarizer_RoundTrip(t *testing.T) {
	for _, y := range [][]int{
		{1, -1, 1, 1, -1},
		{0, 2, 1, 2, 0, 1},
	} {
		var b labels.Binarizer
		enc, err := b.FitTransform(y)
		require.NoError(t, err)

		back, err := b.Inverse(enc)
		require.NoError(t, err)
		assert.Equal(t, y, back)
	}
}

// TestBinarizer_InverseArgmax verifies multiclass decoding picks the highest
// scoring column even for non-±1 scores.
func TestBinarizer_InverseArgmax(t *testing.T) {
	var b labels.Binarizer
	require.NoError(t, b.Fit([]int{10, 20, 30}))

	scores := mat.NewDense(2, 3, []float64{
		0.1, 0.9, -0.3,
		-0.2, -0.5, -0.1,
	})
	got, err := b.Inverse(scores)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 30}, got)
}

// TestBinarizer_ErrorPaths covers the unknown-class and shape sentinels.
func TestBinarizer_ErrorPaths(t *testing.T) {
	var b labels.Binarizer
	require.NoError(t, b.Fit([]int{0, 1}))

	_, err := b.Transform([]int{7})
	assert.ErrorIs(t, err, labels.ErrUnknownClass)

	_, err = b.Inverse(mat.NewDense(1, 3, nil))
	assert.ErrorIs(t, err, labels.ErrShapeMismatch)
}

package labels

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotFitted indicates Transform/Inverse was called before Fit.
	ErrNotFitted = errors.New("labels: binarizer not fitted")

	// ErrEmptyLabels indicates Fit received no labels.
	ErrEmptyLabels = errors.New("labels: label slice must not be empty")

	// ErrSingleClass indicates Fit saw fewer than two distinct classes.
	ErrSingleClass = errors.New("labels: need at least two distinct classes")

	// ErrUnknownClass indicates Transform met a label absent from Fit.
	ErrUnknownClass = errors.New("labels: label not seen during fit")

	// ErrShapeMismatch indicates a score matrix whose column count does not
	// match the fitted encoding width.
	ErrShapeMismatch = errors.New("labels: score column count mismatch")
)

// Binarizer encodes integer class labels as ±1 columns and decodes score
// matrices back to labels. The zero value is unfitted; Fit establishes the
// class set and the encoding width.
type Binarizer struct {
	classes []int
}

// Fit records the sorted distinct classes of y.
func (b *Binarizer) Fit(y []int) error {
	if len(y) == 0 {
		return ErrEmptyLabels
	}

	seen := make(map[int]struct{}, len(y))
	for _, c := range y {
		seen[c] = struct{}{}
	}
	if len(seen) < 2 {
		return ErrSingleClass
	}

	classes := make([]int, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Ints(classes)
	b.classes = classes

	return nil
}

// Classes returns the fitted class values in ascending order.
func (b *Binarizer) Classes() []int { return b.classes }

// Binary reports whether the fitted problem has exactly two classes.
func (b *Binarizer) Binary() bool { return len(b.classes) == 2 }

// Width returns the encoding column count: 1 for binary, C for multiclass.
func (b *Binarizer) Width() int {
	if b.Binary() {
		return 1
	}

	return len(b.classes)
}

// Transform encodes y as a len(y)×Width ±1 matrix.
func (b *Binarizer) Transform(y []int) (*mat.Dense, error) {
	if b.classes == nil {
		return nil, ErrNotFitted
	}

	out := mat.NewDense(len(y), b.Width(), nil)
	for i, c := range y {
		idx := b.classIndex(c)
		if idx < 0 {
			return nil, ErrUnknownClass
		}
		if b.Binary() {
			if idx == 1 {
				out.Set(i, 0, 1)
			} else {
				out.Set(i, 0, -1)
			}

			continue
		}
		for j := range b.classes {
			if j == idx {
				out.Set(i, j, 1)
			} else {
				out.Set(i, j, -1)
			}
		}
	}

	return out, nil
}

// FitTransform is the Fit-then-Transform composition.
func (b *Binarizer) FitTransform(y []int) (*mat.Dense, error) {
	if err := b.Fit(y); err != nil {
		return nil, err
	}

	return b.Transform(y)
}

// Inverse decodes a score matrix back to class labels: sign of the single
// column for binary problems, per-row argmax for multiclass.
func (b *Binarizer) Inverse(scores mat.Matrix) ([]int, error) {
	if b.classes == nil {
		return nil, ErrNotFitted
	}

	n, w := scores.Dims()
	if w != b.Width() {
		return nil, ErrShapeMismatch
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		if b.Binary() {
			if scores.At(i, 0) >= 0 {
				out[i] = b.classes[1]
			} else {
				out[i] = b.classes[0]
			}

			continue
		}
		best := 0
		for j := 1; j < w; j++ {
			if scores.At(i, j) > scores.At(i, best) {
				best = j
			}
		}
		out[i] = b.classes[best]
	}

	return out, nil
}

// classIndex returns the position of c in the sorted class set, or −1.
func (b *Binarizer) classIndex(c int) int {
	i := sort.SearchInts(b.classes, c)
	if i < len(b.classes) && b.classes[i] == c {
		return i
	}

	return -1
}

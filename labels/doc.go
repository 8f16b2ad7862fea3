// Package labels encodes class labels into the ±1 column form the solvers
// consume and decodes score matrices back into class labels.
//
// Encoding follows the one-vs-rest convention: with C > 2 distinct classes
// the transform emits one ±1 column per class; with exactly two classes it
// emits a single column (+1 for the larger class, −1 for the smaller), so a
// binary problem stays a single solve.
//
// Decoding inverts that: the sign of the single column for binary problems,
// the argmax across columns for multiclass scores.
//
// ⚙️ Usage:
//
//	var b labels.Binarizer
//	y, err := b.FitTransform([]int{0, 1, 1, 2})
//	... solve per column ...
//	pred, err := b.Inverse(scores)
package labels

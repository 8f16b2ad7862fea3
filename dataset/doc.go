// Package dataset assembles pooled source+target training sets and the
// structural matrices every driver derives from them.
//
// The pooled row order is always source-then-target; labeled rows always
// precede unlabeled ones (only the trailing block of target rows may be
// unlabeled). Every downstream matrix — kernel, MMD weighting, Laplacian,
// identity, centering, label mask — indexes samples by that same order, so
// row/column i refers to the same physical sample everywhere.
//
// ⚙️ Usage:
//
//	p, err := dataset.Pool(xs, ys, xt, yt)
//	h := dataset.Centering(p.N())   // H = I − (1/n)·1·1ᵀ
//	j := dataset.LabeledMask(p.N(), p.NLabeled)
package dataset

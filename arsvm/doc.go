// Package arsvm implements the Adaptation Regularized SVM: a kernel SVM
// whose decision function is additionally pulled toward agreement between
// the source and target distributions (MMD term) and smoothness over the
// data manifold (graph-Laplacian term).
//
// 🚀 Fit pipeline
//
//  1. Pool source and target rows (source first) and build the kernel K.
//  2. Build the joint MMD weighting M (zero without target data) and, when
//     Gamma ≠ 0, the normalized Laplacian L of the pooled k-NN graph.
//  3. Form Q = I + (λM + γL)·K and the modified dual kernel
//     K̃ = K[:nl,:]·Q⁻¹[:,:nl] over the nl labeled rows.
//  4. Binarize labels to ±1 columns (one column per class beyond binary) and
//     solve one SMO quadratic program per column; coefficients are mapped
//     back through Q⁻¹ so the decision function stays a linear combination
//     of pooled training kernel rows.
//
// Fit returns an immutable *Fitted; Predict and DecisionFunction live there,
// so an unfitted model cannot be queried. A per-class QP failure aborts the
// whole fit with the class column identified in the wrapped error — results
// are never silently dropped.
//
// With Lambda = 0 and Gamma = 0 the driver reduces to an ordinary kernel SVM
// dual on the labeled data.
//
// ⚙️ Usage:
//
//	model := arsvm.New(arsvm.DefaultOptions())
//	fitted, err := model.Fit(xs, ys, xt, nil)
//	pred, err := fitted.Predict(xq)
//
// Memory: O(n²) for n pooled samples.
package arsvm

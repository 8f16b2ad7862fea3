// Package arrls implements Adaptation Regularized Least Squares: kernel
// ridge regression on the labeled rows, regularized toward source/target
// distribution agreement (MMD) and manifold smoothness, with the unlabeled
// target rows participating through those regularizers only.
//
// 🚀 Fit pipeline
//
//  1. Pool source and target rows (source first) and build the kernel K.
//  2. Build the joint MMD weighting M (zero without target data), the
//     label-presence mask J (identity over the nl labeled leading rows) and,
//     when Gamma ≠ 0, the normalized k-NN Laplacian L.
//  3. Form Q = (J + λM + γL)·K + σI and solve Q·A = J·Y directly, where Y is
//     the ±1 binarized label matrix zero-padded over unlabeled rows.
//
// σ > 0 is required in practice: it is the ridge that keeps the system
// well-posed, and an exactly singular Q surfaces solver.ErrSingular.
//
// With λ=0, γ=0, σ=1 on fully labeled data the solve reduces to standard
// kernel ridge regression, A = (K + I)⁻¹·Y.
//
// ⚙️ Usage:
//
//	model := arrls.New(arrls.DefaultOptions())
//	fitted, err := model.Fit(xs, ys, xt, nil)
//	pred, err := fitted.Predict(xq)
//
// Memory: O(n²) for n pooled samples.
package arrls

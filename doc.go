// Package adapt is a library of domain-adaptation algorithms for transfer
// learning: fit on labeled "source" data plus (partly) unlabeled "target"
// data and obtain either a classifier that generalizes to the target domain
// or a shared embedding that aligns the two distributions.
//
// 🚀 What is adapt?
//
//	A batch, in-process numerical library that brings together:
//		• Kernel machinery: Gram matrices under linear / polynomial / RBF /
//		  sigmoid / cosine families, with NaN sanitization
//		• MMD weighting: marginal and joint (class-conditional) Maximum Mean
//		  Discrepancy coefficient matrices
//		• Manifold regularization: normalized graph Laplacians over k-NN graphs
//		• Classifiers: ARSVM (adaptation-regularized SVM, SMO dual) and
//		  ARRLS (adaptation-regularized least squares)
//		• Embeddings: TCA / JDA / BDA (kernel components) and VDA
//		  (feature-space components with within-class scatter)
//
// ✨ Why choose adapt?
//
//   - Explicit fit state – Fit returns a distinct Fitted value; inference
//     methods live on it, so an unfitted model cannot be misused
//   - Deterministic – no randomness, no global state, batch call-and-return
//   - Honest failure – solver non-convergence and label mismatches surface
//     as sentinel errors, never as silent garbage
//
// Everything is organized into small focused subpackages:
//
//	kernel/   — pairwise kernel (Gram) matrix builder
//	mmd/      — MMD coefficient matrices (marginal / joint, TCA↔JDA↔BDA blend)
//	manifold/ — normalized graph Laplacian over a k-nearest-neighbor graph
//	dataset/  — source+target pooling, identity / centering / label masks
//	labels/   — ±1 one-vs-rest label binarizer and score decoding
//	solver/   — SMO quadratic program, dense linear solve, generalized eigen
//	arsvm/    — Adaptation Regularized SVM driver
//	arrls/    — Adaptation Regularized Least Squares driver
//	jda/      — TCA / JDA / BDA embedding driver
//	vda/      — Visual Domain Adaptation embedding driver
//
// Memory is dominated by n×n dense matrices where n = ns+nt pooled samples;
// that quadratic footprint is the principal scalability limit. Instances are
// not safe for concurrent mutation; share only Fitted values, read-only.
//
//	go get github.com/domainshift/adapt
package adapt

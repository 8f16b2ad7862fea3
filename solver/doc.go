// Package solver holds the numerical collaborators the model drivers call:
// a sequential-minimal-optimization (SMO) routine for the semi-supervised
// SVM dual, a dense linear solve, and a generalized eigensolver.
//
// 🚀 Contracts
//
//	QP — min ½αᵀQα − 1ᵀα  s.t.  yᵀα = 0, 0 ≤ αᵢ ≤ C
//	  Maximal-violating-pair SMO over the box; convergence when the KKT
//	  violation drops below Tol; hitting the iteration cap surfaces
//	  ErrQPNoConvergence rather than returning a partial α.
//
//	Linear — X for A·X = B by dense LU; exact singularity surfaces
//	  ErrSingular (an ill-conditioned but solvable system is accepted,
//	  matching gonum's Condition convention).
//
//	GeneralizedEigen — A·v = θ·B·v, reduced to the standard problem
//	  (B+εI)⁻¹·A with a tiny ridge ε (the constraint matrices K·H·Kᵀ are
//	  rank-deficient by construction, so a direct inverse does not exist).
//	  Returns |θ| and the real parts of the right eigenvectors with columns
//	  ordered by ascending |θ|: the smallest-discrepancy directions first,
//	  which is the minimization objective every embedding driver wants.
//
// All routines are deterministic: a failure is never transient and there is
// no retry policy.
package solver

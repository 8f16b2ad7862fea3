// Package kernel builds pairwise similarity (Gram) matrices between sample
// sets under a configurable kernel family.
//
// 🚀 What is a kernel matrix?
//
//	For row vectors X (n×d) and Y (m×d), Matrix returns K (n×m) with
//	K[i,j] = k(X[i], Y[j]) under the chosen family:
//	  • Linear      k(a,b) = aᵀb
//	  • Polynomial  k(a,b) = (γ·aᵀb + c₀)^degree
//	  • RBF         k(a,b) = exp(−γ·‖a−b‖²)
//	  • Sigmoid     k(a,b) = tanh(γ·aᵀb + c₀)
//	  • Cosine      k(a,b) = aᵀb / (‖a‖·‖b‖)
//
// Numeric policy:
//   - Any entry that evaluates to NaN (e.g. a zero-norm vector under the
//     cosine kernel) is replaced by 0 before the matrix is returned. This is
//     a correctness requirement: a propagated NaN would silently poison every
//     downstream linear-algebra step.
//   - Gamma ≤ 0 selects the 1/n_features default (libsvm convention).
//
// ⚙️ Usage:
//
//	opts := kernel.DefaultOptions() // linear
//	opts.Type = kernel.RBF
//	opts.Gamma = 0.5
//	k, err := kernel.Matrix(x, nil, opts) // nil ⇒ Gram matrix of x
//
// Complexity: O(n·m·d) time, O(n·m) memory.
package kernel

// Package manifold builds the normalized graph Laplacian used for manifold
// regularization: samples that are near neighbors in input space should keep
// similar decision values, and the Laplacian quadratic form fᵀLf penalizes
// violations of that smoothness.
//
// 🚀 Construction
//
//  1. Brute-force k-nearest-neighbor search over all n pooled rows under the
//     configured metric (Euclidean, Cosine or Manhattan distance).
//  2. Directed adjacency assembled in sparse (DOK) storage — each row keeps
//     exactly k edges, weighted 1 (Connectivity) or by distance (Distance).
//  3. Symmetrize by elementwise max: W = max(W, Wᵀ) (undirected graph).
//  4. Normalize: L = I − D^{−1/2}·W·D^{−1/2} with D the degree diagonal.
//
// L is symmetric and positive semidefinite by construction. Callers must
// treat k ≥ n as the fatal ErrTooFewSamples condition — there are not enough
// distinct neighbors, and silently truncating would hide a misconfiguration.
//
// ⚙️ Usage:
//
//	opts := manifold.DefaultOptions() // k=5, cosine, distance-weighted
//	l, err := manifold.LapNorm(x, opts)
//
// Complexity: O(n²·d) time for the neighbor search, O(n²) memory for L.
package manifold

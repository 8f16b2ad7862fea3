// Package jda learns a shared kernel embedding that aligns source and
// target distributions. One driver covers three classic methods through the
// balance parameter μ of the MMD weighting:
//
//	μ = 0 — Transfer Component Analysis (TCA): marginal alignment only
//	μ = 1 — Joint Distribution Adaptation (JDA): marginal + class-conditional
//	else  — Balanced Distribution Adaptation (BDA)
//
// 🚀 Fit pipeline
//
//  1. Pool source and target rows and build the kernel K over the pool.
//  2. Build the MMD weighting M (falls back to pure marginal when labels are
//     absent; zero without target data) and the centering matrix
//     H = I − (1/n)·1·1ᵀ.
//  3. Solve the generalized eigenproblem
//     (K·M·Kᵀ + λI)·v = θ·(K·H·Kᵀ)·v
//     and keep all eigenvectors, columns ordered by ascending |θ| — the
//     objective is discrepancy minimization, so the smallest eigenvalues
//     carry the transfer components.
//
// Transform evaluates kernel rows of new points against the full pooled
// training set and projects onto the leading NComponents eigenvector
// columns; the embedding is kernel-indexed, never linear in raw features.
//
// ⚙️ Usage:
//
//	opts := jda.DefaultOptions()
//	opts.NComponents = 2
//	opts.Mu = 0 // TCA
//	xsEmb, xtEmb, err := jda.New(opts).FitTransform(xs, nil, xt, nil)
//
// Memory: O(n²) for n pooled samples.
package jda

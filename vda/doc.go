// Package vda implements Visual Domain Adaptation: a fully supervised
// embedding that aligns source and target domains while compacting each
// class, producing components that are linear in the original feature space
// (unlike the kernel-indexed embeddings of package jda).
//
// 🚀 Fit pipeline (both domains fully labeled, same class sets)
//
//  1. Pool source and target rows and build the kernel K.
//  2. Build the discrepancy weighting L = C·M₀ + Σ_c M_c, where M₀ is the
//     marginal MMD weighting, M_c its class-restricted form and C the class
//     count.
//  3. Build the within-class scatter Sw: subtract from each kernel row the
//     mean kernel row of its class and accumulate the outer products of the
//     deviations.
//  4. Solve (K·L·Kᵀ + λI + Sw)·v = θ·(K·H·Kᵀ)·v, keep the NComponents
//     eigenvectors of smallest |θ|, and project them back into feature
//     space: Components = Wᵀ·X.
//
// Transform is a plain matrix product X·Componentsᵀ — no kernel evaluation
// is needed at inference time.
//
// Input contract: yt must label every target row, and the class sets of ys
// and yt must match exactly; violations are fatal before any fitting work.
//
// ⚙️ Usage:
//
//	opts := vda.DefaultOptions()
//	opts.NComponents = 2
//	xsEmb, xtEmb, err := vda.New(opts).FitTransform(xs, ys, xt, yt)
//
// Memory: O(n²) for n pooled samples.
package vda

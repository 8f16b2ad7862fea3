// Package mmd builds Maximum Mean Discrepancy coefficient matrices: the
// symmetric n×n weighting M over pooled source+target samples such that the
// quadratic form tr(KM) measures the (empirical) distribution discrepancy
// between the two domains in the kernel-induced feature space.
//
// 🚀 Construction
//
//	Marginal (domain membership only):
//	  e = [+1/ns … , −1/nt …]ᵀ,  M₀ = e·eᵀ
//	so M₀ carries +1/ns² within the source block, +1/nt² within the target
//	block and −1/(ns·nt) across blocks — the classic two-sample MMD weights.
//
//	Joint (marginal + class-conditional):
//	  M = M₀ + μ·Σ_c M_c
//	where M_c is the marginal weighting restricted to the rows of class c in
//	each domain (+1/ns_c, −1/nt_c). Classes with no labeled rows in either
//	domain are skipped — there is no conditional discrepancy to measure and
//	the weight would divide by zero.
//
// The balance parameter μ interpolates between pure marginal alignment and
// full joint alignment:
//
//	μ = 0 — Transfer Component Analysis (TCA): marginal only
//	μ = 1 — Joint Distribution Adaptation (JDA): M₀ + Σ_c M_c
//	else  — Balanced Distribution Adaptation (BDA)
//
// Invariants: M is symmetric and M·1 = 0 (every row sums to zero).
//
// ⚙️ Usage:
//
//	m, err := mmd.Coef(ns, nt, ys, yt, mmd.Joint, 1.0)
//
// Complexity: O(n²·(C+1)) time for C classes, O(n²) memory.
package mmd

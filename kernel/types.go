package kernel

// Type enumerates the supported kernel families.
type Type int

const (
	// Linear kernel: k(a,b) = aᵀb.
	Linear Type = iota

	// Polynomial kernel: k(a,b) = (γ·aᵀb + c₀)^degree.
	Polynomial

	// RBF (radial basis function) kernel: k(a,b) = exp(−γ·‖a−b‖²).
	RBF

	// Sigmoid kernel: k(a,b) = tanh(γ·aᵀb + c₀).
	Sigmoid

	// Cosine kernel: k(a,b) = aᵀb / (‖a‖·‖b‖).
	Cosine
)

// String returns the canonical lowercase name of the kernel family.
func (t Type) String() string {
	switch t {
	case Linear:
		return "linear"
	case Polynomial:
		return "poly"
	case RBF:
		return "rbf"
	case Sigmoid:
		return "sigmoid"
	case Cosine:
		return "cosine"
	default:
		return "unknown"
	}
}

// Options is the explicit, enumerated kernel configuration. Every parameter
// a family may consume is a named field; families ignore fields they do not
// use (e.g. Degree is polynomial-only).
//
// Fields:
//   - Type   — kernel family (Linear, Polynomial, RBF, Sigmoid, Cosine).
//   - Degree — polynomial degree (Polynomial only). Must be ≥ 1.
//   - Gamma  — scale for Polynomial/RBF/Sigmoid. Gamma ≤ 0 selects the
//     1/n_features default at evaluation time.
//   - Coef0  — additive constant for Polynomial/Sigmoid.
type Options struct {
	Type   Type
	Degree int
	Gamma  float64
	Coef0  float64
}

// DefaultOptions returns the documented defaults: a linear kernel with
// Degree=3, Gamma=0 (auto) and Coef0=1 for the families that consume them.
func DefaultOptions() Options {
	return Options{
		Type:   Linear,
		Degree: 3,
		Gamma:  0,
		Coef0:  1,
	}
}

package kernel_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/domainshift/adapt/kernel"
)

// ExampleMatrix demonstrates building an RBF Gram matrix over three samples.
//
// Scenario:
//
//	Three 2-D points; the Gram matrix is 3×3, symmetric, with unit diagonal
//	(every point is maximally similar to itself under RBF).
func ExampleMatrix() {
	x := mat.NewDense(3, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
	})

	opts := kernel.DefaultOptions()
	opts.Type = kernel.RBF
	opts.Gamma = 1

	k, err := kernel.Matrix(x, nil, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	r, c := k.Dims()
	fmt.Printf("shape=%dx%d\n", r, c)
	fmt.Printf("diag=%.0f %.0f %.0f\n", k.At(0, 0), k.At(1, 1), k.At(2, 2))
	// Output:
	// shape=3x3
	// diag=1 1 1
}

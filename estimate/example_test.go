package estimate_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/estimate"
)

// ExampleEstimate fits the symmetrized estimator to a two-state count matrix.
func ExampleEstimate() {
	c := mat.NewDense(2, 2, []float64{
		8, 2,
		2, 8,
	})
	m, _ := estimate.ParseMethod("transpose")
	t, pi, err := estimate.Estimate(c, m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n%.2f\n", mat.Formatted(t), pi)
	// Output:
	// ⎡0.80  0.20⎤
	// ⎣0.20  0.80⎦
	// [0.50 0.50]
}

package msm_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/estimate"
	"github.com/katalvlaran/lvmsm/labels"
	"github.com/katalvlaran/lvmsm/msm"
)

// ExampleModel_Fit builds a two-state model and prints its transition matrix.
func ExampleModel_Fit() {
	model, err := msm.New[string](
		msm.WithMethod(estimate.Transpose),
		msm.WithErgodicCutoff(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err = model.Fit([][]string{{"open", "open", "closed", "closed", "open"}}); err != nil {
		fmt.Println("error:", err)
		return
	}

	ls, _ := model.StateLabels()
	t, _ := model.TransitionMatrix()
	fmt.Println(ls)
	fmt.Printf("%.2f\n", mat.Formatted(t))
	// Output:
	// [closed open]
	// ⎡0.50  0.50⎤
	// ⎣0.50  0.50⎦
}

// ExampleModel_Transform maps labels to state indices, clipping unknown ones.
func ExampleModel_Transform() {
	model, _ := msm.New[int](msm.WithErgodicCutoff(0))
	_, _ = model.Fit([][]int{{4, 8, 4, 8, 8, 4}})

	out, _ := model.Transform([][]int{{8, 4, 99, 4}}, labels.Clip)
	fmt.Println(out.Ints)
	// Output:
	// [[1 0] [0]]
}

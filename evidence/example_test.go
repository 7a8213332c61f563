package evidence_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bayreg/evidence"
	"github.com/katalvlaran/bayreg/linalg"
)

// ExampleApproximate fits the hyperparameters of a small noisy linear
// dataset with the default fixed-point scheme and reports the terminal
// state of the loop.
func ExampleApproximate() {
	// A one-feature linear relationship with mild deterministic noise.
	n := 100
	raw := mat.NewDense(n, 1, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x := float64(i) / 10
		raw.Set(i, 0, x)
		y[i] = 2*x + 0.05*math.Sin(9.1*float64(i))
	}

	// The engine consumes centered data and a one-time thin SVD.
	xc, _, _ := linalg.Center(raw)
	yc, _, _ := linalg.CenterVec(y)
	svd, _ := linalg.NewThinSVD(xc)

	opts := evidence.DefaultOptions()
	res, err := evidence.Approximate(xc, yc, svd, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("outcome:", res.Outcome)
	fmt.Println("positive precisions:", res.Alpha > 0 && res.Beta > 0)
	// Output:
	// outcome: converged
	// positive precisions: true
}

package blr_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bayreg/blr"
	"github.com/katalvlaran/bayreg/evidence"
)

// ExampleModel demonstrates the fit-once, predict-many lifecycle on a
// noise-free linear relationship y = 2x + 1. With zero noise the
// engine detects the perfect-fit degeneracy and switches the
// predictive variance to the row-invariant residual-based estimate.
func ExampleModel() {
	n := 50
	x := mat.NewDense(n, 1, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		xi := float64(i)
		x.Set(i, 0, xi)
		y[i] = 2*xi + 1
	}

	m, err := blr.New(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err := m.Fit(evidence.FixedPoint, 100); err != nil {
		fmt.Println("error:", err)

		return
	}

	q := mat.NewDense(2, 1, []float64{10, 200}) // 200 is far outside training
	mean, variance, err := m.PredictDist(q)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("outcome:", m.Outcome())
	fmt.Printf("prediction at 10: %.0f\n", mean[0])
	fmt.Printf("prediction at 200: %.0f\n", mean[1])
	fmt.Println("row-invariant variance:", variance[0] == variance[1])
	// Output:
	// outcome: perfect-fit
	// prediction at 10: 21
	// prediction at 200: 401
	// row-invariant variance: true
}

// ExampleModel_PredictInterval fits mildly noisy data and reports a
// 95% credible interval around a point prediction.
func ExampleModel_PredictInterval() {
	n := 100
	x := mat.NewDense(n, 1, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		xi := float64(i) / 10
		x.Set(i, 0, xi)
		// A deterministic stand-in for observation noise.
		y[i] = 3*xi - 2 + 0.1*float64((i%7)-3)
	}

	m, err := blr.New(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err := m.Fit(evidence.EM, 200); err != nil {
		fmt.Println("error:", err)

		return
	}

	q := mat.NewDense(1, 1, []float64{5})
	lo, hi, err := m.PredictInterval(q, 0.95)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	mean, _ := m.Predict(q)
	fmt.Printf("prediction at 5: %.0f\n", mean[0])
	fmt.Println("interval brackets the mean:", lo[0] < mean[0] && mean[0] < hi[0])
	// Output:
	// prediction at 5: 13
	// interval brackets the mean: true
}

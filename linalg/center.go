package linalg

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Center returns a copy of x with every column shifted to zero mean,
// together with the per-column means that were subtracted. The input
// matrix is not modified.
func Center(x mat.Matrix) (*mat.Dense, []float64, error) {
	n, m := x.Dims()
	if n == 0 || m == 0 {
		return nil, nil, ErrEmptyInput
	}

	means := make([]float64, m)
	col := make([]float64, n)
	centered := mat.NewDense(n, m, nil)
	for j := 0; j < m; j++ {
		mat.Col(col, j, x)
		means[j] = stat.Mean(col, nil)
		for i := 0; i < n; i++ {
			centered.Set(i, j, col[i]-means[j])
		}
	}

	return centered, means, nil
}

// CenterVec returns a copy of y shifted to zero mean, together with the
// subtracted mean. The input slice is not modified.
func CenterVec(y []float64) ([]float64, float64, error) {
	if len(y) == 0 {
		return nil, 0, ErrEmptyInput
	}

	mean := stat.Mean(y, nil)
	centered := make([]float64, len(y))
	for i, v := range y {
		centered[i] = v - mean
	}

	return centered, mean, nil
}

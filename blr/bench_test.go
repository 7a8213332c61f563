package blr_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bayreg/blr"
	"github.com/katalvlaran/bayreg/evidence"
)

// benchData builds an n×m noisy linear dataset for benchmarking.
func benchData(b *testing.B, n, m int) (*mat.Dense, []float64) {
	b.Helper()

	x := mat.NewDense(n, m, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		fi := float64(i)
		y[i] = 0.1 * math.Sin(13.7*fi)
		for j := 0; j < m; j++ {
			v := math.Sin((0.3+0.07*float64(j))*fi + float64(j))
			x.Set(i, j, v)
			y[i] += v * float64(j+1) / float64(m)
		}
	}

	return x, y
}

// BenchmarkFit_Small measures construction plus a full fixed-point fit
// on 100×5 data.
func BenchmarkFit_Small(b *testing.B) {
	x, y := benchData(b, 100, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := blr.New(x, y)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		if err := m.Fit(evidence.FixedPoint, 100); err != nil {
			b.Fatalf("Fit failed: %v", err)
		}
	}
}

// BenchmarkFit_Large measures construction plus a full fixed-point fit
// on 2000×20 data.
func BenchmarkFit_Large(b *testing.B) {
	x, y := benchData(b, 2000, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := blr.New(x, y)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		if err := m.Fit(evidence.FixedPoint, 100); err != nil {
			b.Fatalf("Fit failed: %v", err)
		}
	}
}

// BenchmarkPredictDist measures batch predictive-distribution queries
// against a prefitted 1000×10 model.
func BenchmarkPredictDist(b *testing.B) {
	x, y := benchData(b, 1000, 10)
	m, err := blr.New(x, y)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	if err := m.Fit(evidence.FixedPoint, 100); err != nil {
		b.Fatalf("Fit failed: %v", err)
	}
	q, _ := benchData(b, 500, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := m.PredictDist(q); err != nil {
			b.Fatalf("PredictDist failed: %v", err)
		}
	}
}

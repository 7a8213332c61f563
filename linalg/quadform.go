package linalg

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RowQuadForm returns the per-row diagonal of x·S·xᵀ, i.e. the
// quadratic form xᵢ·S·xᵢᵀ for every row xᵢ of x. This is the
// distance-sensitive term of the predictive variance.
//
// Returns ErrEmptyInput if x has no rows and ErrDimensionMismatch if
// the column count of x does not match the order of S.
func RowQuadForm(x *mat.Dense, s mat.Symmetric) ([]float64, error) {
	n, m := x.Dims()
	if n == 0 || m == 0 {
		return nil, ErrEmptyInput
	}
	if m != s.SymmetricDim() {
		return nil, ErrDimensionMismatch
	}

	var xs mat.Dense
	xs.Mul(x, s)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = floats.Dot(xs.RawRowView(i), x.RawRowView(i))
	}

	return out, nil
}

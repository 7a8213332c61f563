package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// machEps is the IEEE-754 double-precision machine epsilon.
const machEps = 2.220446049250313e-16

// PinvH computes the Moore-Penrose pseudo-inverse of a symmetric
// (possibly near-singular) matrix via its eigendecomposition.
//
// Eigenvalues whose magnitude falls below n·machEps·max|λ| are treated
// as zero, which makes the routine tolerant of the small negative
// eigenvalues that floating-point round-off introduces into nominally
// positive semi-definite matrices.
//
// Returns ErrEmptyInput for a 0×0 matrix and ErrEigenFailed if the
// eigendecomposition does not converge.
func PinvH(a mat.Symmetric) (*mat.SymDense, error) {
	n := a.SymmetricDim()
	if n == 0 {
		return nil, ErrEmptyInput
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(a, true); !ok {
		return nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	maxAbs := 0.0
	for _, v := range vals {
		if math.Abs(v) > maxAbs {
			maxAbs = math.Abs(v)
		}
	}
	cutoff := float64(n) * machEps * maxAbs

	// scaled = Q · diag(1/λ), with below-cutoff eigenvalues dropped.
	scaled := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		if math.Abs(vals[j]) <= cutoff {
			continue
		}
		inv := 1 / vals[j]
		for i := 0; i < n; i++ {
			scaled.Set(i, j, vecs.At(i, j)*inv)
		}
	}

	var prod mat.Dense
	prod.Mul(scaled, vecs.T())

	// Symmetrize against round-off before handing the result back.
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.SetSym(i, j, 0.5*(prod.At(i, j)+prod.At(j, i)))
		}
	}

	return out, nil
}

package linalg

import (
	"gonum.org/v1/gonum/mat"
)

// ThinSVD holds the economy singular value decomposition of an n×m
// matrix A, i.e. A = U·diag(d)·Vᵀ with U of size n×k, V of size m×k
// and k = min(n, m) singular values in descending order.
//
// A ThinSVD is factorized exactly once, at construction, and is
// immutable afterward. The evidence-approximation loop and the
// posterior derivation both consume the same instance by reference;
// the matrix is never refactorized.
type ThinSVD struct {
	u *mat.Dense // n×k left singular vectors
	v *mat.Dense // m×k right singular vectors
	d []float64  // k singular values, descending
}

// NewThinSVD computes the economy SVD of a. Returns ErrEmptyInput for
// degenerate shapes and ErrSVDFailed if the factorization does not
// converge.
func NewThinSVD(a mat.Matrix) (*ThinSVD, error) {
	n, m := a.Dims()
	if n == 0 || m == 0 {
		return nil, ErrEmptyInput
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrSVDFailed
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return &ThinSVD{u: &u, v: &v, d: svd.Values(nil)}, nil
}

// U returns the left singular vectors (n×k). The returned matrix is
// the decomposition's backing storage and must not be modified.
func (s *ThinSVD) U() mat.Matrix { return s.u }

// V returns the right singular vectors (m×k). The returned matrix is
// the decomposition's backing storage and must not be modified.
func (s *ThinSVD) V() mat.Matrix { return s.v }

// Values returns the singular values in descending order. The returned
// slice is the decomposition's backing storage and must not be modified.
func (s *ThinSVD) Values() []float64 { return s.d }

// Rank returns k, the number of retained singular values.
func (s *ThinSVD) Rank() int { return len(s.d) }

// Dims returns the dimensions (n, m) of the factorized matrix.
func (s *ThinSVD) Dims() (n, m int) {
	n, _ = s.u.Dims()
	m, _ = s.v.Dims()
	return n, m
}

// RidgeSolve evaluates the closed-form ridge-like solution
//
//	w = V · diag(d / (d² + ratio)) · Uᵀ · y
//
// which is the posterior mean of the regression weights for the
// precision ratio alpha/beta. It reuses the cached factorization; no
// matrix is refactorized. Returns ErrDimensionMismatch if len(y) does
// not equal the row count of the factorized matrix.
func (s *ThinSVD) RidgeSolve(y []float64, ratio float64) ([]float64, error) {
	n, m := s.Dims()
	if len(y) != n {
		return nil, ErrDimensionMismatch
	}

	k := len(s.d)
	uty := mat.NewVecDense(k, nil)
	uty.MulVec(s.u.T(), mat.NewVecDense(n, y))
	for i := 0; i < k; i++ {
		di := s.d[i]
		uty.SetVec(i, uty.AtVec(i)*di/(di*di+ratio))
	}

	w := make([]float64, m)
	wv := mat.NewVecDense(m, w)
	wv.MulVec(s.v, uty)

	return w, nil
}

package linalg

import "errors"

// Sentinel errors returned by the linalg primitives.
var (
	// ErrEmptyInput indicates a matrix or vector with no elements.
	ErrEmptyInput = errors.New("linalg: input matrix or vector is empty")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrSVDFailed indicates that the SVD factorization did not converge.
	ErrSVDFailed = errors.New("linalg: SVD factorization failed to converge")

	// ErrEigenFailed indicates that the symmetric eigendecomposition did
	// not converge.
	ErrEigenFailed = errors.New("linalg: eigendecomposition failed to converge")
)

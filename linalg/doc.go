// Package linalg provides the dense linear-algebra primitives consumed
// by the evidence-approximation engine and the regression model:
// data centering, a cached economy ("thin") singular value
// decomposition, a symmetric Moore-Penrose pseudo-inverse, and the
// row-wise quadratic form used for predictive variance.
//
// All heavy lifting is delegated to gonum; this package only fixes the
// contracts the rest of the module relies on:
//
//   - ThinSVD is computed exactly once per matrix and is immutable
//     afterward. Callers share it by reference; nothing in this module
//     ever refactorizes a design matrix.
//   - PinvH tolerates the small negative eigenvalues that floating-point
//     round-off introduces into nominally positive semi-definite
//     matrices, zeroing every eigenvalue below a relative cutoff.
//
// Errors are package-level sentinels matched with errors.Is.
package linalg

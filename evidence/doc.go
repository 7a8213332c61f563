// Package evidence implements type-II maximum-likelihood ("evidence
// approximation") estimation of the two precision hyperparameters of a
// Gaussian-linear model: alpha, the precision of the zero-mean prior
// over the regression weights, and beta, the precision of the
// observation noise.
//
// 🚀 What is evidence approximation?
//
//	Instead of cross-validating alpha and beta, the marginal likelihood
//	of the data — the "evidence" p(y | X, alpha, beta), with the weights
//	integrated out — is maximized directly. Two iterative schemes are
//	provided, both climbing the same objective:
//	  • FixedPoint — recompute alpha and beta from the current posterior
//	    statistics via the effective-degrees-of-freedom identity (fast,
//	    default)
//	  • EM         — expectation-maximization updates (slower, sometimes
//	    more stable near degeneracy)
//
// Every iteration reuses one cached thin SVD of the centered design
// matrix (see linalg.ThinSVD); nothing is ever refactorized.
//
// The loop has exactly three terminal states, reported as an Outcome:
//
//	OutcomeConverged       — the log-evidence delta fell below Tol
//	OutcomePerfectFit      — the mean squared residual fell below
//	                         Lambda0; hyperparameters keep their
//	                         pre-iteration values and a one-time warning
//	                         is logged
//	OutcomeBudgetExhausted — MaxIter iterations ran without convergence
//
// A per-iteration log-evidence trace (seeded with -Inf) is returned for
// monitoring; evplot can render it.
//
// ⚙️ Usage:
//
//	opts := evidence.DefaultOptions()
//	opts.Method = evidence.EM
//	res, err := evidence.Approximate(xc, yc, svd, &opts)
//	if err != nil { ... }
//	fmt.Println(res.Outcome, res.Alpha, res.Beta)
//
// Inputs must already be centered; the blr package takes care of that
// and is the intended entry point for most callers.
package evidence

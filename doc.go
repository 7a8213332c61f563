// Package bayreg is an in-memory toolkit for Bayesian linear regression
// with type-II maximum-likelihood ("evidence approximation") estimation
// of its precision hyperparameters.
//
// 🚀 What is bayreg?
//
//	A small, focused library that jointly estimates the prior precision
//	of the regression weights (alpha) and the noise precision of the
//	likelihood (beta) by maximizing the marginal likelihood of the data,
//	then serves calibrated predictions from the resulting posterior:
//	  • Point predictions with the bias term added back
//	  • Predictive mean AND variance per query row
//	  • Central credible intervals from the Gaussian predictive law
//	  • An explicit perfect-fit regime with a documented variance fallback
//
// ✨ Why choose bayreg?
//
//   - Hyperparameters for free – no cross-validation, no grid search;
//     alpha and beta come out of the evidence maximization itself
//   - One factorization – the thin SVD of the centered design matrix is
//     computed once at construction and reused by every iteration and by
//     the posterior derivation
//   - Two update schemes – fixed-point (fast, default) and EM, both
//     maximizing the same objective
//   - Honest diagnostics – a log-evidence trace per fit and an explicit
//     outcome (converged / perfect-fit / budget-exhausted)
//
// Under the hood, everything is organized under four subpackages:
//
//	linalg/   — centering, cached thin SVD, symmetric pseudo-inverse
//	evidence/ — the hyperparameter-estimation loop and its state machine
//	blr/      — the user-facing model: New → Fit → Predict/PredictDist
//	evplot/   — log-evidence trace plots for fit monitoring
//
// Quick sketch:
//
//	m, _ := blr.New(X, y)
//	_ = m.Fit(evidence.FixedPoint, 100)
//	mean, variance, _ := m.PredictDist(Xq)
//
// Model instances are single-threaded: fit once, predict many times.
// Independent instances may be used freely in parallel.
//
//	go get github.com/katalvlaran/bayreg/blr
package bayreg

// Package blr is the user-facing Bayesian linear regression model:
// construct once from raw data, fit once (or again — every Fit starts
// from the configured initial hyperparameters), then predict any number
// of times.
//
// Construction centers the explanatory and response data, captures the
// centering offsets and the bias term, and factorizes the centered
// design matrix with one thin SVD that every later computation reuses.
//
// Fit runs the evidence-approximation engine (see the evidence
// package), then derives the weight posterior:
//
//	mean      = V·diag(d/(d²+alpha/beta))·Uᵀ·y   (cached SVD)
//	precision = beta·XᵀX + alpha·I               (direct product)
//
// and the posterior covariance via the symmetric pseudo-inverse of the
// precision. The covariance feeds the predictive variance.
//
// Prediction offers three surfaces:
//
//	Predict         — point estimate, bias added back
//	PredictDist     — mean and variance of the Gaussian predictive law
//	PredictInterval — central credible interval per query row
//
// Under a perfect fit (see evidence.OutcomePerfectFit) the predictive
// variance is the mean squared training residual, identical for every
// query row: the covariance-based term is unreliable when the residual
// is numerically zero, so the variance deliberately does not grow with
// distance from the training data.
//
// ⚙️ Usage:
//
//	m, err := blr.New(X, y, blr.WithTol(1e-6))
//	if err != nil { ... }
//	if err := m.Fit(evidence.FixedPoint, 100); err != nil { ... }
//	mean, variance, err := m.PredictDist(Xq)
//
// A Model has no internal locking. Fit mutates model state in place;
// fitting and predicting on the same instance from multiple goroutines
// without external synchronization is undefined. Independent instances
// are safe to use in parallel.
package blr

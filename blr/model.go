package blr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bayreg/evidence"
	"github.com/katalvlaran/bayreg/linalg"
)

// Model is a Bayesian linear regression fitted by evidence
// approximation. Construct with New, estimate hyperparameters with
// Fit, then predict. All construction state (centered data, centering
// offsets, SVD cache) is immutable after New; Fit replaces the
// posterior state atomically on success and leaves the model untouched
// on failure.
type Model struct {
	opts Options

	n, m int
	x    *mat.Dense // centered design matrix, immutable after New
	y    []float64  // centered response, immutable after New
	muX  []float64  // feature means subtracted at construction
	muY  float64    // response mean; the bias term when opts.Bias
	svd  *linalg.ThinSVD

	fitted     bool
	alpha      float64
	beta       float64
	trace      []float64
	outcome    evidence.Outcome
	perfectFit bool

	wMu       []float64     // posterior mean of the weights
	precision *mat.SymDense // posterior precision, beta·XᵀX + alpha·I
	cov       *mat.SymDense // posterior covariance, PinvH(precision)
	residMS   float64       // mean squared training residual
}

// New constructs a model from the raw design matrix x (n observations
// × m features, no bias column) and response y (length n). The data is
// centered and the thin SVD of the centered design is computed here,
// once, for reuse by every Fit and posterior derivation.
//
// Returns ErrEmptyInput, ErrDimensionMismatch or ErrNonFinite on
// invalid data.
func New(x mat.Matrix, y []float64, opts ...Option) (*Model, error) {
	if x == nil || len(y) == 0 {
		return nil, ErrEmptyInput
	}
	n, m := x.Dims()
	if n == 0 || m == 0 {
		return nil, ErrEmptyInput
	}
	if len(y) != n {
		return nil, fmt.Errorf("%w: design has %d rows, response has %d", ErrDimensionMismatch, n, len(y))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if !isFinite(x.At(i, j)) {
				return nil, fmt.Errorf("%w: design entry (%d,%d)", ErrNonFinite, i, j)
			}
		}
		if !isFinite(y[i]) {
			return nil, fmt.Errorf("%w: response entry %d", ErrNonFinite, i)
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	xc, muX, err := linalg.Center(x)
	if err != nil {
		return nil, err
	}
	yc, muY, err := linalg.CenterVec(y)
	if err != nil {
		return nil, err
	}
	svd, err := linalg.NewThinSVD(xc)
	if err != nil {
		return nil, err
	}

	return &Model{
		opts: o,
		n:    n,
		m:    m,
		x:    xc,
		y:    yc,
		muX:  muX,
		muY:  muY,
		svd:  svd,
	}, nil
}

// Fit estimates (alpha, beta) with the given method and iteration
// budget, then derives the weight posterior (mean, precision,
// covariance) and the training residual statistics.
//
// Every call starts from the configured initial precisions, so
// repeated fits are independent; use WithInitialAlpha/WithInitialBeta
// at construction to warm-start from a previous fit instead.
//
// On any error — including evidence.ErrUnknownMethod — the model's
// hyperparameters and posterior keep their pre-call values and the
// model's fitted state is unchanged.
func (mdl *Model) Fit(method evidence.Method, maxIter int) error {
	eopts := evidence.DefaultOptions()
	eopts.Method = method
	eopts.MaxIter = maxIter
	eopts.Tol = mdl.opts.Tol
	eopts.Lambda0 = mdl.opts.Lambda0
	eopts.Alpha0 = mdl.opts.Alpha0
	eopts.Beta0 = mdl.opts.Beta0
	eopts.Logger = mdl.opts.Logger

	res, err := evidence.Approximate(mdl.x, mdl.y, mdl.svd, &eopts)
	if err != nil {
		return err
	}

	// Posterior mean via the same cached-SVD closed form the loop uses.
	wMu, err := mdl.svd.RidgeSolve(mdl.y, res.Alpha/res.Beta)
	if err != nil {
		return err
	}

	// Posterior precision from the raw matrix product: the precision
	// itself is needed for the downstream pseudo-inverse, so this is the
	// one computation that does not go through the SVD.
	var xtx mat.Dense
	xtx.Mul(mdl.x.T(), mdl.x)
	precision := mat.NewSymDense(mdl.m, nil)
	for i := 0; i < mdl.m; i++ {
		for j := i; j < mdl.m; j++ {
			v := res.Beta * 0.5 * (xtx.At(i, j) + xtx.At(j, i))
			if i == j {
				v += res.Alpha
			}
			precision.SetSym(i, j, v)
		}
	}

	cov, err := linalg.PinvH(precision)
	if err != nil {
		return err
	}

	// Mean squared training residual under the final posterior mean;
	// this is the constant predictive variance in the perfect-fit regime.
	fitVal := mat.NewVecDense(mdl.n, nil)
	fitVal.MulVec(mdl.x, mat.NewVecDense(mdl.m, wMu))
	residSS := 0.0
	for i := 0; i < mdl.n; i++ {
		r := mdl.y[i] - fitVal.AtVec(i)
		residSS += r * r
	}

	mdl.alpha = res.Alpha
	mdl.beta = res.Beta
	mdl.trace = res.Trace
	mdl.outcome = res.Outcome
	mdl.perfectFit = res.Outcome == evidence.OutcomePerfectFit
	mdl.wMu = wMu
	mdl.precision = precision
	mdl.cov = cov
	mdl.residMS = residSS / float64(mdl.n)
	mdl.fitted = true

	return nil
}

// Alpha returns the fitted weight-prior precision, or 0 before a
// successful Fit.
func (mdl *Model) Alpha() float64 { return mdl.alpha }

// Beta returns the fitted noise precision, or 0 before a successful Fit.
func (mdl *Model) Beta() float64 { return mdl.beta }

// Outcome returns the terminal state of the last successful Fit.
func (mdl *Model) Outcome() evidence.Outcome { return mdl.outcome }

// PerfectFit reports whether the last successful Fit ended in the
// perfect-fit regime. The flag switches PredictDist to the constant,
// non-distance-sensitive variance formula.
func (mdl *Model) PerfectFit() bool { return mdl.perfectFit }

// LogEvidence returns a copy of the per-iteration log-evidence trace of
// the last successful Fit, seeded with -Inf at index 0.
func (mdl *Model) LogEvidence() []float64 {
	if mdl.trace == nil {
		return nil
	}
	out := make([]float64, len(mdl.trace))
	copy(out, mdl.trace)

	return out
}

// Dims returns the training shape: observation count n and feature
// count m.
func (mdl *Model) Dims() (n, m int) { return mdl.n, mdl.m }

// Coef returns a copy of the posterior mean of the weights, in the
// centered feature space. ErrNotFitted before a successful Fit.
func (mdl *Model) Coef() ([]float64, error) {
	if !mdl.fitted {
		return nil, ErrNotFitted
	}
	out := make([]float64, len(mdl.wMu))
	copy(out, mdl.wMu)

	return out, nil
}

// Intercept returns the constant term of the fitted line in the
// original (uncentered) feature space, so that a prediction is
// x·Coef + Intercept. ErrNotFitted before a successful Fit.
func (mdl *Model) Intercept() (float64, error) {
	if !mdl.fitted {
		return 0, ErrNotFitted
	}
	intercept := -floats.Dot(mdl.muX, mdl.wMu)
	if mdl.opts.Bias {
		intercept += mdl.muY
	}

	return intercept, nil
}

// Posterior returns copies of the posterior mean and precision of the
// weights. ErrNotFitted before a successful Fit.
func (mdl *Model) Posterior() (mean []float64, precision *mat.SymDense, err error) {
	if !mdl.fitted {
		return nil, nil, ErrNotFitted
	}
	mean = make([]float64, len(mdl.wMu))
	copy(mean, mdl.wMu)
	precision = mat.NewSymDense(mdl.m, nil)
	precision.CopySym(mdl.precision)

	return mean, precision, nil
}

// Covariance returns a copy of the posterior covariance of the weights
// (the pseudo-inverse of the precision). ErrNotFitted before a
// successful Fit.
func (mdl *Model) Covariance() (*mat.SymDense, error) {
	if !mdl.fitted {
		return nil, ErrNotFitted
	}
	out := mat.NewSymDense(mdl.m, nil)
	out.CopySym(mdl.cov)

	return out, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

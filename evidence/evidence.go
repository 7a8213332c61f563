package evidence

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bayreg/linalg"
)

// Approximate estimates (alpha, beta) for the centered design matrix x
// and centered response y by maximizing the log-evidence, reusing the
// cached thin SVD of x for every iteration.
//
// Per iteration, for the current (alpha, beta):
//
//  1. mu = V·diag(d/(d²+alpha/beta))·Uᵀ·y    (posterior mean, cached SVD)
//  2. sqdErr = ‖y − X·mu‖²
//  3. if sqdErr/n < Lambda0: perfect fit — warn once, stop, keep the
//     pre-iteration (alpha, beta)
//  4. update (alpha, beta) by the configured Method
//  5. append the log-evidence to the trace
//  6. stop when the absolute trace delta falls below Tol
//
// The loop also stops after MaxIter iterations regardless of
// convergence. Returns ErrUnknownMethod or ErrBadOption before any
// iteration runs, and ErrNumericFailure if alpha, beta or the
// log-evidence become non-finite.
func Approximate(x *mat.Dense, y []float64, svd *linalg.ThinSVD, opts *Options) (Result, error) {
	var res Result

	if x == nil || svd == nil || len(y) == 0 {
		return res, ErrEmptyInput
	}
	n, m := x.Dims()
	if n == 0 || m == 0 {
		return res, ErrEmptyInput
	}
	if len(y) != n {
		return res, fmt.Errorf("%w: design has %d rows, response has %d", ErrDimensionMismatch, n, len(y))
	}
	if sn, sm := svd.Dims(); sn != n || sm != m {
		return res, fmt.Errorf("%w: SVD cache is %dx%d, design is %dx%d", ErrDimensionMismatch, sn, sm, n, m)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	switch o.Method {
	case FixedPoint, EM:
	default:
		return res, fmt.Errorf("%w: %s", ErrUnknownMethod, o.Method)
	}
	if o.MaxIter < 1 || o.Tol <= 0 || o.Lambda0 < 0 || o.Alpha0 <= 0 || o.Beta0 <= 0 {
		return res, ErrBadOption
	}

	d := svd.Values()
	dsq := make([]float64, len(d))
	for i, v := range d {
		dsq[i] = v * v
	}

	alpha, beta := o.Alpha0, o.Beta0
	trace := []float64{math.Inf(-1)}
	outcome := OutcomeBudgetExhausted
	iters := 0

	nf, mf := float64(n), float64(m)
	residual := make([]float64, n)
	var xmu mat.VecDense

	for i := 0; i < o.MaxIter; i++ {
		iters = i + 1

		// Posterior mean from the cached SVD; never refactorized.
		mu, err := svd.RidgeSolve(y, alpha/beta)
		if err != nil {
			return res, err
		}

		xmu.MulVec(x, mat.NewVecDense(m, mu))
		for r := 0; r < n; r++ {
			residual[r] = y[r] - xmu.AtVec(r)
		}
		sqdErr := floats.Dot(residual, residual)

		// Perfect-fit guard: residual variance collapsed. Stop before
		// the update so (alpha, beta) keep their pre-iteration values.
		if sqdErr/nf < o.Lambda0 {
			outcome = OutcomePerfectFit
			o.Logger.Warn("almost perfect fit: predictive variance will be estimated "+
				"from the residual sum of squares only and does not grow away from "+
				"the training data",
				zap.Int("iteration", i),
				zap.Float64("mean_squared_residual", sqdErr/nf),
			)
			break
		}

		musq := floats.Dot(mu, mu)
		switch o.Method {
		case FixedPoint:
			gamma := 0.0
			for j := range dsq {
				gamma += dsq[j] / (dsq[j] + alpha/beta)
			}
			alpha = gamma / musq
			beta = (nf - gamma) / sqdErr
		case EM:
			sumInv, sumD := 0.0, 0.0
			for j := range dsq {
				den := beta*dsq[j] + alpha
				sumInv += 1 / den
				sumD += dsq[j] / den
			}
			alpha = mf / (musq + sumInv)
			beta = nf / (sqdErr + sumD)
		}

		// Log-evidence up to an additive constant.
		sumLog := 0.0
		for j := range dsq {
			sumLog += math.Log(beta*dsq[j] + alpha)
		}
		logEv := 0.5*(mf*math.Log(alpha)+nf*math.Log(beta)-sumLog) -
			0.5*alpha*musq - 0.5*beta*sqdErr - 0.5*nf*math.Log(2*math.Pi)

		if !isFinite(alpha) || !isFinite(beta) || math.IsNaN(logEv) || math.IsInf(logEv, 1) {
			return res, ErrNumericFailure
		}
		trace = append(trace, logEv)

		o.Logger.Debug("evidence iteration",
			zap.Int("iteration", i),
			zap.String("method", o.Method.String()),
			zap.Float64("alpha", alpha),
			zap.Float64("beta", beta),
			zap.Float64("log_evidence", logEv),
		)

		// Convergence test on the trace delta. Needs two real entries;
		// trace[0] is the -Inf seed.
		if len(trace) > 2 && math.Abs(trace[len(trace)-1]-trace[len(trace)-2]) < o.Tol {
			outcome = OutcomeConverged
			break
		}
	}

	res = Result{
		Alpha:      alpha,
		Beta:       beta,
		Trace:      trace,
		Outcome:    outcome,
		Iterations: iters,
	}

	return res, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

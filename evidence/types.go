// Package evidence: methods, outcomes, options and sentinel errors for
// the evidence-approximation loop.
package evidence

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors returned by Approximate.
var (
	// ErrUnknownMethod indicates an unrecognized approximation method.
	// Approximate validates the method before touching any state.
	ErrUnknownMethod = errors.New("evidence: unknown approximation method")

	// ErrBadOption indicates an out-of-range option value (MaxIter < 1,
	// Tol <= 0, Lambda0 < 0, or a non-positive initial precision).
	ErrBadOption = errors.New("evidence: invalid option value")

	// ErrEmptyInput indicates an empty design matrix, response, or a nil
	// SVD cache.
	ErrEmptyInput = errors.New("evidence: empty design matrix or response")

	// ErrDimensionMismatch indicates that the design matrix, response and
	// SVD cache disagree on the observation count.
	ErrDimensionMismatch = errors.New("evidence: dimension mismatch")

	// ErrNumericFailure indicates that alpha, beta or the log-evidence
	// became non-finite mid-iteration (e.g. a degenerate precision ratio).
	ErrNumericFailure = errors.New("evidence: non-finite value encountered during iteration")
)

// Method selects the hyperparameter update scheme.
//
// FixedPoint – recompute alpha and beta from the effective number of
// well-determined parameters gamma (fast; the default).
// EM – expectation-maximization updates maximizing the same evidence
// objective (slower, occasionally more stable).
type Method int

const (
	// FixedPoint applies the gamma-based fixed-point updates.
	FixedPoint Method = iota

	// EM applies the expectation-maximization updates.
	EM
)

// String returns the canonical name of the method.
func (m Method) String() string {
	switch m {
	case FixedPoint:
		return "fixed-point"
	case EM:
		return "EM"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps the canonical method names ("fixed-point", "EM") to
// their Method values. Matching is exact apart from accepting "em" in
// lower case. Unknown names return ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "fixed-point":
		return FixedPoint, nil
	case "EM", "em":
		return EM, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Outcome is the terminal state of the approximation loop. Exactly one
// outcome is reached per call; the three states are independently
// testable.
type Outcome int

const (
	// OutcomeNone is the zero value; Approximate never returns it.
	OutcomeNone Outcome = iota

	// OutcomeConverged means the absolute log-evidence delta fell below
	// Options.Tol.
	OutcomeConverged

	// OutcomePerfectFit means the mean squared residual fell below
	// Options.Lambda0; the loop stopped before updating the
	// hyperparameters for that iteration.
	OutcomePerfectFit

	// OutcomeBudgetExhausted means MaxIter iterations completed without
	// triggering either stop condition.
	OutcomeBudgetExhausted
)

// String returns a short human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeConverged:
		return "converged"
	case OutcomePerfectFit:
		return "perfect-fit"
	case OutcomeBudgetExhausted:
		return "budget-exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Default option values.
const (
	// DefaultMaxIter is the default iteration budget.
	DefaultMaxIter = 100

	// DefaultTol is the default convergence threshold on the absolute
	// log-evidence delta.
	DefaultTol = 1e-3

	// DefaultLambda0 is the default floor on the mean squared residual
	// below which the fit is declared perfect. When using EM, smaller
	// values give better predictive-variance estimates near degeneracy.
	DefaultLambda0 = 1e-8

	// DefaultAlpha0 is the default initial weight-prior precision
	// (a broad prior).
	DefaultAlpha0 = 1.0

	// DefaultBeta0 is the default initial noise precision.
	DefaultBeta0 = 1.0
)

// Options configures the evidence-approximation loop.
//
// Method  – update scheme, FixedPoint or EM.
// MaxIter – iteration budget; must be ≥ 1.
// Tol     – stop when |logEvidence[i] − logEvidence[i−1]| < Tol. The
// original formulation compared the delta with exact equality, which
// never fires in floating point; this is the corrected test.
// Lambda0 – perfect-fit floor on RSS/n; must be ≥ 0.
// Alpha0, Beta0 – initial precisions; must be > 0. Every call starts
// from these values, so repeated runs are independent.
// Logger  – receives the one-time perfect-fit warning and per-iteration
// debug records. Defaults to a no-op logger.
type Options struct {
	Method  Method
	MaxIter int
	Tol     float64
	Lambda0 float64
	Alpha0  float64
	Beta0   float64
	Logger  *zap.Logger
}

// DefaultOptions returns the standard configuration: fixed-point
// updates, a budget of DefaultMaxIter iterations, broad initial
// precisions and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Method:  FixedPoint,
		MaxIter: DefaultMaxIter,
		Tol:     DefaultTol,
		Lambda0: DefaultLambda0,
		Alpha0:  DefaultAlpha0,
		Beta0:   DefaultBeta0,
		Logger:  zap.NewNop(),
	}
}

// Result carries the terminal state of one Approximate call.
//
// Alpha, Beta – the final precision estimates. Under OutcomePerfectFit
// these are the values from before the terminating iteration, since
// that iteration's update is skipped.
// Trace – per-iteration log-evidence (up to an additive constant),
// seeded with -Inf at index 0.
// Outcome – which of the three terminal states ended the loop.
// Iterations – number of iterations entered, including a partial
// iteration cut short by the perfect-fit guard.
type Result struct {
	Alpha      float64
	Beta       float64
	Trace      []float64
	Outcome    Outcome
	Iterations int
}

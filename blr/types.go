package blr

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/bayreg/evidence"
)

// Sentinel errors returned by the model surface.
var (
	// ErrEmptyInput indicates an empty design matrix or response.
	ErrEmptyInput = errors.New("blr: empty design matrix or response")

	// ErrDimensionMismatch indicates that the response length or a query's
	// feature count disagrees with the design matrix.
	ErrDimensionMismatch = errors.New("blr: dimension mismatch")

	// ErrNonFinite indicates a NaN or ±Inf value in the input data.
	ErrNonFinite = errors.New("blr: non-finite value in input data")

	// ErrNotFitted indicates a prediction or posterior query before a
	// successful Fit.
	ErrNotFitted = errors.New("blr: model has not been fitted")

	// ErrBadInterval indicates a credible-interval probability outside (0, 1).
	ErrBadInterval = errors.New("blr: interval probability must be in (0, 1)")
)

// Options configures a Model at construction time. The zero value is
// not meaningful; start from DefaultOptions (applied by New) and adjust
// via the functional options below.
//
// Bias    – when true (default), the response mean is retained as a bias
// term and added back to every prediction. Disabling it is a caller
// policy choice, not an algorithmic one; predictions are then centered.
// Tol, Lambda0, Alpha0, Beta0 – forwarded to the evidence engine; see
// the evidence package for semantics and defaults.
// Logger  – forwarded to the evidence engine for the perfect-fit notice
// and iteration debug records. Defaults to a no-op logger.
type Options struct {
	Bias    bool
	Tol     float64
	Lambda0 float64
	Alpha0  float64
	Beta0   float64
	Logger  *zap.Logger
}

// DefaultOptions returns the standard model configuration: bias term
// enabled and the evidence engine's default thresholds and initial
// precisions.
func DefaultOptions() Options {
	return Options{
		Bias:    true,
		Tol:     evidence.DefaultTol,
		Lambda0: evidence.DefaultLambda0,
		Alpha0:  evidence.DefaultAlpha0,
		Beta0:   evidence.DefaultBeta0,
		Logger:  zap.NewNop(),
	}
}

// Option is a functional option for configuring a Model at construction.
type Option func(*Options)

// WithBias controls whether the response mean is added back at
// prediction time. Enabled by default.
func WithBias(enabled bool) Option {
	return func(o *Options) { o.Bias = enabled }
}

// WithTol sets the convergence threshold on the absolute log-evidence
// delta used by Fit.
func WithTol(tol float64) Option {
	return func(o *Options) { o.Tol = tol }
}

// WithLambda0 sets the perfect-fit floor on the mean squared residual.
// When fitting with EM, smaller values give better predictive-variance
// estimates near degeneracy.
func WithLambda0(floor float64) Option {
	return func(o *Options) { o.Lambda0 = floor }
}

// WithInitialAlpha sets the initial weight-prior precision every Fit
// starts from. Passing a previous fit's Alpha() warm-starts the next fit.
func WithInitialAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha0 = alpha }
}

// WithInitialBeta sets the initial noise precision every Fit starts from.
func WithInitialBeta(beta float64) Option {
	return func(o *Options) { o.Beta0 = beta }
}

// WithLogger routes the engine's perfect-fit warning and iteration
// debug records to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

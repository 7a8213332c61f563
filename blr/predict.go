package blr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/bayreg/linalg"
)

// Predict returns the point prediction x·wMu (+ bias term when
// enabled) for every row of x.
//
// Returns ErrNotFitted before a successful Fit, ErrEmptyInput for an
// empty query, and ErrDimensionMismatch if the query's feature count
// differs from training time.
func (mdl *Model) Predict(x mat.Matrix) ([]float64, error) {
	xc, err := mdl.centerQuery(x)
	if err != nil {
		return nil, err
	}

	return mdl.pointPredict(xc), nil
}

// PredictDist returns the mean and variance of the Gaussian predictive
// distribution for every row of x. The mean is identical to Predict.
//
// In the generic regime the variance is 1/beta + xᵢ·D·xᵢᵀ with D the
// posterior covariance, growing with distance from the training-data
// manifold. In the perfect-fit regime the variance is the mean squared
// training residual, identical for every row: the covariance term is
// unreliable under a near-zero residual, so the estimate deliberately
// does not inflate with extrapolation.
func (mdl *Model) PredictDist(x mat.Matrix) (mean, variance []float64, err error) {
	xc, err := mdl.centerQuery(x)
	if err != nil {
		return nil, nil, err
	}

	mean = mdl.pointPredict(xc)
	rows, _ := xc.Dims()
	variance = make([]float64, rows)

	if mdl.perfectFit {
		for i := range variance {
			variance[i] = mdl.residMS
		}

		return mean, variance, nil
	}

	quad, err := linalg.RowQuadForm(xc, mdl.cov)
	if err != nil {
		return nil, nil, err
	}
	noise := 1 / mdl.beta
	for i := range variance {
		variance[i] = noise + quad[i]
	}

	return mean, variance, nil
}

// PredictInterval returns the central credible interval containing
// prob of the predictive mass for every row of x, as (lo, hi) bounds.
//
// Returns ErrBadInterval unless 0 < prob < 1; otherwise the same
// errors as PredictDist.
func (mdl *Model) PredictInterval(x mat.Matrix, prob float64) (lo, hi []float64, err error) {
	if prob <= 0 || prob >= 1 {
		return nil, nil, ErrBadInterval
	}

	mean, variance, err := mdl.PredictDist(x)
	if err != nil {
		return nil, nil, err
	}

	tail := (1 - prob) / 2
	lo = make([]float64, len(mean))
	hi = make([]float64, len(mean))
	for i := range mean {
		dist := distuv.Normal{Mu: mean[i], Sigma: math.Sqrt(variance[i])}
		lo[i] = dist.Quantile(tail)
		hi[i] = dist.Quantile(1 - tail)
	}

	return lo, hi, nil
}

// centerQuery validates a query matrix against the training shape and
// shifts it by the training feature means.
func (mdl *Model) centerQuery(x mat.Matrix) (*mat.Dense, error) {
	if !mdl.fitted {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, ErrEmptyInput
	}
	rows, cols := x.Dims()
	if rows == 0 {
		return nil, ErrEmptyInput
	}
	if cols != mdl.m {
		return nil, fmt.Errorf("%w: model has %d features, query has %d", ErrDimensionMismatch, mdl.m, cols)
	}

	xc := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			xc.Set(i, j, x.At(i, j)-mdl.muX[j])
		}
	}

	return xc, nil
}

// pointPredict computes xc·wMu for pre-centered queries and adds the
// bias term back when enabled.
func (mdl *Model) pointPredict(xc *mat.Dense) []float64 {
	rows, _ := xc.Dims()
	out := make([]float64, rows)
	v := mat.NewVecDense(rows, out)
	v.MulVec(xc, mat.NewVecDense(mdl.m, mdl.wMu))
	if mdl.opts.Bias {
		for i := range out {
			out[i] += mdl.muY
		}
	}

	return out
}

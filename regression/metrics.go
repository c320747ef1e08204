package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/internal/pool"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metrics holds goodness-of-fit statistics of predictions against actual values.
type Metrics struct {
	// RSquared is the coefficient of determination, 1 − SS_res/SS_tot.
	RSquared float64
	// MSE is the mean squared error.
	MSE float64
	// MAE is the mean absolute error.
	MAE float64
	// RMSE is the root mean squared error, √MSE.
	RMSE float64
}

// String returns a string representation of the metrics.
func (m Metrics) String() string {
	return fmt.Sprintf("Metrics{R²: %.6f, MSE: %.4f, MAE: %.4f, RMSE: %.4f}", m.RSquared, m.MSE, m.MAE, m.RMSE)
}

// Evaluate scores predicted against actual.
//
// Parameters:
//   - actual: Observed values
//   - predicted: Model predictions, same length as actual
//
// Returns:
//   - Metrics: R², MSE, MAE and RMSE
//   - error: errs.ErrEmptyInput, errs.ErrLengthMismatch, or errs.ErrDegenerateInput
//     when all actual values are identical (SS_tot is zero)
func Evaluate(actual, predicted []float64) (Metrics, error) {
	if err := checkPaired(actual, predicted); err != nil {
		return Metrics{}, err
	}

	residuals, release := pool.GetFloat64Slice(len(actual))
	defer release()
	residualsInto(residuals, actual, predicted)

	r2, err := rSquared(actual, residuals)
	if err != nil {
		return Metrics{}, err
	}
	mse := meanSquared(residuals)

	return Metrics{
		RSquared: r2,
		MSE:      mse,
		MAE:      meanAbsolute(residuals),
		RMSE:     math.Sqrt(mse),
	}, nil
}

func residualsInto(dst, actual, predicted []float64) {
	for i := range actual {
		dst[i] = actual[i] - predicted[i]
	}
}

// rSquared computes 1 − SS_res/SS_tot from the actual values and their residuals.
func rSquared(actual, residuals []float64) (float64, error) {
	if floats.Min(actual) == floats.Max(actual) {
		return 0, fmt.Errorf("%w: all actual values are identical", errs.ErrDegenerateInput)
	}

	mean := stat.Mean(actual, nil)
	ssTot := 0.0
	ssRes := 0.0
	for i := range actual {
		d := actual[i] - mean
		ssTot += d * d
		ssRes += residuals[i] * residuals[i]
	}

	if ssTot == 0 {
		return 0, fmt.Errorf("%w: zero total sum of squares", errs.ErrDegenerateInput)
	}

	return 1 - ssRes/ssTot, nil
}

func meanSquared(residuals []float64) float64 {
	sum := 0.0
	for _, r := range residuals {
		sum += r * r
	}

	return sum / float64(len(residuals))
}

func meanAbsolute(residuals []float64) float64 {
	sum := 0.0
	for _, r := range residuals {
		sum += math.Abs(r)
	}

	return sum / float64(len(residuals))
}

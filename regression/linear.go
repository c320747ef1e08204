package regression

import (
	"fmt"

	"github.com/arloliu/quadfit/errs"
	"gonum.org/v1/gonum/floats"
)

// Fit computes the least-squares line through the paired samples (x[i], y[i]).
//
// Parameters:
//   - x: Independent variable samples
//   - y: Dependent variable samples, same length as x
//
// Returns:
//   - slope, intercept: Parameters of y = slope·x + intercept
//   - err: errs.ErrEmptyInput, errs.ErrLengthMismatch, errs.ErrInsufficientSamples,
//     or errs.ErrDegenerateInput when all x values are identical
func Fit(x, y []float64) (slope, intercept float64, err error) {
	if err := checkPaired(x, y); err != nil {
		return 0, 0, err
	}
	if len(x) < 2 {
		return 0, 0, fmt.Errorf("%w: got %d", errs.ErrInsufficientSamples, len(x))
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		xi := x[i]
		yi := y[i]
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
	}

	if floats.Min(x) == floats.Max(x) {
		return 0, 0, fmt.Errorf("%w: all x values are identical", errs.ErrDegenerateInput)
	}
	denom := n*sumX2 - sumX*sumX
	if denom <= 0 {
		return 0, 0, fmt.Errorf("%w: x spread lost to floating-point cancellation (denominator %g)",
			errs.ErrDegenerateInput, denom)
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	return slope, intercept, nil
}

// Predict evaluates the line slope·x + intercept.
func Predict(x, slope, intercept float64) float64 {
	return slope*x + intercept
}

// PredictAll evaluates the line at every x and returns a new slice.
func PredictAll(x []float64, slope, intercept float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = Predict(xi, slope, intercept)
	}

	return out
}

func checkPaired(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d", errs.ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return errs.ErrEmptyInput
	}

	return nil
}

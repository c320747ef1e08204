package regression

import (
	"fmt"
	"math"
	"slices"
)

// Model is a fitted line together with its training samples and fit statistics.
//
// A Model is built once by FitModel and is not modified afterwards. Slices are
// owned by the Model and must be treated as read-only.
type Model struct {
	// Slope and Intercept define y = Slope·x + Intercept.
	Slope     float64
	Intercept float64
	// Metrics scores the fitted values against the training targets.
	Metrics Metrics
	// X and Actual are copies of the training samples.
	X      []float64
	Actual []float64
	// Fitted holds the model prediction at each X.
	Fitted []float64
	// Residuals holds Actual − Fitted.
	Residuals []float64
	// Formula is a human-readable form of the line.
	Formula string
}

// ComparisonRow compares one training sample with its prediction.
type ComparisonRow struct {
	X         float64
	Actual    float64
	Predicted float64
	// Error is Actual − Predicted.
	Error float64
	// ErrorPct is |Error/Actual|·100, or +Inf when Actual is zero and Error is not.
	ErrorPct float64
}

// FitModel fits x and y and evaluates the line on the training samples.
//
// It fails under the same conditions as Fit and Evaluate, including
// errs.ErrDegenerateInput when all y values are identical.
func FitModel(x, y []float64) (*Model, error) {
	slope, intercept, err := Fit(x, y)
	if err != nil {
		return nil, err
	}

	fitted := PredictAll(x, slope, intercept)
	metrics, err := Evaluate(y, fitted)
	if err != nil {
		return nil, err
	}

	residuals := make([]float64, len(y))
	residualsInto(residuals, y, fitted)

	return &Model{
		Slope:     slope,
		Intercept: intercept,
		Metrics:   metrics,
		X:         slices.Clone(x),
		Actual:    slices.Clone(y),
		Fitted:    fitted,
		Residuals: residuals,
		Formula:   formatLine(slope, intercept),
	}, nil
}

// Estimate predicts y at x.
func (m *Model) Estimate(x float64) float64 {
	return Predict(x, m.Slope, m.Intercept)
}

// Compare returns one row per training sample in input order.
func (m *Model) Compare() []ComparisonRow {
	rows := make([]ComparisonRow, len(m.X))
	for i := range m.X {
		rows[i] = ComparisonRow{
			X:         m.X[i],
			Actual:    m.Actual[i],
			Predicted: m.Fitted[i],
			Error:     m.Residuals[i],
			ErrorPct:  errorPercent(m.Residuals[i], m.Actual[i]),
		}
	}

	return rows
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Formula: %s, R²: %.4f, MSE: %.4f, MAE: %.4f}",
		m.Formula, m.Metrics.RSquared, m.Metrics.MSE, m.Metrics.MAE)
}

func formatLine(slope, intercept float64) string {
	return fmt.Sprintf("y = %.4fx + %.4f", slope, intercept)
}

func errorPercent(residual, actual float64) float64 {
	if actual == 0 {
		if residual == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return math.Abs(residual/actual) * 100
}

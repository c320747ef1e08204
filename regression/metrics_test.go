package regression

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arloliu/quadfit/errs"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_KnownValues(t *testing.T) {
	actual := []float64{1, 2, 3, 4}
	predicted := []float64{1.5, 2, 2.5, 5}
	// residuals: -0.5, 0, 0.5, -1 ; mean(actual) = 2.5 ; SS_tot = 5 ; SS_res = 1.5

	m, err := Evaluate(actual, predicted)
	require.NoError(t, err)
	require.InDelta(t, 1-1.5/5, m.RSquared, 1e-15)
	require.InDelta(t, 1.5/4, m.MSE, 1e-15)
	require.InDelta(t, 2.0/4, m.MAE, 1e-15)
	require.InDelta(t, math.Sqrt(1.5/4), m.RMSE, 1e-15)
}

func TestEvaluate_PerfectPrediction(t *testing.T) {
	actual := []float64{3, -1, 4, 1, 5}

	m, err := Evaluate(actual, actual)
	require.NoError(t, err)
	require.Equal(t, 1.0, m.RSquared)
	require.Zero(t, m.MSE)
	require.Zero(t, m.MAE)
}

func TestEvaluate_WorseThanMean(t *testing.T) {
	m, err := Evaluate([]float64{1, 2, 3}, []float64{3, 2, 1})
	require.NoError(t, err)
	require.Less(t, m.RSquared, 0.0)
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name              string
		actual, predicted []float64
		err               error
	}{
		{"empty", nil, nil, errs.ErrEmptyInput},
		{"length mismatch", []float64{1, 2}, []float64{1}, errs.ErrLengthMismatch},
		{"constant actual", []float64{5, 5, 5}, []float64{4, 5, 6}, errs.ErrDegenerateInput},
		{"constant fractional actual", []float64{0.1, 0.1, 0.1}, []float64{0.1, 0.1, 0.1}, errs.ErrDegenerateInput},
		{"single sample", []float64{5}, []float64{5}, errs.ErrDegenerateInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Evaluate(tt.actual, tt.predicted)
			require.ErrorIs(t, err, tt.err)
			require.Equal(t, Metrics{}, m)
		})
	}
}

func TestEvaluate_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(40)
		actual := make([]float64, n)
		predicted := make([]float64, n)
		for i := range actual {
			actual[i] = rng.NormFloat64() * 100
			predicted[i] = actual[i] + rng.NormFloat64()*float64(trial%10)
		}

		m, err := Evaluate(actual, predicted)
		require.NoError(t, err)
		require.GreaterOrEqual(t, m.MSE, 0.0)
		require.GreaterOrEqual(t, m.MAE, 0.0)
		require.LessOrEqual(t, m.RSquared, 1.0)
		// MAE never exceeds RMSE.
		require.LessOrEqual(t, m.MAE, m.RMSE+1e-12)
	}
}

func TestEvaluate_DoesNotModifyInputs(t *testing.T) {
	actual := []float64{1, 2, 3}
	predicted := []float64{1.1, 1.9, 3.2}

	_, err := Evaluate(actual, predicted)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, actual)
	require.Equal(t, []float64{1.1, 1.9, 3.2}, predicted)
}

func TestMetricsString(t *testing.T) {
	m := Metrics{RSquared: 0.5, MSE: 2, MAE: 1, RMSE: math.Sqrt2}
	require.Equal(t, "Metrics{R²: 0.500000, MSE: 2.0000, MAE: 1.0000, RMSE: 1.4142}", m.String())
}

func BenchmarkEvaluate(b *testing.B) {
	actual := make([]float64, 1000)
	predicted := make([]float64, 1000)
	for i := range actual {
		actual[i] = float64(i)
		predicted[i] = float64(i) + 0.5
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Evaluate(actual, predicted)
	}
}

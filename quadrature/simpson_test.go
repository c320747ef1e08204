package quadrature

import (
	"math"
	"strconv"
	"testing"

	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/internal/fixture"
	"github.com/stretchr/testify/require"
)

func TestIntegrate_DemoPolynomial(t *testing.T) {
	res, err := Integrate(fixture.Polynomial, 0, 4, 10)
	require.NoError(t, err)

	require.InDelta(t, 41.3333333333, res.Estimate, 1e-9)
	require.InDelta(t, 124.0/3, res.Estimate, 1e-12)
	require.InDelta(t, 0.4, res.H, 1e-15)
	require.Equal(t, 10, res.Segments)
	require.Len(t, res.Points, 11)
	require.Len(t, res.Values, 11)

	require.Equal(t, 0.0, res.Points[0])
	require.Equal(t, 4.0, res.Points[10])
	for i, x := range res.Points {
		require.InDelta(t, float64(i)*0.4, x, 1e-12)
		require.Equal(t, fixture.Polynomial(x), res.Values[i])
	}
}

func TestIntegrate_ExactForCubics(t *testing.T) {
	integrals := []fixture.Integral{fixture.Demo(), fixture.Constant(2.5), fixture.Constant(-7), fixture.Cubic()}

	for _, in := range integrals {
		for _, n := range []int{2, 4, 6, 10, 50, 128} {
			res, err := Integrate(in.F, in.A, in.B, n)
			require.NoError(t, err, in.Name)
			require.InDelta(t, in.Value, res.Estimate, 1e-10*math.Max(1, math.Abs(in.Value)), "%s n=%d", in.Name, n)
		}
	}
}

func TestIntegrate_NonPolynomialAccuracy(t *testing.T) {
	for _, in := range []fixture.Integral{fixture.Sin(), fixture.Exp()} {
		res, err := Integrate(in.F, in.A, in.B, 100)
		require.NoError(t, err)
		require.InDelta(t, in.Value, res.Estimate, 1e-8, in.Name)
	}
}

func TestIntegrate_InvalidSegmentCount(t *testing.T) {
	for _, n := range []int{5, 1, 0, -2, -3} {
		res, err := Integrate(fixture.Polynomial, 0, 4, n)
		require.ErrorIs(t, err, errs.ErrInvalidSegmentCount, "n=%d", n)
		require.Nil(t, res)
	}
}

func TestIntegrate_NilFunction(t *testing.T) {
	_, err := Integrate(nil, 0, 1, 2)
	require.ErrorIs(t, err, errs.ErrNilFunction)
}

func TestIntegrate_ReversedBounds(t *testing.T) {
	forward, err := Integrate(fixture.Polynomial, 0, 4, 10)
	require.NoError(t, err)
	backward, err := Integrate(fixture.Polynomial, 4, 0, 10)
	require.NoError(t, err)

	require.Less(t, backward.H, 0.0)
	require.InDelta(t, -forward.Estimate, backward.Estimate, 1e-12)
	require.Equal(t, 4.0, backward.Points[0])
	require.Equal(t, 0.0, backward.Points[10])
}

func TestIntegrate_EmptyInterval(t *testing.T) {
	res, err := Integrate(fixture.Polynomial, 2, 2, 4)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Estimate)
	require.Equal(t, 0.0, res.H)
}

func TestRule(t *testing.T) {
	t.Run("matches Integrate", func(t *testing.T) {
		res, err := Integrate(math.Sin, 0, math.Pi, 20)
		require.NoError(t, err)

		got, err := Rule(res.Values, res.H)
		require.NoError(t, err)
		require.Equal(t, res.Estimate, got)
	})

	t.Run("three samples", func(t *testing.T) {
		got, err := Rule([]float64{1, 4, 9}, 1)
		require.NoError(t, err)
		require.InDelta(t, (1+16+9)/3.0, got, 1e-15)
	})

	t.Run("rejects even sample counts", func(t *testing.T) {
		for _, values := range [][]float64{nil, {1}, {1, 2}, {1, 2, 3, 4}} {
			_, err := Rule(values, 0.5)
			require.ErrorIs(t, err, errs.ErrInvalidSegmentCount, "len=%d", len(values))
		}
	})
}

func TestResultWeights(t *testing.T) {
	res, err := Integrate(fixture.Polynomial, 0, 4, 10)
	require.NoError(t, err)

	require.Equal(t, []int{1, 4, 2, 4, 2, 4, 2, 4, 2, 4, 1}, res.Weights())
	require.Equal(t, 1, res.Weight(0))
	require.Equal(t, 4, res.Weight(1))
	require.Equal(t, 2, res.Weight(2))
	require.Equal(t, 1, res.Weight(10))
	require.Equal(t, 0, res.Weight(-1))
	require.Equal(t, 0, res.Weight(11))

	sum := 0
	for _, w := range res.Weights() {
		sum += w
	}
	// Weights sum to 3n, which makes the rule exact for constants.
	require.Equal(t, 3*res.Segments, sum)
}

func TestResultString(t *testing.T) {
	res, err := Integrate(fixture.Polynomial, 0, 4, 10)
	require.NoError(t, err)
	require.Equal(t, "Result{Estimate: 41.3333333333, Segments: 10, H: 0.4000}", res.String())
}

func BenchmarkIntegrate(b *testing.B) {
	for _, n := range []int{10, 200, 10000} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Integrate(fixture.Polynomial, 0, 4, n)
			}
		})
	}
}

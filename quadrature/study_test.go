package quadrature

import (
	"math"
	"testing"

	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/internal/fixture"
	"github.com/stretchr/testify/require"
)

func TestStudy_Defaults(t *testing.T) {
	exact := fixture.Exact(0, 4)
	rows, err := Study(fixture.Polynomial, 0, 4, exact)
	require.NoError(t, err)
	require.Len(t, rows, len(DefaultSegmentCounts()))

	for i, row := range rows {
		require.Equal(t, DefaultSegmentCounts()[i], row.Segments)
		require.InDelta(t, exact, row.Estimate, 1e-9)
		// x²+2x+1 is integrated exactly, so only rounding noise remains.
		require.Less(t, row.AbsError, 1e-9)
		require.GreaterOrEqual(t, row.AbsError, 0.0)
		require.InDelta(t, row.AbsError/exact*100, row.RelError, 1e-15)
	}
}

func TestDefaultSegmentCounts_ReturnsCopy(t *testing.T) {
	counts := DefaultSegmentCounts()
	require.Equal(t, []int{4, 10, 20, 50, 100, 200}, counts)

	counts[0] = 3
	require.Equal(t, 4, DefaultSegmentCounts()[0])

	rows, err := Study(fixture.Polynomial, 0, 4, fixture.Exact(0, 4))
	require.NoError(t, err)
	require.Equal(t, 4, rows[0].Segments)
}

func TestStudy_ErrorShrinksWithSegments(t *testing.T) {
	for _, in := range []fixture.Integral{fixture.Sin(), fixture.Exp()} {
		rows, err := Study(in.F, in.A, in.B, in.Value)
		require.NoError(t, err)

		for i := 1; i < len(rows); i++ {
			require.Less(t, rows[i].AbsError, rows[i-1].AbsError,
				"%s: error at n=%d should be below n=%d", in.Name, rows[i].Segments, rows[i-1].Segments)
		}
	}
}

func TestStudy_FourthOrderConvergence(t *testing.T) {
	in := fixture.Exp()
	rows, err := Study(in.F, in.A, in.B, in.Value, WithSegmentCounts(10, 20))
	require.NoError(t, err)

	// Halving h should cut the error by roughly 2⁴.
	ratio := rows[0].AbsError / rows[1].AbsError
	require.InDelta(t, 16, ratio, 0.5)
}

func TestStudy_Options(t *testing.T) {
	t.Run("custom counts keep order", func(t *testing.T) {
		counts := []int{20, 2, 8}
		rows, err := Study(fixture.Polynomial, 0, 4, fixture.Exact(0, 4), WithSegmentCounts(counts...))
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for i, row := range rows {
			require.Equal(t, counts[i], row.Segments)
		}

		// The option keeps its own copy.
		counts[0] = 7
		require.Equal(t, 20, rows[0].Segments)
	})

	t.Run("empty counts rejected", func(t *testing.T) {
		_, err := Study(fixture.Polynomial, 0, 4, 1, WithSegmentCounts())
		require.ErrorIs(t, err, errs.ErrNoSegmentCounts)
	})

	t.Run("invalid count fails the study", func(t *testing.T) {
		rows, err := Study(fixture.Polynomial, 0, 4, 1, WithSegmentCounts(4, 5, 10))
		require.ErrorIs(t, err, errs.ErrInvalidSegmentCount)
		require.Contains(t, err.Error(), "n=5")
		require.Nil(t, rows)
	})
}

func TestRelativeError(t *testing.T) {
	require.Equal(t, 0.0, relativeError(0, 0))
	require.True(t, math.IsInf(relativeError(1e-3, 0), 1))
	require.InDelta(t, 10, relativeError(1, 10), 1e-15)
	require.InDelta(t, 10, relativeError(1, -10), 1e-15)
}

func TestResult_Compare(t *testing.T) {
	res, err := Integrate(fixture.Polynomial, 0, 4, 10)
	require.NoError(t, err)

	row := res.Compare(fixture.Exact(0, 4))
	require.Equal(t, 10, row.Segments)
	require.Equal(t, res.Estimate, row.Estimate)
	require.InDelta(t, 0, row.AbsError, 1e-12)
	require.InDelta(t, 0, row.RelError, 1e-10)

	row = res.Compare(40)
	require.InDelta(t, 40-124.0/3, row.AbsError, 1e-12)
	require.InDelta(t, (40-124.0/3)/40*100, row.RelError, 1e-10)
}

package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/arloliu/quadfit/errs"
	"github.com/stretchr/testify/require"
)

func TestHousePrices(t *testing.T) {
	s := HousePrices()
	require.NoError(t, s.Validate())
	require.Equal(t, 16, s.Len())
	require.Equal(t, 30.0, s.X[0])
	require.Equal(t, 850.0, s.Y[15])

	// Each call returns an independent copy.
	s.X[0] = -1
	require.Equal(t, 30.0, HousePrices().X[0])
}

func TestSeriesValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Series
		err  error
	}{
		{"valid", Series{X: []float64{1, 2}, Y: []float64{3, 4}}, nil},
		{"length mismatch", Series{X: []float64{1, 2}, Y: []float64{3}}, errs.ErrLengthMismatch},
		{"empty", Series{}, errs.ErrEmptyInput},
		{"nan", Series{X: []float64{1, math.NaN()}, Y: []float64{3, 4}}, errs.ErrNonFiniteSample},
		{"inf", Series{X: []float64{1, 2}, Y: []float64{math.Inf(-1), 4}}, errs.ErrNonFiniteSample},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSeriesID(t *testing.T) {
	a := HousePrices()
	b := HousePrices()
	require.Equal(t, a.ID(), b.ID())

	b.XLabel = "area"
	require.Equal(t, a.ID(), b.ID(), "labels do not change the fingerprint")

	b.Y[3]++
	require.NotEqual(t, a.ID(), b.ID())

	c := HousePrices()
	c.Name = "other"
	require.NotEqual(t, a.ID(), c.ID())
}

func TestLoadYAML(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc := "name: tiny\nx_label: a\ny_label: b\nx: [1, 2, 3]\ny: [2, 4.5, 6]\n"
		s, err := LoadYAML(strings.NewReader(doc))
		require.NoError(t, err)
		require.Equal(t, "tiny", s.Name)
		require.Equal(t, "a", s.XLabel)
		require.Equal(t, []float64{1, 2, 3}, s.X)
		require.Equal(t, []float64{2, 4.5, 6}, s.Y)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader(""))
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("x: [1]\ny: [2]\nz: [3]\n"))
		require.Error(t, err)
	})

	t.Run("mismatched columns", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("x: [1, 2]\ny: [2]\n"))
		require.ErrorIs(t, err, errs.ErrLengthMismatch)
	})

	t.Run("non-finite value", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("x: [1, .nan]\ny: [2, 3]\n"))
		require.ErrorIs(t, err, errs.ErrNonFiniteSample)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("x: [1, 2\n"))
		require.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("houses", func(t *testing.T) {
		s, err := LoadFile("testdata/houses.yaml")
		require.NoError(t, err)
		require.Equal(t, HousePrices().ID(), s.ID())
		require.Equal(t, "Luas Rumah (m²)", s.XLabel)
	})

	t.Run("name defaults to path", func(t *testing.T) {
		s, err := LoadFile("testdata/unnamed.yaml")
		require.NoError(t, err)
		require.Equal(t, "testdata/unnamed.yaml", s.Name)
		require.Equal(t, 3, s.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/does-not-exist.yaml")
		require.Error(t, err)
	})
}

func TestDescribe(t *testing.T) {
	x, y, err := HousePrices().Describe()
	require.NoError(t, err)

	require.Equal(t, 16, x.Count)
	require.InDelta(t, 83.75, x.Mean, 1e-12)
	require.InDelta(t, 77.5, x.Median, 1e-12)
	require.Equal(t, 30.0, x.Min)
	require.Equal(t, 150.0, x.Max)
	require.LessOrEqual(t, x.Q25, x.Median)
	require.GreaterOrEqual(t, x.Q75, x.Median)
	require.Greater(t, x.StdDev, 0.0)

	require.Equal(t, 16, y.Count)
	require.Equal(t, 120.0, y.Min)
	require.Equal(t, 850.0, y.Max)
}

func TestDescribe_SingleSample(t *testing.T) {
	s := &Series{Name: "one", X: []float64{2}, Y: []float64{5}}

	x, y, err := s.Describe()
	require.NoError(t, err)
	require.Equal(t, 1, x.Count)
	require.Equal(t, 2.0, x.Mean)
	require.Equal(t, 5.0, y.Median)
	require.Zero(t, x.StdDev)
}

func TestDescribe_Invalid(t *testing.T) {
	_, _, err := (&Series{Name: "empty"}).Describe()
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}

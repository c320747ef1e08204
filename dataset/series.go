// Package dataset holds paired sample series for the linear fit demos and loads them
// from YAML files.
package dataset

import (
	"fmt"
	"math"

	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/internal/hash"
)

// Series is an ordered sequence of x values paired positionally with y values.
type Series struct {
	Name   string    `yaml:"name" json:"name"`
	XLabel string    `yaml:"x_label" json:"x_label"`
	YLabel string    `yaml:"y_label" json:"y_label"`
	X      []float64 `yaml:"x" json:"x"`
	Y      []float64 `yaml:"y" json:"y"`
}

// Len returns the number of sample pairs.
func (s *Series) Len() int {
	return len(s.X)
}

// Validate checks that X and Y are non-empty, of equal length and finite.
func (s *Series) Validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("series %q: %w: %d x vs %d y", s.Name, errs.ErrLengthMismatch, len(s.X), len(s.Y))
	}
	if len(s.X) == 0 {
		return fmt.Errorf("series %q: %w", s.Name, errs.ErrEmptyInput)
	}
	for i := range s.X {
		if !isFinite(s.X[i]) || !isFinite(s.Y[i]) {
			return fmt.Errorf("series %q: sample %d: %w", s.Name, i, errs.ErrNonFiniteSample)
		}
	}

	return nil
}

// ID returns an xxHash64 fingerprint of the series name and values. Labels do not
// contribute, so relabelling a series keeps its ID.
func (s *Series) ID() uint64 {
	return hash.Columns(s.Name, s.X, s.Y)
}

// HousePrices returns the built-in dataset of simulated Jakarta house prices:
// floor area in m² (Luas_m2) against price in millions of rupiah (Harga_Juta).
func HousePrices() *Series {
	return &Series{
		Name:   "harga-rumah",
		XLabel: "Luas Rumah (m²)",
		YLabel: "Harga (juta Rp)",
		X:      []float64{30, 36, 45, 50, 54, 60, 70, 75, 80, 90, 100, 110, 120, 130, 140, 150},
		Y:      []float64{120, 150, 200, 220, 250, 280, 340, 370, 400, 460, 520, 580, 650, 710, 780, 850},
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

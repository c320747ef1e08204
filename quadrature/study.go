package quadrature

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/internal/options"
)

var defaultSegmentCounts = []int{4, 10, 20, 50, 100, 200}

// DefaultSegmentCounts returns the segment counts used by Study when none are
// configured. The caller owns the returned slice.
func DefaultSegmentCounts() []int {
	return slices.Clone(defaultSegmentCounts)
}

// ConvergenceRow is the outcome of one Simpson run in a convergence study.
type ConvergenceRow struct {
	Segments int
	Estimate float64
	AbsError float64
	// RelError is the absolute error as a percentage of |exact|.
	RelError float64
}

type studyConfig struct {
	segments []int
}

// StudyOption configures a convergence study.
type StudyOption = options.Option[*studyConfig]

// WithSegmentCounts sets the segment counts to evaluate, in the order given.
// An empty list is rejected.
func WithSegmentCounts(ns ...int) StudyOption {
	return options.New(func(cfg *studyConfig) error {
		if len(ns) == 0 {
			return errs.ErrNoSegmentCounts
		}
		cfg.segments = slices.Clone(ns)

		return nil
	})
}

// Study integrates f over [lower, upper] once per configured segment count and
// compares each estimate to exact.
//
// Every segment count must be valid; the first invalid one fails the whole study
// with errs.ErrInvalidSegmentCount.
//
// Example:
//
//	rows, err := quadrature.Study(f, 0, 4, 124.0/3)
//	for _, row := range rows {
//	    fmt.Printf("%5d %18.10f %18.10e\n", row.Segments, row.Estimate, row.AbsError)
//	}
func Study(f Func, lower, upper, exact float64, opts ...StudyOption) ([]ConvergenceRow, error) {
	cfg := &studyConfig{segments: defaultSegmentCounts}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	rows := make([]ConvergenceRow, 0, len(cfg.segments))
	for _, n := range cfg.segments {
		res, err := Integrate(f, lower, upper, n)
		if err != nil {
			return nil, fmt.Errorf("convergence study at n=%d: %w", n, err)
		}

		rows = append(rows, res.Compare(exact))
	}

	return rows, nil
}

// Compare scores the estimate against a known exact value.
func (r *Result) Compare(exact float64) ConvergenceRow {
	abs := math.Abs(exact - r.Estimate)

	return ConvergenceRow{
		Segments: r.Segments,
		Estimate: r.Estimate,
		AbsError: abs,
		RelError: relativeError(abs, exact),
	}
}

func relativeError(abs, exact float64) float64 {
	if exact == 0 {
		if abs == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return abs / math.Abs(exact) * 100
}

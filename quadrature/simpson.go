package quadrature

import (
	"fmt"

	"github.com/arloliu/quadfit/errs"
	"gonum.org/v1/gonum/floats"
)

// Func is a scalar integrand. It must be free of side effects for Integrate to be
// deterministic.
type Func func(x float64) float64

// Result is the outcome of a single Simpson integration.
//
// Points and Values are owned by the Result and must be treated as read-only.
type Result struct {
	// Estimate is the approximate definite integral.
	Estimate float64
	// Points holds the n+1 equally spaced sample points x₀ … xₙ.
	Points []float64
	// Values holds f evaluated at each point.
	Values []float64
	// H is the segment width (upper-lower)/n.
	H float64
	// Segments is the segment count n.
	Segments int
}

// Integrate estimates ∫[lower, upper] f(x)dx with the composite Simpson's 1/3 rule
// over n equal segments.
//
// Parameters:
//   - f: Integrand
//   - lower, upper: Integration bounds; their order is not enforced
//   - n: Segment count, must be positive and even
//
// Returns:
//   - *Result: Estimate together with the sample points, values and width
//   - error: errs.ErrInvalidSegmentCount for a bad n, errs.ErrNilFunction for a nil f
func Integrate(f Func, lower, upper float64, n int) (*Result, error) {
	if f == nil {
		return nil, errs.ErrNilFunction
	}
	if err := validateSegments(n); err != nil {
		return nil, err
	}

	h := (upper - lower) / float64(n)

	points := make([]float64, n+1)
	floats.Span(points, lower, upper)
	points[n] = upper

	values := make([]float64, n+1)
	for i, x := range points {
		values[i] = f(x)
	}

	estimate, err := Rule(values, h)
	if err != nil {
		return nil, err
	}

	return &Result{
		Estimate: estimate,
		Points:   points,
		Values:   values,
		H:        h,
		Segments: n,
	}, nil
}

// Rule applies the composite Simpson's 1/3 rule to precomputed samples spaced h apart.
//
// values must hold n+1 samples for a positive even n, i.e. an odd length of at least 3.
func Rule(values []float64, h float64) (float64, error) {
	if err := validateSegments(len(values) - 1); err != nil {
		return 0, err
	}

	return weightedSum(values) * h / 3, nil
}

// Weight returns the Simpson coefficient applied to sample i:
// 1 for the end points, 4 for odd indexes and 2 for even interior indexes.
// It returns 0 for an index outside the sample range.
func (r *Result) Weight(i int) int {
	return weight(i, r.Segments)
}

// Weights returns the Simpson coefficient of every sample in order.
func (r *Result) Weights() []int {
	out := make([]int, r.Segments+1)
	for i := range out {
		out[i] = weight(i, r.Segments)
	}

	return out
}

// String returns a short summary of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{Estimate: %.10f, Segments: %d, H: %.4f}", r.Estimate, r.Segments, r.H)
}

func weight(i, n int) int {
	switch {
	case i < 0 || i > n:
		return 0
	case i == 0 || i == n:
		return 1
	case i%2 == 1:
		return 4
	default:
		return 2
	}
}

// weightedSum accumulates y₀ + yₙ + 4Σ(odd) + 2Σ(even interior) in ascending index order.
func weightedSum(values []float64) float64 {
	n := len(values) - 1
	sum := values[0] + values[n]
	for i := 1; i < n; i += 2 {
		sum += 4 * values[i]
	}
	for i := 2; i < n; i += 2 {
		sum += 2 * values[i]
	}

	return sum
}

func validateSegments(n int) error {
	if n <= 0 || n%2 != 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidSegmentCount, n)
	}

	return nil
}

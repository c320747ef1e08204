// Package quadrature estimates definite integrals with the composite Simpson's 1/3 rule.
//
// The interval [lower, upper] is split into n equal segments, where n must be a
// positive even number. The integrand is sampled at the n+1 partition points and the
// samples are combined with the Simpson weights 1, 4, 2, 4, ..., 2, 4, 1:
//
//	∫[a,b] f(x)dx ≈ (h/3)[f(x₀) + 4f(x₁) + 2f(x₂) + 4f(x₃) + ... + f(xₙ)],  h = (b-a)/n
//
// The rule is exact for polynomials up to degree three. For other smooth integrands
// the error shrinks as O(h⁴); accuracy is controlled entirely by the caller's choice
// of n. There is no adaptive refinement.
//
// # Basic Usage
//
//	res, err := quadrature.Integrate(func(x float64) float64 { return x*x + 2*x + 1 }, 0, 4, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.10f\n", res.Estimate) // 41.3333333333
//
// The Result also carries the sample points, the function values and the segment
// width so that reports and charts can show how the estimate was built.
//
// # Convergence
//
// Study runs Integrate for a list of segment counts against a known exact value and
// reports absolute and relative errors for each:
//
//	rows, err := quadrature.Study(f, 0, 4, exact, quadrature.WithSegmentCounts(4, 10, 20))
//
// # Errors
//
// An odd, zero or negative segment count fails with errs.ErrInvalidSegmentCount.
// Bound ordering is not checked: with lower > upper the width h is negative and the
// estimate changes sign accordingly.
package quadrature

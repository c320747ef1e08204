package quadrature

// Parabola is the quadratic p(x) = A·x² + B·x + C through three consecutive samples
// (x₂ₖ, x₂ₖ₊₁, x₂ₖ₊₂). Simpson's rule integrates each such parabola exactly, so the
// areas of all parabolas of a Result add up to its Estimate.
type Parabola struct {
	A, B, C float64
	// From and To are the outer sample points of the segment pair.
	From, To float64
}

// At evaluates the parabola at x.
func (p Parabola) At(x float64) float64 {
	return (p.A*x+p.B)*x + p.C
}

// Integral returns the exact area under the parabola over [From, To].
func (p Parabola) Integral() float64 {
	return p.antiderivative(p.To) - p.antiderivative(p.From)
}

func (p Parabola) antiderivative(x float64) float64 {
	return ((p.A/3*x+p.B/2)*x + p.C) * x
}

// Parabolas returns the n/2 interpolating parabolas of the result, one for each pair
// of adjacent segments, in ascending order.
func (r *Result) Parabolas() []Parabola {
	out := make([]Parabola, 0, r.Segments/2)
	for k := 0; k+2 < len(r.Points); k += 2 {
		out = append(out, fitParabola(
			r.Points[k], r.Points[k+1], r.Points[k+2],
			r.Values[k], r.Values[k+1], r.Values[k+2],
		))
	}

	return out
}

// fitParabola builds the Newton form y₀ + d₁(x-x₀) + A(x-x₀)(x-x₁) and expands it.
// A zero-width pair has no curvature to recover and yields the flat parabola y₀.
func fitParabola(x0, x1, x2, y0, y1, y2 float64) Parabola {
	if x2 == x0 || x1 == x0 || x2 == x1 {
		return Parabola{C: y0, From: x0, To: x2}
	}

	d1 := (y1 - y0) / (x1 - x0)
	d2 := (y2 - y1) / (x2 - x1)
	a := (d2 - d1) / (x2 - x0)

	return Parabola{
		A:    a,
		B:    d1 - a*(x0+x1),
		C:    y0 - d1*x0 + a*x0*x1,
		From: x0,
		To:   x2,
	}
}

package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/quadrature"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultSimpsonFile is the conventional output name of RenderSimpson.
const DefaultSimpsonFile = "hasil_simpson_integrasi.png"

const (
	// smoothSamples is the number of points used to draw the integrand curve.
	smoothSamples = 1000
	// parabolaSamples is the number of points used to draw each Simpson parabola.
	parabolaSamples = 50
	// minLogError replaces zero errors on the log-scale convergence panel.
	minLogError = 1e-16
)

// SimpsonFigure holds what RenderSimpson draws.
type SimpsonFigure struct {
	// Label is the legend text of the integrand.
	Label  string
	F      quadrature.Func
	Result *quadrature.Result
	// Study drives the convergence panel. The panel is omitted when Study is empty.
	Study []quadrature.ConvergenceRow
}

// RenderSimpson saves the Simpson figure to path as PNG. The default size is 16×10 inches.
func RenderSimpson(path string, fig SimpsonFigure, opts ...Option) error {
	if fig.F == nil {
		return errs.ErrNilFunction
	}
	if fig.Result == nil {
		return fmt.Errorf("simpson figure: %w", errs.ErrEmptyInput)
	}

	cfg, err := newConfig(16*vg.Inch, 10*vg.Inch, opts)
	if err != nil {
		return err
	}

	builders := []func(SimpsonFigure, *config) (*plot.Plot, error){
		functionPanel,
		segmentationPanel,
	}
	if len(fig.Study) > 0 {
		builders = append(builders, convergencePanel)
	}
	builders = append(builders, coefficientPanel)

	plots := make([]*plot.Plot, len(builders))
	for i, build := range builders {
		if plots[i], err = build(fig, cfg); err != nil {
			return fmt.Errorf("simpson figure panel %d: %w", i+1, err)
		}
	}

	rows, cols := 2, 2
	if len(plots) == 3 {
		rows, cols = 1, 3
	}

	return writePNG(path, cfg, rows, cols, plots)
}

// smoothCurve samples f densely over the integration interval.
func smoothCurve(fig SimpsonFigure) plotter.XYs {
	pts := fig.Result.Points
	x := make([]float64, smoothSamples)
	floats.Span(x, pts[0], pts[len(pts)-1])

	curve := make(plotter.XYs, len(x))
	for i, v := range x {
		curve[i] = plotter.XY{X: v, Y: fig.F(v)}
	}

	return curve
}

func functionPanel(fig SimpsonFigure, cfg *config) (*plot.Plot, error) {
	p := newPanel("Fungsi dan Area Integrasi", "x", "f(x)")
	curve := smoothCurve(fig)

	area, err := newArea(curve, colorCyan)
	if err != nil {
		return nil, err
	}
	line, err := newLine(curve, colorBlue, vg.Points(2.5), false)
	if err != nil {
		return nil, err
	}
	points, err := newScatter(xys(fig.Result.Points, fig.Result.Values), colorRed, vg.Points(4), draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}

	p.Add(area, line, points)
	addLegend(p, cfg, fig.Label, line)
	addLegend(p, cfg, "Area yang dihitung", area)

	return p, nil
}

func segmentationPanel(fig SimpsonFigure, cfg *config) (*plot.Plot, error) {
	p := newPanel(fmt.Sprintf("Segmentasi Simpson 1/3 (n=%d)", fig.Result.Segments), "x", "f(x)")

	orig, err := newLine(smoothCurve(fig), colorFaint, vg.Points(2), false)
	if err != nil {
		return nil, err
	}
	p.Add(orig)
	addLegend(p, cfg, "Fungsi Asli", orig)

	pts, vals := fig.Result.Points, fig.Result.Values
	for i, para := range fig.Result.Parabolas() {
		c := plotutil.Color(i)

		x := make([]float64, parabolaSamples)
		floats.Span(x, para.From, para.To)
		curve := make(plotter.XYs, len(x))
		for j, v := range x {
			curve[j] = plotter.XY{X: v, Y: para.At(v)}
		}

		area, err := newArea(curve, fade(c, 128))
		if err != nil {
			return nil, err
		}
		knots := xys(pts[2*i:2*i+3], vals[2*i:2*i+3])
		chord, err := newLine(knots, c, vg.Points(2), false)
		if err != nil {
			return nil, err
		}
		marks, err := newScatter(knots, c, vg.Points(4), draw.CircleGlyph{})
		if err != nil {
			return nil, err
		}
		p.Add(area, chord, marks)
	}

	return p, nil
}

func convergencePanel(fig SimpsonFigure, cfg *config) (*plot.Plot, error) {
	p := newPanel("Konvergensi Metode Simpson", "Jumlah Segmen (n)", "Error Absolut (log scale)")
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	data := make(plotter.XYs, len(fig.Study))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, row := range fig.Study {
		e := math.Max(row.AbsError, minLogError)
		data[i] = plotter.XY{X: float64(row.Segments), Y: e}
		lo, hi = math.Min(lo, e), math.Max(hi, e)
	}

	line, err := newLine(data, colorRed, vg.Points(2), false)
	if err != nil {
		return nil, err
	}
	marks, err := newScatter(data, colorRed, vg.Points(5), draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}
	p.Add(line, marks)
	addLegend(p, cfg, "Error absolut", line, marks)

	// A log axis needs a positive, non-empty range.
	p.Y.Min, p.Y.Max = lo/10, hi*10

	return p, nil
}

func coefficientPanel(fig SimpsonFigure, cfg *config) (*plot.Plot, error) {
	p := newPanel("Titik Evaluasi dan Koefisien", "x", "f(x)")

	orig, err := newLine(smoothCurve(fig), fade(colorBlue, 77), vg.Points(1), false)
	if err != nil {
		return nil, err
	}
	p.Add(orig)

	groups := []struct {
		weight int
		label  string
		fill   color.Color
	}{
		{1, "Awal/Akhir (×1)", colorGreen},
		{4, "Ganjil (×4)", colorRed},
		{2, "Genap (×2)", colorBlue},
	}
	for _, g := range groups {
		var data plotter.XYs
		for i, x := range fig.Result.Points {
			if fig.Result.Weight(i) == g.weight {
				data = append(data, plotter.XY{X: x, Y: fig.Result.Values[i]})
			}
		}
		if len(data) == 0 {
			continue
		}

		marks, err := newScatter(data, g.fill, vg.Points(6), draw.CircleGlyph{})
		if err != nil {
			return nil, err
		}
		p.Add(marks)
		addLegend(p, cfg, g.label, marks)
	}

	return p, nil
}

package chart

import (
	"fmt"

	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/regression"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultRegressionFile is the conventional output name of RenderRegression.
const DefaultRegressionFile = "hasil_regresi_rumah.png"

// RegressionFigure holds what RenderRegression draws.
type RegressionFigure struct {
	Title  string
	XLabel string
	YLabel string
	Model  *regression.Model
	// Highlights are new inputs whose predictions are marked on the fit panel.
	Highlights []float64
}

// RenderRegression saves the regression figure to path as PNG. The default size is
// 14×5 inches.
func RenderRegression(path string, fig RegressionFigure, opts ...Option) error {
	if fig.Model == nil || len(fig.Model.X) == 0 {
		return fmt.Errorf("regression figure: %w", errs.ErrEmptyInput)
	}

	cfg, err := newConfig(14*vg.Inch, 5*vg.Inch, opts)
	if err != nil {
		return err
	}

	builders := []func(RegressionFigure, *config) (*plot.Plot, error){
		fitPanel,
		residualPanel,
		actualPanel,
	}
	plots := make([]*plot.Plot, len(builders))
	for i, build := range builders {
		if plots[i], err = build(fig, cfg); err != nil {
			return fmt.Errorf("regression figure panel %d: %w", i+1, err)
		}
	}

	return writePNG(path, cfg, 1, len(plots), plots)
}

func fitPanel(fig RegressionFigure, cfg *config) (*plot.Plot, error) {
	m := fig.Model
	title := "Regresi Linear"
	if fig.Title != "" {
		title += ": " + fig.Title
	}
	p := newPanel(title, fig.XLabel, fig.YLabel)

	samples, err := newScatter(xys(m.X, m.Actual), fade(colorBlue, 153), vg.Points(5), draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}

	lo, hi := floats.Min(m.X), floats.Max(m.X)
	fit, err := newLine(plotter.XYs{
		{X: lo, Y: m.Estimate(lo)},
		{X: hi, Y: m.Estimate(hi)},
	}, colorRed, vg.Points(2.5), false)
	if err != nil {
		return nil, err
	}

	p.Add(samples, fit)
	addLegend(p, cfg, "Data Aktual", samples)
	addLegend(p, cfg, fmt.Sprintf("y = %.2fx + %.2f", m.Slope, m.Intercept), fit)

	for _, x := range fig.Highlights {
		y := m.Estimate(x)
		star, err := newScatter(plotter.XYs{{X: x, Y: y}}, colorGreen, vg.Points(9), draw.PyramidGlyph{})
		if err != nil {
			return nil, err
		}
		p.Add(star)
		addLegend(p, cfg, fmt.Sprintf("Prediksi: %g = %.0f", x, y), star)
	}

	return p, nil
}

func residualPanel(fig RegressionFigure, cfg *config) (*plot.Plot, error) {
	m := fig.Model
	p := newPanel("Analisis Residual", "Nilai Prediksi", "Residual (Error)")

	marks, err := newScatter(xys(m.Fitted, m.Residuals), fade(colorPurple, 153), vg.Points(5), draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.LineStyle.Color = colorRed
	zero.LineStyle.Width = vg.Points(2)
	zero.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(4)}

	p.Add(marks, zero)
	addLegend(p, cfg, "Residual", marks)

	return p, nil
}

func actualPanel(fig RegressionFigure, cfg *config) (*plot.Plot, error) {
	m := fig.Model
	p := newPanel(fmt.Sprintf("Aktual vs Prediksi (R²=%.3f)", m.Metrics.RSquared), "Aktual", "Prediksi")

	marks, err := newScatter(xys(m.Actual, m.Fitted), fade(colorOrange, 153), vg.Points(5), draw.CircleGlyph{})
	if err != nil {
		return nil, err
	}

	lo, hi := floats.Min(m.Actual), floats.Max(m.Actual)
	identity, err := newLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}}, colorRed, vg.Points(2), true)
	if err != nil {
		return nil, err
	}

	p.Add(marks, identity)
	addLegend(p, cfg, "Perfect Prediction", identity)

	return p, nil
}

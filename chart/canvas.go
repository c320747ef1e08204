package chart

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Colours shared by the panels.
var (
	colorBlue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colorRed    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colorGreen  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	colorPurple = color.RGBA{R: 148, G: 103, B: 189, A: 255}
	colorOrange = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	colorCyan   = color.NRGBA{R: 0, G: 200, B: 200, A: 77}
	colorFaint  = color.NRGBA{R: 31, G: 119, B: 180, A: 102}
)

// writePNG lays plots out on a rows×cols grid and saves the figure to path.
func writePNG(path string, cfg *config, rows, cols int, plots []*plot.Plot) (err error) {
	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = plots[r*cols : (r+1)*cols]
	}

	img := vgimg.NewWith(vgimg.UseWH(cfg.width, cfg.height), vgimg.UseDPI(cfg.dpi))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		for c, p := range grid[r] {
			p.Draw(canvases[r][c])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create figure: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close figure: %w", cerr)
		}
	}()

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return fmt.Errorf("write figure %s: %w", path, err)
	}

	return nil
}

func newPanel(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	return p
}

// addLegend adds an entry unless legends are disabled.
func addLegend(p *plot.Plot, cfg *config, name string, things ...plot.Thumbnailer) {
	if cfg.legend {
		p.Legend.Add(name, things...)
	}
}

func newLine(xys plotter.XYs, c color.Color, width vg.Length, dashed bool) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = width
	if dashed {
		l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(4)}
	}

	return l, nil
}

func newScatter(xys plotter.XYs, c color.Color, radius vg.Length, shape draw.GlyphDrawer) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = radius
	s.GlyphStyle.Shape = shape

	return s, nil
}

// newArea returns the polygon between the curve and y = 0.
func newArea(curve plotter.XYs, fill color.Color) (*plotter.Polygon, error) {
	ring := make(plotter.XYs, 0, len(curve)+2)
	ring = append(ring, plotter.XY{X: curve[0].X, Y: 0})
	ring = append(ring, curve...)
	ring = append(ring, plotter.XY{X: curve[len(curve)-1].X, Y: 0})

	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	poly.LineStyle.Width = 0

	return poly, nil
}

func xys(x, y []float64) plotter.XYs {
	out := make(plotter.XYs, len(x))
	for i := range x {
		out[i] = plotter.XY{X: x[i], Y: y[i]}
	}

	return out
}

// fade returns c with the given alpha.
func fade(c color.Color, alpha uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = alpha

	return n
}

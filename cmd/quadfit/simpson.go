package main

import (
	"fmt"
	"path/filepath"

	"github.com/arloliu/quadfit/chart"
	"github.com/arloliu/quadfit/internal/fixture"
	"github.com/arloliu/quadfit/quadrature"
	"github.com/arloliu/quadfit/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSimpsonCmd(a *app) *cobra.Command {
	var lower, upper float64
	var segments int
	var study []int
	var noStudy bool

	cmd := &cobra.Command{
		Use:   "simpson",
		Short: "Integrate f(x) = x² + 2x + 1 with the composite Simpson 1/3 rule",
		Long: `Integrate f(x) = x² + 2x + 1 with the composite Simpson 1/3 rule, compare the
estimate with the analytic value and study convergence over several segment counts.

Example: quadfit simpson --lower 0 --upper 4 --segments 10 --study 4,10,20,50,100,200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noStudy {
				study = nil
			}

			return a.runSimpson(cmd, lower, upper, segments, study)
		},
	}

	cmd.Flags().Float64Var(&lower, "lower", 0, "Lower integration bound")
	cmd.Flags().Float64Var(&upper, "upper", 4, "Upper integration bound")
	cmd.Flags().IntVar(&segments, "segments", 10, "Number of segments, must be positive and even")
	cmd.Flags().IntSliceVar(&study, "study", quadrature.DefaultSegmentCounts(), "Segment counts for the convergence study")
	cmd.Flags().BoolVar(&noStudy, "no-study", false, "Skip the convergence study")

	return cmd
}

func (a *app) runSimpson(cmd *cobra.Command, lower, upper float64, segments int, study []int) error {
	res, err := quadrature.Integrate(fixture.Polynomial, lower, upper, segments)
	if err != nil {
		return fmt.Errorf("simpson: %w", err)
	}
	exact := fixture.Exact(lower, upper)

	var rows []quadrature.ConvergenceRow
	if len(study) > 0 {
		if rows, err = quadrature.Study(fixture.Polynomial, lower, upper, exact, quadrature.WithSegmentCounts(study...)); err != nil {
			return fmt.Errorf("simpson: %w", err)
		}
	}

	a.logger.Debug("Simpson integration finished",
		zap.Float64("lower", lower),
		zap.Float64("upper", upper),
		zap.Int("segments", segments),
		zap.Float64("estimate", res.Estimate),
	)

	rep := report.SimpsonReport{
		Label:  fixture.PolynomialLabel,
		Lower:  lower,
		Upper:  upper,
		Result: res,
		Exact:  exact,
		Study:  rows,
	}
	out := cmd.OutOrStdout()
	if err := report.WriteSimpson(out, rep); err != nil {
		return err
	}

	if err := a.prepareOutDir(); err != nil {
		return err
	}

	if !a.noChart {
		path := filepath.Join(a.outDir, chart.DefaultSimpsonFile)
		fig := chart.SimpsonFigure{Label: fixture.PolynomialLabel, F: fixture.Polynomial, Result: res, Study: rows}
		if err := chart.RenderSimpson(path, fig); err != nil {
			return err
		}
		a.logger.Info("Figure saved", zap.String("path", path))
		fmt.Fprintf(out, "\n✓ Grafik berhasil disimpan: %s\n", path)
	}

	if a.export {
		path, err := a.writeExport("simpson", rep)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n✓ Laporan berhasil diekspor: %s\n", path)
	}

	fmt.Fprint(out, footer(70))

	return nil
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/arloliu/quadfit/chart"
	"github.com/arloliu/quadfit/dataset"
	"github.com/arloliu/quadfit/regression"
	"github.com/arloliu/quadfit/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// defaultPredictions are the floor areas predicted when --predict is not given.
var defaultPredictions = []float64{40, 65, 85, 125, 160}

func newRegressionCmd(a *app) *cobra.Command {
	var dataPath string
	var predict []float64
	var highlight float64

	cmd := &cobra.Command{
		Use:   "regression",
		Short: "Fit a least-squares line to a paired series and predict new values",
		Long: `Fit y = mx + b to a paired series by ordinary least squares, evaluate it with
R², MSE and MAE and predict y for new x values. Without --data the built-in house
price series (floor area in m² against price in millions of rupiah) is used.

Example: quadfit regression --data houses.yaml --predict 40,65,85 --highlight 95`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRegression(cmd, dataPath, predict, highlight)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "YAML series file (name, x_label, y_label, x, y)")
	cmd.Flags().Float64SliceVar(&predict, "predict", defaultPredictions, "x values to predict")
	cmd.Flags().Float64Var(&highlight, "highlight", 95, "x value marked on the fit panel")

	return cmd
}

func (a *app) runRegression(cmd *cobra.Command, dataPath string, predict []float64, highlight float64) error {
	series := dataset.HousePrices()
	if dataPath != "" {
		var err error
		if series, err = dataset.LoadFile(dataPath); err != nil {
			return err
		}
	}

	model, err := regression.FitModel(series.X, series.Y)
	if err != nil {
		return fmt.Errorf("regression on %q: %w", series.Name, err)
	}

	a.logger.Debug("Regression fitted",
		zap.String("dataset", series.Name),
		zap.Uint64("dataset_id", series.ID()),
		zap.Int("samples", series.Len()),
		zap.Stringer("metrics", model.Metrics),
	)

	rep := report.RegressionReport{
		Series:      series,
		Model:       model,
		Predictions: report.Predict(model, predict...),
	}
	out := cmd.OutOrStdout()
	if err := report.WriteRegression(out, rep); err != nil {
		return err
	}

	if err := a.prepareOutDir(); err != nil {
		return err
	}

	if !a.noChart {
		path := filepath.Join(a.outDir, chart.DefaultRegressionFile)
		fig := chart.RegressionFigure{
			Title:      series.Name,
			XLabel:     series.XLabel,
			YLabel:     series.YLabel,
			Model:      model,
			Highlights: []float64{highlight},
		}
		if err := chart.RenderRegression(path, fig); err != nil {
			return err
		}
		a.logger.Info("Figure saved", zap.String("path", path))
		fmt.Fprintf(out, "\n✓ Grafik berhasil disimpan: %s\n", path)
	}

	if a.export {
		path, err := a.writeExport("regresi", rep)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n✓ Laporan berhasil diekspor: %s\n", path)
	}

	fmt.Fprint(out, footer(60))

	return nil
}

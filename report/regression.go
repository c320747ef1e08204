package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/quadfit/dataset"
	"github.com/arloliu/quadfit/regression"
)

const (
	regressionRule = 60
	// previewRows is the number of training rows printed before the summary.
	previewRows = 10
)

// Prediction is the model output for one new x.
type Prediction struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegressionReport is a fitted model together with its training series and the
// predictions made for new inputs.
type RegressionReport struct {
	Series      *dataset.Series
	Model       *regression.Model
	Predictions []Prediction
}

// Predict evaluates the model at every x.
func Predict(m *regression.Model, xs ...float64) []Prediction {
	out := make([]Prediction, len(xs))
	for i, x := range xs {
		out[i] = Prediction{X: x, Y: m.Estimate(x)}
	}

	return out
}

type regressionDocument struct {
	Dataset     string            `json:"dataset"`
	DatasetID   string            `json:"dataset_id"`
	XLabel      string            `json:"x_label"`
	YLabel      string            `json:"y_label"`
	Samples     int               `json:"samples"`
	Slope       float64           `json:"slope"`
	Intercept   float64           `json:"intercept"`
	Formula     string            `json:"formula"`
	Metrics     metricsEntry      `json:"metrics"`
	Predictions []Prediction      `json:"predictions"`
	Comparison  []comparisonEntry `json:"comparison"`
}

type metricsEntry struct {
	RSquared float64 `json:"r2"`
	MSE      float64 `json:"mse"`
	MAE      float64 `json:"mae"`
	RMSE     float64 `json:"rmse"`
}

type comparisonEntry struct {
	X         float64  `json:"x"`
	Actual    float64  `json:"actual"`
	Predicted float64  `json:"predicted"`
	Error     float64  `json:"error"`
	ErrorPct  *float64 `json:"error_pct"`
}

// Document implements Exportable.
func (r RegressionReport) Document() any {
	m := r.Model
	doc := regressionDocument{
		Dataset:   r.Series.Name,
		DatasetID: fmt.Sprintf("%016x", r.Series.ID()),
		XLabel:    r.Series.XLabel,
		YLabel:    r.Series.YLabel,
		Samples:   r.Series.Len(),
		Slope:     m.Slope,
		Intercept: m.Intercept,
		Formula:   m.Formula,
		Metrics: metricsEntry{
			RSquared: m.Metrics.RSquared,
			MSE:      m.Metrics.MSE,
			MAE:      m.Metrics.MAE,
			RMSE:     m.Metrics.RMSE,
		},
		Predictions: r.Predictions,
	}
	for _, row := range m.Compare() {
		doc.Comparison = append(doc.Comparison, comparisonEntry{
			X:         row.X,
			Actual:    row.Actual,
			Predicted: row.Predicted,
			Error:     row.Error,
			ErrorPct:  nullable(row.ErrorPct),
		})
	}

	return doc
}

// Tables implements Exportable. It returns the comparison table and, when present,
// the prediction table.
func (r RegressionReport) Tables() []Table {
	rows := r.Model.Compare()
	errPct := make([]float64, len(rows))
	for i, row := range rows {
		errPct[i] = row.ErrorPct
	}

	tables := []Table{{
		Name:    "comparison",
		Headers: []string{"x", "actual", "predicted", "error", "error_pct"},
		Columns: [][]float64{r.Model.X, r.Model.Actual, r.Model.Fitted, r.Model.Residuals, errPct},
	}}
	if len(r.Predictions) == 0 {
		return tables
	}

	xs := make([]float64, len(r.Predictions))
	ys := make([]float64, len(r.Predictions))
	for i, p := range r.Predictions {
		xs[i], ys[i] = p.X, p.Y
	}

	return append(tables, Table{
		Name:    "predictions",
		Headers: []string{"x", "y"},
		Columns: [][]float64{xs, ys},
	})
}

// WriteRegression prints the training data preview and summary, the fitted line, the
// predictions, the accuracy metrics and the actual-versus-predicted table.
func WriteRegression(w io.Writer, r RegressionReport) error {
	s, m := r.Series, r.Model
	sx, sy, err := s.Describe()
	if err != nil {
		return err
	}

	p := &printer{w: w}
	p.banner(regressionRule, "PREDIKSI MENGGUNAKAN REGRESI LINEAR: "+strings.ToUpper(s.Name))

	p.printf("\nData Training:\n")
	p.table(func(tw io.Writer) {
		fmt.Fprintf(tw, "\t%s\t%s\t\n", s.XLabel, s.YLabel)
		for i := 0; i < min(previewRows, s.Len()); i++ {
			fmt.Fprintf(tw, "%d\t%g\t%g\t\n", i, s.X[i], s.Y[i])
		}
	})
	p.printf("\nJumlah data: %d sampel\n", s.Len())

	p.printf("\nStatistik Deskriptif:\n")
	p.table(func(tw io.Writer) {
		fmt.Fprintf(tw, "\tcount\tmean\tstd\tmin\t25%%\t50%%\t75%%\tmax\t\n")
		for _, row := range []struct {
			name string
			sum  dataset.Summary
		}{{"x", sx}, {"y", sy}} {
			fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n", row.name,
				row.sum.Count, row.sum.Mean, row.sum.StdDev, row.sum.Min,
				row.sum.Q25, row.sum.Median, row.sum.Q75, row.sum.Max)
		}
	})

	p.printf("\n")
	p.banner(regressionRule, "HASIL PERHITUNGAN PARAMETER REGRESI")
	p.printf("Persamaan Regresi: %s\n", m.Formula)
	p.printf("Slope (m)        : %.4f (setiap penambahan 1 satuan x → y naik %.2f)\n", m.Slope, m.Slope)
	p.printf("Intercept (b)    : %.4f (nilai y saat x = 0)\n", m.Intercept)

	if len(r.Predictions) > 0 {
		p.printf("\n")
		p.banner(regressionRule, "PREDIKSI")
		for _, pr := range r.Predictions {
			p.printf("x = %6g → Prediksi: %8.2f\n", pr.X, pr.Y)
		}
	}

	p.printf("\n")
	p.banner(regressionRule, "EVALUASI AKURASI MODEL")
	p.printf("R² (Koefisien Determinasi): %.6f atau %.2f%%\n", m.Metrics.RSquared, m.Metrics.RSquared*100)
	p.printf("MSE (Mean Squared Error)  : %.2f\n", m.Metrics.MSE)
	p.printf("MAE (Mean Absolute Error) : %.2f\n", m.Metrics.MAE)
	p.printf("RMSE                      : %.2f\n", m.Metrics.RMSE)
	p.printf("\nInterpretasi:\n")
	p.printf("- Model dapat menjelaskan %.2f%% variasi %s\n", m.Metrics.RSquared*100, s.YLabel)
	p.printf("- Rata-rata error prediksi: ±%.2f\n", m.Metrics.MAE)

	p.printf("\n")
	p.banner(regressionRule, "TABEL PERBANDINGAN AKTUAL VS PREDIKSI")
	p.table(func(tw io.Writer) {
		fmt.Fprintf(tw, "%s\tAktual\tPrediksi\tError\tError (%%)\t\n", s.XLabel)
		for _, row := range m.Compare() {
			fmt.Fprintf(tw, "%g\t%g\t%.6f\t%.6f\t%.6f\t\n", row.X, row.Actual, row.Predicted, row.Error, row.ErrorPct)
		}
	})

	return p.err
}

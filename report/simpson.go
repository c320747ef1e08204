package report

import (
	"io"
	"strings"

	"github.com/arloliu/quadfit/quadrature"
)

const simpsonRule = 70

// SimpsonReport is the outcome of one Simpson run against a known integral, with an
// optional convergence study.
type SimpsonReport struct {
	// Label is the printable form of the integrand, e.g. "f(x) = x² + 2x + 1".
	Label        string
	Lower, Upper float64
	Result       *quadrature.Result
	Exact        float64
	// Study is printed and exported when non-empty.
	Study []quadrature.ConvergenceRow
}

type simpsonDocument struct {
	Function    string             `json:"function"`
	Lower       float64            `json:"lower"`
	Upper       float64            `json:"upper"`
	Segments    int                `json:"segments"`
	H           float64            `json:"h"`
	Estimate    float64            `json:"estimate"`
	Exact       float64            `json:"exact"`
	AbsError    float64            `json:"abs_error"`
	RelError    *float64           `json:"rel_error_pct"`
	Points      []float64          `json:"points"`
	Values      []float64          `json:"values"`
	Weights     []int              `json:"weights"`
	Convergence []convergenceEntry `json:"convergence,omitempty"`
}

type convergenceEntry struct {
	Segments int      `json:"n"`
	Estimate float64  `json:"estimate"`
	AbsError float64  `json:"abs_error"`
	RelError *float64 `json:"rel_error_pct"`
}

// Document implements Exportable.
func (r SimpsonReport) Document() any {
	row := r.Result.Compare(r.Exact)
	doc := simpsonDocument{
		Function: r.Label,
		Lower:    r.Lower,
		Upper:    r.Upper,
		Segments: r.Result.Segments,
		H:        r.Result.H,
		Estimate: r.Result.Estimate,
		Exact:    r.Exact,
		AbsError: row.AbsError,
		RelError: nullable(row.RelError),
		Points:   r.Result.Points,
		Values:   r.Result.Values,
		Weights:  r.Result.Weights(),
	}
	for _, s := range r.Study {
		doc.Convergence = append(doc.Convergence, convergenceEntry{
			Segments: s.Segments,
			Estimate: s.Estimate,
			AbsError: s.AbsError,
			RelError: nullable(s.RelError),
		})
	}

	return doc
}

// Tables implements Exportable. It returns the sample table and, when a study was
// run, the convergence table.
func (r SimpsonReport) Tables() []Table {
	weights := make([]float64, len(r.Result.Points))
	for i := range weights {
		weights[i] = float64(r.Result.Weight(i))
	}

	tables := []Table{{
		Name:    "samples",
		Headers: []string{"x", "f(x)", "weight"},
		Columns: [][]float64{r.Result.Points, r.Result.Values, weights},
	}}
	if len(r.Study) == 0 {
		return tables
	}

	n := make([]float64, len(r.Study))
	est := make([]float64, len(r.Study))
	abs := make([]float64, len(r.Study))
	rel := make([]float64, len(r.Study))
	for i, s := range r.Study {
		n[i] = float64(s.Segments)
		est[i] = s.Estimate
		abs[i] = s.AbsError
		rel[i] = s.RelError
	}

	return append(tables, Table{
		Name:    "convergence",
		Headers: []string{"n", "estimate", "abs_error", "rel_error_pct"},
		Columns: [][]float64{n, est, abs, rel},
	})
}

// WriteSimpson prints the integration parameters, the result against the exact value
// and the convergence table.
func WriteSimpson(w io.Writer, r SimpsonReport) error {
	p := &printer{w: w}
	row := r.Result.Compare(r.Exact)

	p.banner(simpsonRule, "INTEGRASI NUMERIK MENGGUNAKAN METODE SIMPSON 1/3")
	p.printf("\nFungsi: %s\n", r.Label)
	p.printf("Batas integrasi: [%g, %g]\n", r.Lower, r.Upper)
	p.printf("Jumlah segmen: %d\n", r.Result.Segments)
	p.printf("Lebar segmen (h): %g\n", r.Result.H)

	p.printf("\n")
	p.banner(simpsonRule, "HASIL PERHITUNGAN")
	p.printf("Hasil Metode Simpson 1/3  : %.10f\n", r.Result.Estimate)
	p.printf("Nilai Eksak (Analitik)    : %.10f\n", r.Exact)
	p.printf("Error Absolut             : %.10f\n", row.AbsError)
	p.printf("Error Relatif             : %.8f%%\n", row.RelError)

	if len(r.Study) > 0 {
		p.printf("\n")
		p.banner(simpsonRule, "ANALISIS KONVERGENSI (Pengaruh Jumlah Segmen)")
		p.printf("%5s | %18s | %18s | %18s\n", "n", "Hasil Simpson", "Error Absolut", "Error Relatif (%)")
		p.printf("%s\n", strings.Repeat("-", simpsonRule))
		for _, s := range r.Study {
			p.printf("%5d | %18.10f | %18.10e | %18.10f\n", s.Segments, s.Estimate, s.AbsError, s.RelError)
		}
		p.printf("\nKesimpulan: Semakin besar n, semakin akurat hasilnya!\n")
	}

	return p.err
}

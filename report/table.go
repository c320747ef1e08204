package report

import (
	"fmt"
	"math"

	"github.com/arloliu/quadfit/errs"
)

// Table is a named set of equal-length float64 columns.
type Table struct {
	Name    string      `json:"name"`
	Headers []string    `json:"headers"`
	Columns [][]float64 `json:"columns"`
}

// Rows returns the shared column length, or 0 for a table without columns.
func (t Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}

	return len(t.Columns[0])
}

func (t Table) validate() error {
	if len(t.Headers) != len(t.Columns) {
		return fmt.Errorf("table %q: %w: %d headers for %d columns", t.Name, errs.ErrRaggedColumns, len(t.Headers), len(t.Columns))
	}

	rows := t.Rows()
	for i, col := range t.Columns {
		if len(col) != rows {
			return fmt.Errorf("table %q column %q: %w: %d rows, want %d", t.Name, t.Headers[i], errs.ErrRaggedColumns, len(col), rows)
		}
	}

	return nil
}

// Exportable is a report that can be written by Export.
type Exportable interface {
	// Document returns the value encoded by the JSON format.
	Document() any
	// Tables returns the columns written by the columnar and spreadsheet formats.
	Tables() []Table
}

// nullable maps non-finite values to nil so JSON output stays valid.
func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

package report

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// encodeWorkbook writes each table to its own sheet: a header row followed by one
// row per sample. Non-finite values are left blank.
func encodeWorkbook(tables []Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		if err := t.validate(); err != nil {
			return nil, err
		}

		if i == 0 {
			if err := f.SetSheetName(defaultSheet, t.Name); err != nil {
				return nil, fmt.Errorf("sheet %q: %w", t.Name, err)
			}
		} else if _, err := f.NewSheet(t.Name); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", t.Name, err)
		}

		headers := make([]any, len(t.Headers))
		for c, h := range t.Headers {
			headers[c] = h
		}
		if err := f.SetSheetRow(t.Name, "A1", &headers); err != nil {
			return nil, fmt.Errorf("sheet %q header: %w", t.Name, err)
		}

		for r := range t.Rows() {
			row := make([]any, len(t.Columns))
			for c, col := range t.Columns {
				if v := col[r]; !math.IsNaN(v) && !math.IsInf(v, 0) {
					row[c] = v
				}
			}

			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(t.Name, cell, &row); err != nil {
				return nil, fmt.Errorf("sheet %q row %d: %w", t.Name, r, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

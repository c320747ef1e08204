package report

import (
	"fmt"
	"io"

	"github.com/arloliu/quadfit/compress"
	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/format"
	"github.com/goccy/go-json"
)

// Export encodes the report in the given format, compresses it and writes it to w.
//
// Parameters:
//   - w: Destination
//   - r: Report to export
//   - reportFormat: JSON document, columnar blob or XLSX workbook
//   - compression: Codec applied to the encoded payload (the body only, for columnar)
//
// Returns:
//   - compress.Stats: Size change from compression
//   - error: errs.ErrInvalidReportFormat, errs.ErrInvalidCompression, or an encoding
//     or write failure
func Export(w io.Writer, r Exportable, reportFormat format.ReportFormat, compression format.CompressionType) (compress.Stats, error) {
	var (
		out   []byte
		stats compress.Stats
		err   error
	)

	switch reportFormat {
	case format.ReportJSON:
		var doc []byte
		if doc, err = json.MarshalIndent(r.Document(), "", "  "); err != nil {
			return compress.Stats{}, fmt.Errorf("encode json report: %w", err)
		}
		out, stats, err = compress.Pack(compression, doc)
	case format.ReportColumnar:
		out, stats, err = EncodeColumnar(r.Tables(), compression)
	case format.ReportXLSX:
		var book []byte
		if book, err = encodeWorkbook(r.Tables()); err != nil {
			return compress.Stats{}, err
		}
		out, stats, err = compress.Pack(compression, book)
	default:
		return compress.Stats{}, fmt.Errorf("%w: %s", errs.ErrInvalidReportFormat, reportFormat)
	}
	if err != nil {
		return compress.Stats{}, err
	}

	if _, err := w.Write(out); err != nil {
		return compress.Stats{}, fmt.Errorf("write %s report: %w", reportFormat, err)
	}

	return stats, nil
}

// Package format enumerates the encodings and compression types used by report export.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/quadfit/errs"
)

type (
	ReportFormat    uint8
	CompressionType uint8
)

const (
	ReportJSON     ReportFormat = 0x1 // ReportJSON is a self-describing JSON document.
	ReportColumnar ReportFormat = 0x2 // ReportColumnar is a little-endian float64 column blob.
	ReportXLSX     ReportFormat = 0x3 // ReportXLSX is a spreadsheet workbook, one sheet per table.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (f ReportFormat) String() string {
	switch f {
	case ReportJSON:
		return "JSON"
	case ReportColumnar:
		return "Columnar"
	case ReportXLSX:
		return "XLSX"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseReportFormat parses a case-insensitive report format name ("json", "columnar", "xlsx").
func ParseReportFormat(name string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return ReportJSON, nil
	case "columnar":
		return ReportColumnar, nil
	case "xlsx":
		return ReportXLSX, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidReportFormat, name)
	}
}

// ParseCompression parses a case-insensitive compression name ("none", "zstd", "s2", "lz4").
// An empty name selects CompressionNone.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}

// Extension returns the conventional file suffix for the format and compression,
// e.g. ".json.zst" or ".col.lz4".
func Extension(f ReportFormat, c CompressionType) string {
	ext := ".bin"
	switch f {
	case ReportJSON:
		ext = ".json"
	case ReportColumnar:
		ext = ".col"
	case ReportXLSX:
		ext = ".xlsx"
	}

	switch c {
	case CompressionZstd:
		ext += ".zst"
	case CompressionS2:
		ext += ".s2"
	case CompressionLZ4:
		ext += ".lz4"
	}

	return ext
}

// Package errs defines the sentinel errors shared by the quadfit packages.
//
// Call sites wrap these with fmt.Errorf("...: %w", ...) to add context, so callers
// should match them with errors.Is rather than by equality.
package errs

import "errors"

// Quadrature errors.
var (
	// ErrInvalidSegmentCount is returned when the Simpson segment count is odd or not positive.
	ErrInvalidSegmentCount = errors.New("segment count must be a positive even integer")
	// ErrNilFunction is returned when no integrand is supplied.
	ErrNilFunction = errors.New("integrand function is nil")
	// ErrNoSegmentCounts is returned when a convergence study is configured with no segment counts.
	ErrNoSegmentCounts = errors.New("no segment counts configured")
)

// Regression and evaluation errors.
var (
	// ErrDegenerateInput is returned when a zero-variance denominator makes the result undefined,
	// e.g. all x values identical in a fit or all actual values identical in R².
	ErrDegenerateInput = errors.New("degenerate input: zero variance denominator")
	// ErrLengthMismatch is returned when paired sequences have different lengths.
	ErrLengthMismatch = errors.New("paired sequences have different lengths")
	// ErrEmptyInput is returned when a sequence has no samples.
	ErrEmptyInput = errors.New("empty input")
	// ErrInsufficientSamples is returned when a fit has fewer than two samples.
	ErrInsufficientSamples = errors.New("at least two samples are required")
	// ErrNonFiniteSample is returned when a sample series holds NaN or ±Inf.
	ErrNonFiniteSample = errors.New("sample is not a finite number")
)

// Report and codec errors.
var (
	// ErrInvalidReportFormat is returned for an unknown report encoding.
	ErrInvalidReportFormat = errors.New("invalid report format")
	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrInvalidColumnarHeader is returned when a columnar payload header is malformed.
	ErrInvalidColumnarHeader = errors.New("invalid columnar header")
	// ErrChecksumMismatch is returned when a columnar payload fails its checksum.
	ErrChecksumMismatch = errors.New("columnar payload checksum mismatch")
	// ErrRaggedColumns is returned when columns passed to the columnar encoder differ in length.
	ErrRaggedColumns = errors.New("columns have different lengths")
	// ErrInvalidFigureSize is returned when a chart is configured with a non-positive size or resolution.
	ErrInvalidFigureSize = errors.New("figure size and resolution must be positive")
)

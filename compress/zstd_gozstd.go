//go:build gozstd && cgo

package compress

import (
	"errors"
	"fmt"

	"github.com/valyala/gozstd"
)

// gozstdLevel matches zstd.SpeedDefault of the pure Go build, so both builds produce
// exports of about the same size.
const gozstdLevel = 3

var errGozstdLength = errors.New("zstd: decoded report exceeds report limit")

// Compress packs a report body as one zstd frame with the reference C library.
// An empty body yields nil, as with the other codecs.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress restores a report body written by either zstd build.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	if len(out) > maxReportPayload {
		return nil, fmt.Errorf("%w: %d bytes", errGozstdLength, len(out))
	}

	return out, nil
}

package compress

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/s2"
)

var errS2Length = errors.New("s2: declared length exceeds report limit")

// S2Compressor stores a report body as one S2 block. It trades some ratio against
// zstd for faster packing, which suits exports written on every CLI run.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress packs a report body. An empty body yields nil, so a header-only export
// carries no block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress restores a report body. The length stored in the block header is checked
// against the report limit before any output buffer is allocated.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2: %w", err)
	}
	if size > maxReportPayload {
		return nil, fmt.Errorf("%w: %d bytes", errS2Length, size)
	}

	return s2.Decode(make([]byte, size), data)
}

package compress

import (
	"fmt"

	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/format"
)

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original payload, or an error if data is corrupted
	// or was produced by a different codec.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// maxReportPayload bounds the decoded size any codec accepts. Exported reports stay
// far below it, so a larger declared size means a corrupted or foreign payload.
const maxReportPayload = 64 << 20

// Stats describes the effect of compressing one payload.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns compressed size divided by original size, or 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s Stats) SpaceSavings() float64 {
	return (1 - s.Ratio()) * 100
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for the compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// Pack compresses data with the codec for compressionType and reports the size change.
func Pack(compressionType format.CompressionType, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, Stats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compress: %w", compressionType, err)
	}

	return out, Stats{
		Algorithm:      compressionType,
		OriginalSize:   len(data),
		CompressedSize: len(out),
	}, nil
}

// Unpack reverses Pack.
func Unpack(compressionType format.CompressionType, data []byte) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", compressionType, err)
	}

	return out, nil
}

package compress

// ZstdCompressor uses Zstandard at its default level. It gives the best ratio of the
// built-in codecs and suits archived reports.
//
// The implementation is chosen at build time: klauspost/compress/zstd by default,
// or valyala/gozstd when built with the gozstd tag and cgo enabled. Both produce
// standard zstd frames and can read each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

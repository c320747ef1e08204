// Package compress wraps the block compressors used for exported reports.
//
// Every codec turns a complete in-memory payload into a compressed payload and back.
// Reports are small (a few kilobytes of samples and statistics), so the codecs work
// on whole buffers rather than streams.
//
// # Codecs
//
//   - None: passes data through unchanged
//   - Zstd: klauspost/compress/zstd, or valyala/gozstd when built with the gozstd tag and cgo
//   - S2: klauspost/compress/s2
//   - LZ4: pierrec/lz4 block format with a uvarint length prefix
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// All codecs returned by GetCodec are safe for concurrent use.
package compress

package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var errLZ4Length = errors.New("lz4: invalid length prefix")

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor stores an LZ4 block preceded by the uvarint-encoded original length,
// so decompression can size its buffer exactly.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes data as length prefix + LZ4 block. An empty payload yields nil.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, binary.MaxVarintLen64+lz4.CompressBlockBound(len(data)))
	off := binary.PutUvarint(dst, uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[off:])
	if err != nil {
		return nil, err
	}

	return dst[:off+n], nil
}

// Decompress decodes a payload produced by Compress.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, off := binary.Uvarint(data)
	if off <= 0 || size == 0 || size > maxReportPayload {
		return nil, errLZ4Length
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data[off:], out)
	if err != nil {
		return nil, err
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("lz4: decoded %d bytes, expected %d", n, size)
	}

	return out, nil
}

// Package hash computes xxHash64 identifiers for series names and sample columns.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Columns computes an xxHash64 over a label followed by the IEEE-754 bits of every
// value in every column, in column order. Columns of different lengths hash
// differently even when their concatenation is equal, because each column is
// prefixed by its length.
func Columns(label string, columns ...[]float64) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(label)

	var buf [8]byte
	for _, col := range columns {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(col)))
		_, _ = d.Write(buf[:])
		for _, v := range col {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}

// Bytes computes the xxHash64 of a raw payload.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

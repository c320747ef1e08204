// Package endian provides byte order utilities for the binary sample encoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces of encoding/binary into a
// single EndianEngine, and adds helpers for float64 columns.
//
// # Basic Usage
//
// Columnar reports are always little-endian:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendFloat64s(engine, buf, result.Points)
//
// # Thread Safety
//
// All functions are safe for concurrent use. Engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// AppendFloat64s appends the IEEE-754 bits of every value to buf using engine's byte order.
func AppendFloat64s(engine EndianEngine, buf []byte, values []float64) []byte {
	buf = growBytes(buf, 8*len(values))
	for _, v := range values {
		buf = engine.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

// ReadFloat64s decodes count float64 values from the front of data and returns them
// together with the unread remainder. ok is false if data is too short.
func ReadFloat64s(engine EndianEngine, data []byte, count int) (values []float64, rest []byte, ok bool) {
	if count < 0 || len(data)/8 < count {
		return nil, data, false
	}

	values = make([]float64, count)
	for i := range values {
		values[i] = math.Float64frombits(engine.Uint64(data[i*8:]))
	}

	return values, data[count*8:], true
}

func growBytes(buf []byte, n int) []byte {
	if cap(buf)-len(buf) >= n {
		return buf
	}

	grown := make([]byte, len(buf), len(buf)+n)
	copy(grown, buf)

	return grown
}

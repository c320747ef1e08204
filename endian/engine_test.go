package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLittleEndianEngine(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())

	buf := GetLittleEndianEngine().AppendUint16(nil, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, buf)
}

func TestFloat64sRoundTrip(t *testing.T) {
	values := []float64{0, 0.4, -1.5, 41.333333333333336, math.Inf(1), math.SmallestNonzeroFloat64}

	for name, engine := range map[string]EndianEngine{
		"little": GetLittleEndianEngine(),
		"big":    binary.BigEndian,
	} {
		t.Run(name, func(t *testing.T) {
			prefix := []byte{0xaa}
			buf := AppendFloat64s(engine, prefix, values)
			require.Len(t, buf, 1+8*len(values))
			require.Equal(t, byte(0xaa), buf[0])

			got, rest, ok := ReadFloat64s(engine, buf[1:], len(values))
			require.True(t, ok)
			require.Empty(t, rest)
			require.Equal(t, values, got)
		})
	}
}

func TestFloat64sLayout(t *testing.T) {
	buf := AppendFloat64s(GetLittleEndianEngine(), nil, []float64{1})
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, buf)
}

func TestReadFloat64sShort(t *testing.T) {
	buf := AppendFloat64s(GetLittleEndianEngine(), nil, []float64{1, 2})

	_, rest, ok := ReadFloat64s(GetLittleEndianEngine(), buf[:15], 2)
	require.False(t, ok)
	require.Len(t, rest, 15)

	_, _, ok = ReadFloat64s(GetLittleEndianEngine(), buf, -1)
	require.False(t, ok)

	got, rest, ok := ReadFloat64s(GetLittleEndianEngine(), buf, 1)
	require.True(t, ok)
	require.Equal(t, []float64{1}, got)
	require.Len(t, rest, 8)
}

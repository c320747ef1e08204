package report

import (
	"fmt"
	"math"

	"github.com/arloliu/quadfit/compress"
	"github.com/arloliu/quadfit/endian"
	"github.com/arloliu/quadfit/errs"
	"github.com/arloliu/quadfit/format"
	"github.com/arloliu/quadfit/internal/hash"
)

const (
	columnarHeaderSize = 16
	columnarVersion    = 1
)

var columnarMagic = [4]byte{'Q', 'F', 'I', 'T'}

// columnarHeader is the fixed-size header at the start of a columnar payload.
type columnarHeader struct {
	Version     uint8                  // byte offset 4
	Compression format.CompressionType // byte offset 5
	TableCount  uint16                 // byte offset 6-7
	Checksum    uint64                 // byte offset 8-15
}

// Bytes serializes the header.
func (h columnarHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, columnarHeaderSize)
	copy(b[0:4], columnarMagic[:])
	b[4] = h.Version
	b[5] = uint8(h.Compression)
	engine.PutUint16(b[6:8], h.TableCount)
	engine.PutUint64(b[8:16], h.Checksum)

	return b
}

// parseColumnarHeader parses the header from the front of data.
//
// Returns:
//   - columnarHeader: Parsed header
//   - error: errs.ErrInvalidColumnarHeader if data is short, the magic is wrong or
//     the version is unknown
func parseColumnarHeader(data []byte) (columnarHeader, error) {
	if len(data) < columnarHeaderSize {
		return columnarHeader{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidColumnarHeader, len(data))
	}
	if [4]byte(data[0:4]) != columnarMagic {
		return columnarHeader{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidColumnarHeader, data[0:4])
	}

	engine := endian.GetLittleEndianEngine()
	h := columnarHeader{
		Version:     data[4],
		Compression: format.CompressionType(data[5]),
		TableCount:  engine.Uint16(data[6:8]),
		Checksum:    engine.Uint64(data[8:16]),
	}
	if h.Version != columnarVersion {
		return columnarHeader{}, fmt.Errorf("%w: version %d", errs.ErrInvalidColumnarHeader, h.Version)
	}

	return h, nil
}

// EncodeColumnar encodes tables into a columnar payload whose body is compressed
// with compression.
//
// Returns:
//   - []byte: Header followed by the compressed body
//   - compress.Stats: Size change of the body
//   - error: errs.ErrRaggedColumns for malformed tables, errs.ErrInvalidCompression
//     for an unknown compression type
func EncodeColumnar(tables []Table, compression format.CompressionType) ([]byte, compress.Stats, error) {
	if len(tables) > math.MaxUint16 {
		return nil, compress.Stats{}, fmt.Errorf("columnar: %d tables exceed the limit", len(tables))
	}

	engine := endian.GetLittleEndianEngine()

	var body []byte
	for _, t := range tables {
		if err := t.validate(); err != nil {
			return nil, compress.Stats{}, err
		}
		if len(t.Columns) > math.MaxUint16 || uint64(t.Rows()) > math.MaxUint32 {
			return nil, compress.Stats{}, fmt.Errorf("columnar: table %q is too large", t.Name)
		}

		var err error
		if body, err = appendString(body, t.Name); err != nil {
			return nil, compress.Stats{}, err
		}
		body = engine.AppendUint16(body, uint16(len(t.Columns)))
		body = engine.AppendUint32(body, uint32(t.Rows()))
		for _, h := range t.Headers {
			if body, err = appendString(body, h); err != nil {
				return nil, compress.Stats{}, err
			}
		}
		for _, col := range t.Columns {
			body = endian.AppendFloat64s(engine, body, col)
		}
	}

	packed, stats, err := compress.Pack(compression, body)
	if err != nil {
		return nil, compress.Stats{}, err
	}

	header := columnarHeader{
		Version:     columnarVersion,
		Compression: compression,
		TableCount:  uint16(len(tables)),
		Checksum:    hash.Bytes(body),
	}

	return append(header.Bytes(), packed...), stats, nil
}

// DecodeColumnar decodes a payload produced by EncodeColumnar.
//
// Returns:
//   - []Table: Tables in encoding order
//   - error: errs.ErrInvalidColumnarHeader for a malformed header or truncated body,
//     errs.ErrChecksumMismatch when the body does not match its checksum
func DecodeColumnar(data []byte) ([]Table, error) {
	h, err := parseColumnarHeader(data)
	if err != nil {
		return nil, err
	}

	body, err := compress.Unpack(h.Compression, data[columnarHeaderSize:])
	if err != nil {
		return nil, err
	}
	if sum := hash.Bytes(body); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	r := &columnarReader{data: body}
	tables := make([]Table, 0, h.TableCount)
	for range h.TableCount {
		t, err := r.table()
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	if len(r.data) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidColumnarHeader, len(r.data))
	}

	return tables, nil
}

func appendString(buf []byte, s string) ([]byte, error) {
	if len(s) > math.MaxUint16 {
		return nil, fmt.Errorf("columnar: string of %d bytes exceeds the limit", len(s))
	}
	buf = endian.GetLittleEndianEngine().AppendUint16(buf, uint16(len(s)))

	return append(buf, s...), nil
}

type columnarReader struct {
	data []byte
}

func (r *columnarReader) table() (Table, error) {
	engine := endian.GetLittleEndianEngine()

	name, err := r.string()
	if err != nil {
		return Table{}, err
	}
	if len(r.data) < 6 {
		return Table{}, r.truncated(name)
	}
	cols := int(engine.Uint16(r.data[0:2]))
	rows := int(engine.Uint32(r.data[2:6]))
	r.data = r.data[6:]

	t := Table{Name: name, Headers: make([]string, cols), Columns: make([][]float64, cols)}
	for i := range t.Headers {
		if t.Headers[i], err = r.string(); err != nil {
			return Table{}, err
		}
	}
	for i := range t.Columns {
		col, rest, ok := endian.ReadFloat64s(engine, r.data, rows)
		if !ok {
			return Table{}, r.truncated(name)
		}
		t.Columns[i], r.data = col, rest
	}

	return t, nil
}

func (r *columnarReader) string() (string, error) {
	if len(r.data) < 2 {
		return "", r.truncated("")
	}
	n := int(endian.GetLittleEndianEngine().Uint16(r.data))
	if len(r.data) < 2+n {
		return "", r.truncated("")
	}
	s := string(r.data[2 : 2+n])
	r.data = r.data[2+n:]

	return s, nil
}

func (r *columnarReader) truncated(table string) error {
	if table == "" {
		return fmt.Errorf("%w: truncated body", errs.ErrInvalidColumnarHeader)
	}

	return fmt.Errorf("%w: table %q truncated", errs.ErrInvalidColumnarHeader, table)
}

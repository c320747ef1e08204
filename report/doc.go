// Package report renders Simpson and regression results as console text and exports
// them as JSON documents, columnar float64 blobs or spreadsheet workbooks.
//
// Console output follows a fixed banner layout with Indonesian headings. Exported
// payloads pass through one of the compress codecs.
//
// # Columnar layout
//
// A columnar payload starts with a 16-byte little-endian header:
//
//	offset 0-3   magic "QFIT"
//	offset 4     layout version (1)
//	offset 5     compression type of the body
//	offset 6-7   table count
//	offset 8-15  xxHash64 of the uncompressed body
//
// The body holds each table in turn: its name, column count, row count, column
// headers, then every column as row-count float64 values.
package report

// Package endian provides byte order utilities for the tuple file format.
//
// EndianEngine combines the ByteOrder and AppendByteOrder interfaces of encoding/binary,
// so a single value can both read fixed offsets and append to a growing buffer. On top
// of it the package offers helpers for the fixed-width cells stored in tuple columns.
//
// # Basic Usage
//
// Tuples are little-endian by default:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendCell(engine, buf, 2, 0x3C00)
//	v := endian.Cell(engine, buf[:2], 2)
//
// For interoperability with big-endian consumers:
//
//	engine := endian.GetBigEndianEngine()
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned EndianEngine
// values are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
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

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// ValidCellWidth reports whether width is a supported cell size in bytes.
func ValidCellWidth(width int) bool {
	return width == 1 || width == 2 || width == 4 || width == 8
}

// AppendCell appends the low width bytes of v to buf.
//
// Panics if width is not 1, 2, 4 or 8.
func AppendCell(engine EndianEngine, buf []byte, width int, v uint64) []byte {
	switch width {
	case 1:
		return append(buf, byte(v))
	case 2:
		return engine.AppendUint16(buf, uint16(v))
	case 4:
		return engine.AppendUint32(buf, uint32(v))
	case 8:
		return engine.AppendUint64(buf, v)
	default:
		panic(fmt.Sprintf("endian: unsupported cell width %d", width))
	}
}

// PutCell writes the low width bytes of v into buf, which must hold at least width bytes.
//
// Panics if width is not 1, 2, 4 or 8.
func PutCell(engine EndianEngine, buf []byte, width int, v uint64) {
	switch width {
	case 1:
		buf[0] = byte(v)
	case 2:
		engine.PutUint16(buf, uint16(v))
	case 4:
		engine.PutUint32(buf, uint32(v))
	case 8:
		engine.PutUint64(buf, v)
	default:
		panic(fmt.Sprintf("endian: unsupported cell width %d", width))
	}
}

// Cell reads a width-byte cell from the start of buf.
//
// Panics if width is not 1, 2, 4 or 8.
func Cell(engine EndianEngine, buf []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(engine.Uint16(buf))
	case 4:
		return uint64(engine.Uint32(buf))
	case 8:
		return engine.Uint64(buf)
	default:
		panic(fmt.Sprintf("endian: unsupported cell width %d", width))
	}
}

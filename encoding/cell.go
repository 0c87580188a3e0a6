package encoding

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/pec/endian"
	"github.com/arloliu/pec/internal/pool"
)

// CellEncoder writes unsigned cells of a fixed byte width.
//
// Values wider than the cell are truncated to their low bytes, so callers are expected to
// pass cells that already fit, such as a uint16 minifloat widened to uint64.
type CellEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	width  int
	count  int
}

var _ ColumnarEncoder[uint64] = (*CellEncoder)(nil)

// NewCellEncoder creates an encoder for width-byte cells.
//
// Parameters:
//   - engine: byte order of the payload
//   - width: cell size in bytes, one of 1, 2, 4 or 8
//
// Panics if width is not supported.
func NewCellEncoder(engine endian.EndianEngine, width int) *CellEncoder {
	if !endian.ValidCellWidth(width) {
		panic(fmt.Sprintf("encoding: unsupported cell width %d", width))
	}

	return &CellEncoder{
		engine: engine,
		width:  width,
		buf:    pool.GetColumnBuffer(),
	}
}

// Width returns the cell size in bytes.
func (e *CellEncoder) Width() int {
	return e.width
}

// Write appends a single cell.
//
// Panics if Finish has been called.
func (e *CellEncoder) Write(val uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.Grow(e.width)
	e.putCell(val)
}

// WriteSlice appends cells with a single buffer growth.
//
// Panics if Finish has been called.
func (e *CellEncoder) WriteSlice(values []uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	if len(values) == 0 {
		return
	}
	e.count += len(values)

	start := e.buf.Len()
	e.buf.ExtendOrGrow(len(values) * e.width)

	for i, v := range values {
		offset := start + i*e.width
		endian.PutCell(e.engine, e.buf.Slice(offset, offset+e.width), e.width, v)
	}
}

// Bytes returns the payload written so far.
//
// Panics if Finish has been called.
func (e *CellEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

func (e *CellEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes, always Len() * Width().
//
// Panics if Finish has been called.
func (e *CellEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset is a no-op: fixed-width cells carry no state between values.
func (e *CellEncoder) Reset() {}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *CellEncoder) Finish() {
	if e.buf != nil {
		pool.PutColumnBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

func (e *CellEncoder) putCell(v uint64) {
	n := e.buf.Len()
	endian.PutCell(e.engine, e.buf.Slice(n, n+e.width), e.width, v)
	e.buf.SetLength(n + e.width)
}

// CellDecoder reads cells written by CellEncoder.
type CellDecoder struct {
	engine endian.EndianEngine
	width  int
}

var _ ColumnarDecoder[uint64] = CellDecoder{}

// NewCellDecoder creates a decoder for width-byte cells. The engine must match the encoder's.
//
// Panics if width is not supported.
func NewCellDecoder(engine endian.EndianEngine, width int) CellDecoder {
	if !endian.ValidCellWidth(width) {
		panic(fmt.Sprintf("encoding: unsupported cell width %d", width))
	}

	return CellDecoder{engine: engine, width: width}
}

// All yields count cells from data. Nothing is yielded if data holds fewer than
// count cells.
func (d CellDecoder) All(data []byte, count int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if count <= 0 || len(data) < count*d.width {
			return
		}

		for i := range count {
			start := i * d.width
			if !yield(endian.Cell(d.engine, data[start:start+d.width], d.width)) {
				return
			}
		}
	}
}

// At returns the cell at index.
func (d CellDecoder) At(data []byte, index int, count int) (uint64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * d.width
	if start+d.width > len(data) {
		return 0, false
	}

	return endian.Cell(d.engine, data[start:start+d.width], d.width), true
}

// DecodeInto appends count cells from data to dst.
//
// Returns:
//   - []uint64: dst with the decoded cells appended
//   - error: if data length is not exactly count cells
func (d CellDecoder) DecodeInto(dst []uint64, data []byte, count int) ([]uint64, error) {
	if count < 0 || len(data) != count*d.width {
		return dst, fmt.Errorf("column payload of %d bytes does not hold %d cells of %d bytes", len(data), count, d.width)
	}

	dst = slices.Grow(dst, count)
	for i := range count {
		start := i * d.width
		dst = append(dst, endian.Cell(d.engine, data[start:start+d.width], d.width))
	}

	return dst, nil
}

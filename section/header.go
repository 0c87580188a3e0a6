package section

import (
	"fmt"
	"time"

	"github.com/arloliu/pec/errs"
	"github.com/arloliu/pec/format"
)

// TupleHeader is the fixed-size section at the start of every tuple.
//
// The options word is always little-endian so the byte order of the remaining fields can
// be determined before they are read.
type TupleHeader struct {
	// Flag holds options, record kind and compression.
	Flag TupleFlag // byte offset 0-3
	// ColumnCount is the number of column index entries.
	ColumnCount uint16 // byte offset 4-5
	// byte offset 6-7 reserved, written as zero

	// RowCount is the number of stored records.
	RowCount uint32 // byte offset 8-11
	// IndexOffset is the byte offset of the column index section.
	IndexOffset uint32 // byte offset 12-15
	// PayloadOffset is the byte offset of the first column payload.
	PayloadOffset uint32 // byte offset 16-19
	// Checksum is the low 32 bits of the xxHash64 of all stored column payloads.
	Checksum uint32 // byte offset 20-23
	// CreatedAt is the creation time in unix microseconds.
	CreatedAt int64 // byte offset 24-31
}

// NewTupleHeader creates a header for kind. Counts and offsets are set by the writer.
func NewTupleHeader(kind format.RecordKind, createdAt time.Time) *TupleHeader {
	return &TupleHeader{
		Flag:        NewTupleFlag(kind),
		IndexOffset: IndexOffsetOffset,
		CreatedAt:   createdAt.UnixMicro(),
	}
}

// Parse parses the header from exactly HeaderSize bytes.
//
// Returns:
//   - error: ErrInvalidHeaderSize for a wrong length, or a flag validation error
func (h *TupleHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Kind = format.RecordKind(data[2])
	h.Flag.Compression = format.CompressionType(data[3])

	engine := h.Flag.GetEndianEngine()
	h.ColumnCount = engine.Uint16(data[4:6])
	h.RowCount = engine.Uint32(data[8:12])
	h.IndexOffset = engine.Uint32(data[12:16])
	h.PayloadOffset = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint32(data[20:24])
	h.CreatedAt = int64(engine.Uint64(data[24:32])) //nolint: gosec

	return h.Flag.Validate()
}

// Bytes serializes the header.
func (h *TupleHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.WriteToSlice(b)

	return b
}

// WriteToSlice serializes the header into the first HeaderSize bytes of data.
func (h *TupleHeader) WriteToSlice(data []byte) {
	engine := h.Flag.GetEndianEngine()

	data[0] = byte(h.Flag.Options)
	data[1] = byte(h.Flag.Options >> 8)
	data[2] = byte(h.Flag.Kind)
	data[3] = byte(h.Flag.Compression)
	engine.PutUint16(data[4:6], h.ColumnCount)
	data[6], data[7] = 0, 0
	engine.PutUint32(data[8:12], h.RowCount)
	engine.PutUint32(data[12:16], h.IndexOffset)
	engine.PutUint32(data[16:20], h.PayloadOffset)
	engine.PutUint32(data[20:24], h.Checksum)
	engine.PutUint64(data[24:32], uint64(h.CreatedAt)) //nolint: gosec
}

// CreatedAtTime returns CreatedAt as a time.Time.
func (h *TupleHeader) CreatedAtTime() time.Time {
	return time.UnixMicro(h.CreatedAt)
}

// ParseTupleHeader parses a TupleHeader from the start of data.
func ParseTupleHeader(data []byte) (TupleHeader, error) {
	if len(data) < HeaderSize {
		return TupleHeader{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := TupleHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return TupleHeader{}, err
	}

	return h, nil
}

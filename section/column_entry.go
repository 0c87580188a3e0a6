package section

import (
	"fmt"

	"github.com/arloliu/pec/endian"
	"github.com/arloliu/pec/errs"
)

// ColumnEntry describes one column in the tuple index section. It is 16 bytes on disk:
//
//	Bytes  | Field   | Description
//	-------|---------|-------------------------------------------------
//	0-7    | ID      | xxHash64 of the column name
//	8      | Width   | cell size in bytes (1, 2, 4 or 8)
//	9-11   | -       | reserved, zero
//	12-15  | Offset  | start of the stored payload, relative to PayloadOffset
//
// Payload lengths are not stored: a column ends where the next one starts, the last
// column at the end of the tuple.
type ColumnEntry struct {
	ID     uint64
	Width  int
	Offset int

	// Length is the stored (compressed) payload length. It is only kept in memory.
	Length int
}

// NewColumnEntry creates an entry with a zero offset.
func NewColumnEntry(id uint64, width int) ColumnEntry {
	return ColumnEntry{ID: id, Width: width}
}

// WriteToSlice writes the entry at data[offset:] and returns the next write position.
func (e *ColumnEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	b := data[offset : offset+ColumnEntrySize]
	engine.PutUint64(b[0:8], e.ID)
	b[columnEntryWidthByte] = byte(e.Width)
	b[9], b[10], b[11] = 0, 0, 0
	engine.PutUint32(b[12:16], uint32(e.Offset)) //nolint: gosec

	return offset + ColumnEntrySize
}

// Bytes returns the 16-byte encoding of the entry.
func (e *ColumnEntry) Bytes(engine endian.EndianEngine) []byte {
	b := make([]byte, ColumnEntrySize)
	e.WriteToSlice(b, 0, engine)

	return b
}

// ParseColumnEntry parses an entry from the start of data.
//
// Returns:
//   - ColumnEntry: parsed entry, Length left zero
//   - error: ErrInvalidIndexEntrySize if data is too short or the width is unsupported
func ParseColumnEntry(data []byte, engine endian.EndianEngine) (ColumnEntry, error) {
	if len(data) < ColumnEntrySize {
		return ColumnEntry{}, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidIndexEntrySize, len(data))
	}

	width := int(data[columnEntryWidthByte])
	if !endian.ValidCellWidth(width) {
		return ColumnEntry{}, fmt.Errorf("%w: unsupported cell width %d", errs.ErrInvalidIndexEntrySize, width)
	}

	return ColumnEntry{
		ID:     engine.Uint64(data[0:8]),
		Width:  width,
		Offset: int(engine.Uint32(data[12:16])),
	}, nil
}

// ParseColumnIndex parses count consecutive entries and derives each payload length
// from the following entry's offset. payloadSize is the total size of the payload
// section.
//
// Returns:
//   - []ColumnEntry: entries in index order
//   - error: ErrInvalidIndexEntrySize for truncated data, ErrInvalidPayloadOffset for
//     offsets that decrease or point past the payload section
func ParseColumnIndex(data []byte, count int, payloadSize int, engine endian.EndianEngine) ([]ColumnEntry, error) {
	if len(data) < count*ColumnEntrySize {
		return nil, fmt.Errorf("%w: index holds %d bytes, need %d", errs.ErrInvalidIndexEntrySize, len(data), count*ColumnEntrySize)
	}

	entries := make([]ColumnEntry, count)
	for i := range entries {
		e, err := ParseColumnEntry(data[i*ColumnEntrySize:], engine)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	for i := range entries {
		end := payloadSize
		if i+1 < len(entries) {
			end = entries[i+1].Offset
		}
		if entries[i].Offset > end || end > payloadSize {
			return nil, fmt.Errorf("%w: column %d spans [%d, %d) of %d payload bytes",
				errs.ErrInvalidPayloadOffset, i, entries[i].Offset, end, payloadSize)
		}
		entries[i].Length = end - entries[i].Offset
	}

	return entries, nil
}

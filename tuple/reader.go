package tuple

import (
	"fmt"
	"iter"
	"time"

	"github.com/arloliu/pec/compress"
	"github.com/arloliu/pec/encoding"
	"github.com/arloliu/pec/endian"
	"github.com/arloliu/pec/errs"
	"github.com/arloliu/pec/format"
	ienc "github.com/arloliu/pec/internal/encoding"
	"github.com/arloliu/pec/internal/hash"
	"github.com/arloliu/pec/internal/pool"
	"github.com/arloliu/pec/record"
	"github.com/arloliu/pec/section"
)

// ColumnInfo describes one stored column.
type ColumnInfo struct {
	// Name is empty unless the tuple carries a column names payload.
	Name string
	ID   uint64
	// Width is the cell size in bytes.
	Width int
	// StoredSize is the compressed payload size in bytes.
	StoredSize int
}

// Reader decodes a tuple produced by Writer.
type Reader struct {
	header   section.TupleHeader
	engine   endian.EndianEngine
	entries  []section.ColumnEntry
	names    []string
	payloads [][]byte
	decoders []encoding.CellDecoder
	// schemaOK is set once a record of the tuple's kind matched the columns.
	schemaOK bool
}

// NewReader validates data and decompresses every column.
//
// The returned Reader does not retain data.
//
// Returns:
//   - *Reader: reader positioned on the decoded tuple
//   - error: a header, index or payload error from package errs, ErrChecksumMismatch for
//     corrupted payloads, ErrHashMismatch if stored names do not match the column IDs
func NewReader(data []byte) (*Reader, error) {
	header, err := section.ParseTupleHeader(data)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		header: header,
		engine: header.Flag.GetEndianEngine(),
	}

	if err := r.parseNames(data); err != nil {
		return nil, err
	}

	indexEnd := int(header.IndexOffset) + section.ColumnEntrySize*int(header.ColumnCount)
	if int(header.PayloadOffset) != indexEnd || indexEnd > len(data) {
		return nil, fmt.Errorf("%w: payload offset %d, index ends at %d, tuple size %d",
			errs.ErrInvalidPayloadOffset, header.PayloadOffset, indexEnd, len(data))
	}

	payload := data[header.PayloadOffset:]
	if sum := hash.Checksum(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: stored 0x%08x, computed 0x%08x", errs.ErrChecksumMismatch, header.Checksum, sum)
	}

	r.entries, err = section.ParseColumnIndex(data[header.IndexOffset:indexEnd], int(header.ColumnCount), len(payload), r.engine)
	if err != nil {
		return nil, err
	}

	if r.names != nil {
		ids := make([]uint64, len(r.entries))
		for i := range r.entries {
			ids[i] = r.entries[i].ID
		}
		if err := ienc.VerifyColumnNames(r.names, ids, hash.ColumnID); err != nil {
			return nil, err
		}
	}

	if err := r.decompress(payload); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Reader) parseNames(data []byte) error {
	if !r.header.Flag.HasColumnNames() {
		if r.header.IndexOffset != section.IndexOffsetOffset {
			return fmt.Errorf("%w: index offset %d without column names", errs.ErrInvalidPayloadOffset, r.header.IndexOffset)
		}

		return nil
	}

	end := int(r.header.IndexOffset)
	if end < section.HeaderSize || end > len(data) {
		return fmt.Errorf("%w: index offset %d outside tuple of %d bytes", errs.ErrInvalidPayloadOffset, end, len(data))
	}

	names, n, err := ienc.DecodeColumnNames(data[section.HeaderSize:end], r.engine)
	if err != nil {
		return err
	}
	if section.HeaderSize+n != end {
		return fmt.Errorf("%w: %d trailing bytes before the column index", errs.ErrInvalidColumnNamesPayload, end-section.HeaderSize-n)
	}
	r.names = names

	return nil
}

func (r *Reader) decompress(payload []byte) error {
	codec, err := compress.GetCodec(r.header.Flag.Compression)
	if err != nil {
		return err
	}

	rows := r.Len()
	r.payloads = make([][]byte, len(r.entries))
	r.decoders = make([]encoding.CellDecoder, len(r.entries))

	for i, e := range r.entries {
		stored := payload[e.Offset : e.Offset+e.Length]
		raw, err := codec.Decompress(stored)
		if err != nil {
			return fmt.Errorf("failed to decompress column %d: %w", i, err)
		}
		if len(raw) != rows*e.Width {
			return fmt.Errorf("%w: column %d holds %d bytes, want %d rows of %d bytes",
				errs.ErrInvalidPayloadOffset, i, len(raw), rows, e.Width)
		}

		// the no-op codec aliases its input, which belongs to the caller
		if r.header.Flag.Compression == format.CompressionNone {
			raw = append([]byte(nil), raw...)
		}
		r.payloads[i] = raw
		r.decoders[i] = encoding.NewCellDecoder(r.engine, e.Width)
	}

	return nil
}

// Kind returns the record kind stored in every row.
func (r *Reader) Kind() format.RecordKind {
	return r.header.Flag.Kind
}

// Len returns the number of rows.
func (r *Reader) Len() int {
	return int(r.header.RowCount)
}

// Compression returns the codec of the column payloads.
func (r *Reader) Compression() format.CompressionType {
	return r.header.Flag.Compression
}

// CreatedAt returns the creation time recorded by the writer.
func (r *Reader) CreatedAt() time.Time {
	return r.header.CreatedAtTime()
}

// IsBigEndian reports the byte order of the tuple.
func (r *Reader) IsBigEndian() bool {
	return r.header.Flag.IsBigEndian()
}

// HasColumnNames reports whether the tuple carries a column names payload.
func (r *Reader) HasColumnNames() bool {
	return r.names != nil
}

// Header returns a copy of the parsed header.
func (r *Reader) Header() section.TupleHeader {
	return r.header
}

// Columns describes the stored columns in index order.
func (r *Reader) Columns() []ColumnInfo {
	cols := make([]ColumnInfo, len(r.entries))
	for i, e := range r.entries {
		cols[i] = ColumnInfo{ID: e.ID, Width: e.Width, StoredSize: e.Length}
		if r.names != nil {
			cols[i].Name = r.names[i]
		}
	}

	return cols
}

// Column returns the raw cells of the named column, one per row.
//
// Returns:
//   - []uint64: cells in row order
//   - error: ErrColumnNotFound if no column has that name
func (r *Reader) Column(name string) ([]uint64, error) {
	idx, err := r.columnIndex(name)
	if err != nil {
		return nil, err
	}

	return r.decoders[idx].DecodeInto(make([]uint64, 0, r.Len()), r.payloads[idx], r.Len())
}

func (r *Reader) columnIndex(name string) (int, error) {
	if r.names != nil {
		for i, n := range r.names {
			if n == name {
				return i, nil
			}
		}
	} else {
		id := hash.ColumnID(name)
		for i := range r.entries {
			if r.entries[i].ID == id {
				return i, nil
			}
		}
	}

	return -1, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
}

// Load replaces the content of rec with row.
//
// Returns:
//   - error: ErrOutOfRange for a row outside [0, Len()), ErrSchemaMismatch if rec is of
//     another kind or its columns differ from the stored ones
func (r *Reader) Load(row int, rec record.Record) error {
	if row < 0 || row >= r.Len() {
		return fmt.Errorf("%w: row %d of %d", errs.ErrOutOfRange, row, r.Len())
	}

	if err := r.checkSchema(rec); err != nil {
		return err
	}

	cells, cleanup := pool.GetCellSlice(len(r.entries))
	defer cleanup()

	return r.loadRow(row, rec, cells)
}

// Rows loads every row into rec in turn and yields its index. rec is overwritten on
// each step. Iteration stops after the first error.
func (r *Reader) Rows(rec record.Record) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		if err := r.checkSchema(rec); err != nil {
			yield(-1, err)
			return
		}

		cells, cleanup := pool.GetCellSlice(len(r.entries))
		defer cleanup()

		for row := range r.Len() {
			err := r.loadRow(row, rec, cells)
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

func (r *Reader) loadRow(row int, rec record.Record, cells []uint64) error {
	rows := r.Len()
	for i, d := range r.decoders {
		cell, ok := d.At(r.payloads[i], row, rows)
		if !ok {
			return fmt.Errorf("%w: column %d has no cell for row %d", errs.ErrInvalidPayloadOffset, i, row)
		}
		cells[i] = cell
	}

	return rec.LoadCells(cells)
}

// checkSchema verifies rec against the stored columns. All records of one kind share a
// schema, so a successful check is remembered.
func (r *Reader) checkSchema(rec record.Record) error {
	if rec.Kind() != r.Kind() {
		return fmt.Errorf("%w: %s record for %s tuple", errs.ErrSchemaMismatch, rec.Kind(), r.Kind())
	}

	if r.schemaOK {
		return nil
	}

	cols := rec.Columns()
	if len(cols) != len(r.entries) {
		return fmt.Errorf("%w: record has %d columns, tuple has %d", errs.ErrSchemaMismatch, len(cols), len(r.entries))
	}

	for i, col := range cols {
		e := r.entries[i]
		if hash.ColumnID(col.Name) != e.ID || col.Width != e.Width {
			return fmt.Errorf("%w: column %d is %q/%d bytes in the record", errs.ErrSchemaMismatch, i, col.Name, col.Width)
		}
		if r.names != nil && r.names[i] != col.Name {
			return fmt.Errorf("%w: column %d is %q in the tuple, %q in the record", errs.ErrSchemaMismatch, i, r.names[i], col.Name)
		}
	}
	r.schemaOK = true

	return nil
}

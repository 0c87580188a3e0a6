package tuple

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/pec/compress"
	"github.com/arloliu/pec/encoding"
	"github.com/arloliu/pec/errs"
	"github.com/arloliu/pec/internal/collision"
	ienc "github.com/arloliu/pec/internal/encoding"
	"github.com/arloliu/pec/internal/hash"
	"github.com/arloliu/pec/internal/options"
	"github.com/arloliu/pec/internal/pool"
	"github.com/arloliu/pec/record"
	"github.com/arloliu/pec/section"
)

// Writer collects records of type R and encodes them into a tuple.
type Writer[R record.Record] struct {
	config   *WriterConfig
	scratch  R
	columns  []record.Column
	entries  []section.ColumnEntry
	encoders []*encoding.CellEncoder
	tracker  *collision.Tracker
	row      []uint64
	rows     int
	finished bool
}

// NewWriter creates a writer for the records built by newRecord.
//
// newRecord is called once; the record it returns is the buffer lent to Fill callbacks
// and defines the kind and column schema of the tuple.
//
// Parameters:
//   - newRecord: constructor of the record type, e.g. record.NewLepton
//   - opts: writer options
//
// Returns:
//   - *Writer[R]: ready-to-use writer
//   - error: if an option is invalid or the record schema is unusable
func NewWriter[R record.Record](newRecord func() R, opts ...WriterOption) (*Writer[R], error) {
	scratch := newRecord()
	config := newWriterConfig(scratch.Kind())
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	columns := scratch.Columns()
	if len(columns) == 0 || len(columns) > section.MaxColumns {
		return nil, fmt.Errorf("%w: %s has %d columns", errs.ErrInvalidArgument, scratch.Kind(), len(columns))
	}

	w := &Writer[R]{
		config:   config,
		scratch:  scratch,
		columns:  columns,
		entries:  make([]section.ColumnEntry, len(columns)),
		encoders: make([]*encoding.CellEncoder, len(columns)),
		tracker:  collision.NewTracker(),
		row:      make([]uint64, 0, len(columns)),
	}

	for i, col := range columns {
		id := config.columnID(col.Name)
		if err := w.tracker.TrackColumn(col.Name, id); err != nil {
			return nil, err
		}
		if col.Width != 1 && col.Width != 2 && col.Width != 4 {
			return nil, fmt.Errorf("%w: column %q has width %d", errs.ErrInvalidArgument, col.Name, col.Width)
		}
		w.entries[i] = section.NewColumnEntry(id, col.Width)
	}

	for i, col := range columns {
		w.encoders[i] = encoding.NewCellEncoder(config.engine, col.Width)
	}

	if w.tracker.HasCollision() {
		config.logger.Warn("column ID collision, storing column names",
			zap.Stringer("kind", scratch.Kind()),
			zap.Strings("columns", w.tracker.Names()))
	}

	return w, nil
}

// Fill resets the writer's record, passes it to fn and appends it unless fn fails.
//
// The record is only valid during the call; fn must not retain it.
func (w *Writer[R]) Fill(fn func(rec R) error) error {
	if err := w.checkWritable(); err != nil {
		return err
	}

	w.scratch.Reset()
	if err := fn(w.scratch); err != nil {
		return err
	}

	return w.append(w.scratch)
}

// Append appends a copy of rec's current values.
func (w *Writer[R]) Append(rec R) error {
	if err := w.checkWritable(); err != nil {
		return err
	}

	return w.append(rec)
}

// Len returns the number of appended rows.
func (w *Writer[R]) Len() int {
	return w.rows
}

func (w *Writer[R]) checkWritable() error {
	if w.finished {
		return errs.ErrWriterFinished
	}

	if uint64(w.rows) >= section.MaxRows {
		return fmt.Errorf("%w: limit is %d", errs.ErrTooManyRows, uint64(section.MaxRows))
	}

	return nil
}

func (w *Writer[R]) append(rec R) error {
	if kind := rec.Kind(); kind != w.config.header.Flag.Kind {
		return fmt.Errorf("%w: got %s record for %s tuple", errs.ErrSchemaMismatch, kind, w.config.header.Flag.Kind)
	}

	w.row = rec.AppendCells(w.row[:0])
	if len(w.row) != len(w.encoders) {
		return fmt.Errorf("%w: record produced %d cells for %d columns", errs.ErrSchemaMismatch, len(w.row), len(w.encoders))
	}

	for i, cell := range w.row {
		w.encoders[i].Write(cell)
	}
	w.rows++

	return nil
}

// Finish encodes all rows and returns the tuple. The writer cannot be used afterwards,
// whether or not Finish succeeds.
//
// Returns:
//   - []byte: the encoded tuple, owned by the caller
//   - error: ErrNoRowsAdded for an empty writer, ErrWriterFinished on a second call, or
//     a compression or size error
func (w *Writer[R]) Finish() ([]byte, error) {
	if w.finished {
		return nil, errs.ErrWriterFinished
	}
	w.finished = true

	defer func() {
		for _, enc := range w.encoders {
			enc.Finish()
		}
	}()

	if w.rows == 0 {
		return nil, errs.ErrNoRowsAdded
	}

	codec, err := compress.GetCodec(w.config.header.Flag.Compression)
	if err != nil {
		return nil, err
	}

	header := *w.config.header
	header.ColumnCount = uint16(len(w.entries)) //nolint: gosec
	header.RowCount = uint32(w.rows)            //nolint: gosec

	var names []byte
	if w.config.keepNames || w.tracker.HasCollision() {
		header.Flag.SetHasColumnNames(true)
		names, err = ienc.AppendColumnNames(nil, w.tracker.Names(), w.config.engine)
		if err != nil {
			return nil, fmt.Errorf("failed to encode column names: %w", err)
		}
	}

	stats := compress.CompressionStats{Algorithm: header.Flag.Compression}
	digest := hash.NewPayloadDigest()
	payloads := make([][]byte, len(w.encoders))
	payloadSize := 0

	for i, enc := range w.encoders {
		payload, err := codec.Compress(enc.Bytes())
		if err != nil {
			return nil, fmt.Errorf("failed to compress column %q: %w", w.columns[i].Name, err)
		}
		stats.Add(enc.Size(), len(payload))
		digest.Write(payload)

		w.entries[i].Offset = payloadSize
		w.entries[i].Length = len(payload)
		payloads[i] = payload
		payloadSize += len(payload)
	}

	header.IndexOffset = uint32(section.HeaderSize + len(names))                               //nolint: gosec
	header.PayloadOffset = header.IndexOffset + uint32(section.ColumnEntrySize*len(w.entries)) //nolint: gosec
	header.Checksum = digest.Sum32()

	total := int(header.PayloadOffset) + payloadSize
	if uint64(total) > section.MaxPayloadOffset {
		return nil, fmt.Errorf("%w: tuple of %d bytes exceeds the 4 GiB offset range", errs.ErrTooManyRows, total)
	}

	buf := pool.GetTupleBuffer()
	defer pool.PutTupleBuffer(buf)

	buf.ExtendOrGrow(int(header.PayloadOffset))
	data := buf.Bytes()
	header.WriteToSlice(data)
	copy(data[section.HeaderSize:], names)

	offset := int(header.IndexOffset)
	for i := range w.entries {
		offset = w.entries[i].WriteToSlice(data, offset, w.config.engine)
	}

	for _, payload := range payloads {
		buf.MustWrite(payload)
	}

	w.config.logger.Debug("tuple finished",
		zap.Stringer("kind", header.Flag.Kind),
		zap.Int("rows", w.rows),
		zap.Int("columns", len(w.entries)),
		zap.Bool("column_names", header.Flag.HasColumnNames()),
		zap.Stringer("compression", stats.Algorithm),
		zap.Int64("original_bytes", stats.OriginalSize),
		zap.Int64("compressed_bytes", stats.CompressedSize),
		zap.Float64("space_savings_pct", stats.SpaceSavings()),
		zap.Int("tuple_bytes", total))

	return slices.Clone(buf.Bytes()), nil
}

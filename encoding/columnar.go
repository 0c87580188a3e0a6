package encoding

import "iter"

// ColumnarEncoder accumulates the values of one column.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded payload.
	// The returned slice is valid until the next Write, WriteSlice or Finish call and
	// must not be modified.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the payload size in bytes.
	Size() int

	// Reset clears encoder state but keeps the accumulated payload.
	Reset()

	// Finish returns buffer resources to the pool. The encoder is unusable afterwards
	// and further calls to Write, WriteSlice, Bytes or Size panic.
	//
	//	encoder := NewCellEncoder(engine, 2)
	//	defer encoder.Finish()
	Finish()

	// Write appends a single value.
	Write(data T)

	// WriteSlice appends values in order.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values produced by the matching ColumnarEncoder.
type ColumnarDecoder[T comparable] interface {
	// All yields up to count values decoded from data. Truncated data yields nothing.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index. The second result is false when index is not in
	// [0, count) or data is too short.
	At(data []byte, index int, count int) (T, bool)
}

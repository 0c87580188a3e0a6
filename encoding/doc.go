// Package encoding provides the columnar encoding interfaces used by pec tuples and the
// fixed-width cell encoder that implements them.
//
// A tuple stores every record column as one contiguous payload. Each row contributes a
// single cell of the column's width (1, 2, 4 or 8 bytes) written in the tuple's byte
// order; the raw cell values are the narrow integers held by the record types, e.g. a
// 16-bit minifloat or a packed parton-code byte.
//
// # Usage
//
//	enc := encoding.NewCellEncoder(endian.GetLittleEndianEngine(), 2)
//	defer enc.Finish()
//
//	enc.Write(0x3C00)
//	enc.WriteSlice([]uint64{0x3800, 0x4000})
//	payload := enc.Bytes()
//
//	dec := encoding.NewCellDecoder(endian.GetLittleEndianEngine(), 2)
//	for cell := range dec.All(payload, 3) {
//	    // ...
//	}
//
// Custom encoders only need to satisfy ColumnarEncoder[T] and ColumnarDecoder[T].
//
// # Thread Safety
//
// Encoders are not safe for concurrent use. Decoders are immutable values and may be
// shared freely.
package encoding

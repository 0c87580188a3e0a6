package section

import "math"

const (
	// Option bit masks
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ColumnNamesMask  = 0x0002 // Mask for column names payload bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicTupleV1Opt is the version 1 magic number of the tuple format (bits 4-15).
	MagicTupleV1Opt = 0xEC10
)

// Offsets and section sizes in a tuple.
const (
	HeaderSize           = 32             // fixed header size in bytes
	ColumnEntrySize      = 16             // fixed column index entry size in bytes
	IndexOffsetOffset    = HeaderSize     // index start when no column names payload is present
	MaxColumns           = math.MaxUint16 // column count is stored in 2 bytes
	MaxRows              = math.MaxUint32 // row count is stored in 4 bytes
	MaxPayloadOffset     = math.MaxUint32 // payload offsets are stored in 4 bytes
	columnEntryWidthByte = 8
)

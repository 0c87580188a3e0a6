package section

import (
	"fmt"

	"github.com/arloliu/pec/endian"
	"github.com/arloliu/pec/errs"
	"github.com/arloliu/pec/format"
)

// TupleFlag holds the packed leading fields of a tuple header.
type TupleFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 marks the presence of a column names payload.
	// Bits 2-3 are reserved and must be 0.
	// Bits 4-15 hold the magic number, 0xEC10 for tuple format v1.
	Options uint16

	// Kind identifies the record type stored in every row.
	Kind format.RecordKind

	// Compression is the codec applied to each column payload.
	Compression format.CompressionType
}

// NewTupleFlag creates a little-endian, zstd-compressed flag for kind.
func NewTupleFlag(kind format.RecordKind) TupleFlag {
	return TupleFlag{
		Options:     MagicTupleV1Opt,
		Kind:        kind,
		Compression: format.CompressionZstd,
	}
}

func (f TupleFlag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

func (f TupleFlag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

func (f *TupleFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

func (f *TupleFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// HasColumnNames reports whether a column names payload follows the header.
func (f TupleFlag) HasColumnNames() bool {
	return f.Options&ColumnNamesMask != 0
}

// SetHasColumnNames records whether a column names payload follows the header.
func (f *TupleFlag) SetHasColumnNames(enabled bool) {
	if enabled {
		f.Options |= ColumnNamesMask
	} else {
		f.Options &^= ColumnNamesMask
	}
}

// GetMagicNumber returns the magic number bits of Options.
func (f TupleFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f TupleFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicTupleV1Opt
}

func (f TupleFlag) isValidCompression() bool {
	switch f.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return true
	default:
		return false
	}
}

// Validate checks the magic number, the reserved bits, the record kind and the compression.
func (f TupleFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: %#04x", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved option bits set", errs.ErrInvalidHeaderFlags)
	}

	if !f.Kind.IsValid() {
		return fmt.Errorf("%w: unknown record kind %d", errs.ErrInvalidHeaderFlags, f.Kind)
	}

	if !f.isValidCompression() {
		return fmt.Errorf("%w: unknown compression %d", errs.ErrInvalidHeaderFlags, f.Compression)
	}

	return nil
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f TupleFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

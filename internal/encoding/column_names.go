package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/pec/endian"
	"github.com/arloliu/pec/errs"
)

// ColumnNamesSize returns the encoded size of names.
func ColumnNamesSize(names []string) int {
	size := 2
	for _, name := range names {
		size += 2 + len(name)
	}

	return size
}

// AppendColumnNames appends the column names payload to dst.
//
// Parameters:
//   - dst: buffer to append to
//   - names: column names in index order
//   - engine: byte order of the length fields
//
// Returns:
//   - []byte: the extended buffer
//   - error: ErrInvalidColumnNamesCount for more than 65535 names, ErrInvalidColumnName
//     for a name longer than 65535 bytes
func AppendColumnNames(dst []byte, names []string, engine endian.EndianEngine) ([]byte, error) {
	if len(names) > math.MaxUint16 {
		return dst, fmt.Errorf("%w: %d names exceed maximum %d", errs.ErrInvalidColumnNamesCount, len(names), math.MaxUint16)
	}

	for _, name := range names {
		if len(name) > math.MaxUint16 {
			return dst, fmt.Errorf("%w: name of %d bytes exceeds maximum %d", errs.ErrInvalidColumnName, len(name), math.MaxUint16)
		}
	}

	dst = engine.AppendUint16(dst, uint16(len(names))) //nolint: gosec
	for _, name := range names {
		dst = engine.AppendUint16(dst, uint16(len(name))) //nolint: gosec
		dst = append(dst, name...)
	}

	return dst, nil
}

// DecodeColumnNames parses a column names payload from the start of data.
//
// Returns:
//   - []string: names in index order
//   - int: bytes consumed
//   - error: ErrInvalidColumnNamesPayload if data is truncated
func DecodeColumnNames(data []byte, engine endian.EndianEngine) ([]string, int, error) {
	if len(data) < 2 {
		return nil, 0, fmt.Errorf("%w: cannot read names count (need 2 bytes, have %d)", errs.ErrInvalidColumnNamesPayload, len(data))
	}

	count := int(engine.Uint16(data))
	offset := 2
	names := make([]string, count)

	for i := range names {
		if len(data) < offset+2 {
			return nil, 0, fmt.Errorf("%w: cannot read length of name %d at offset %d",
				errs.ErrInvalidColumnNamesPayload, i, offset)
		}
		n := int(engine.Uint16(data[offset:]))
		offset += 2

		if len(data) < offset+n {
			return nil, 0, fmt.Errorf("%w: name %d needs %d bytes at offset %d, have %d total",
				errs.ErrInvalidColumnNamesPayload, i, n, offset, len(data))
		}
		names[i] = string(data[offset : offset+n])
		offset += n
	}

	return names, offset, nil
}

// VerifyColumnNames checks that hashFunc(names[i]) equals ids[i] for every column.
//
// Returns:
//   - error: ErrInvalidColumnNamesCount if the lengths differ, ErrHashMismatch for the
//     first mismatching name
func VerifyColumnNames(names []string, ids []uint64, hashFunc func(string) uint64) error {
	if len(names) != len(ids) {
		return fmt.Errorf("%w: %d names for %d columns", errs.ErrInvalidColumnNamesCount, len(names), len(ids))
	}

	for i, name := range names {
		if want := hashFunc(name); want != ids[i] {
			return fmt.Errorf("%w: column %q at index %d: expected 0x%016x, got 0x%016x",
				errs.ErrHashMismatch, name, i, want, ids[i])
		}
	}

	return nil
}

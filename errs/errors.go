// Package errs defines the sentinel errors returned by pec packages.
//
// Errors are wrapped with context at the call site using fmt.Errorf("%w: ...") and
// should be matched with errors.Is.
package errs

import "errors"

// Validation errors raised by record setters and packers.
var (
	// ErrOutOfRange indicates an index argument outside its valid domain, such as an
	// initial-parton index other than 0 or 1.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument indicates a physical quantity or logical code outside its
	// legal domain, such as a zero lepton charge or a parton code outside [-5, 10].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFormat indicates a minifloat format that does not describe a usable cell.
	ErrInvalidFormat = errors.New("invalid minifloat format")
)

// Tuple file errors.
var (
	ErrInvalidHeaderSize         = errors.New("invalid header size")
	ErrInvalidHeaderFlags        = errors.New("invalid header flags")
	ErrInvalidMagicNumber        = errors.New("invalid magic number")
	ErrInvalidIndexEntrySize     = errors.New("invalid index entry size")
	ErrInvalidPayloadOffset      = errors.New("invalid payload offset")
	ErrChecksumMismatch          = errors.New("payload checksum mismatch")
	ErrHashMismatch              = errors.New("column name hash mismatch")
	ErrInvalidColumnName         = errors.New("invalid column name")
	ErrInvalidColumnNamesCount   = errors.New("invalid column names count")
	ErrInvalidColumnNamesPayload = errors.New("invalid column names payload")
	ErrColumnNotFound            = errors.New("column not found")
	ErrSchemaMismatch            = errors.New("record schema does not match tuple columns")
	ErrNoRowsAdded               = errors.New("no rows added")
	ErrTooManyRows               = errors.New("too many rows")
	ErrWriterFinished            = errors.New("writer already finished")
)

package record

import (
	"fmt"

	"github.com/arloliu/pec/errs"
	"github.com/arloliu/pec/format"
)

// Column describes one persisted cell of a record.
type Column struct {
	// Name is unique within a record kind.
	Name string
	// Width is the cell size in bytes: 1, 2 or 4.
	Width int
}

// Record is implemented by every persisted record type.
type Record interface {
	// Reset returns the record to the state right after construction.
	Reset()
	// Kind identifies the record type.
	Kind() format.RecordKind
	// Columns returns the fixed column schema. The slice must not be modified.
	Columns() []Column
	// AppendCells appends the raw cell of each column, in schema order, to dst.
	AppendCells(dst []uint64) []uint64
	// LoadCells replaces the record content with the raw cells in src.
	LoadCells(src []uint64) error
}

// checkCells verifies that a row matches the schema size.
func checkCells(kind format.RecordKind, src []uint64, want int) error {
	if len(src) != want {
		return fmt.Errorf("%w: %s expects %d cells, got %d", errs.ErrInvalidArgument, kind, want, len(src))
	}

	return nil
}

func boolCell(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}

// New returns a reset record of the given kind.
//
// Returns:
//   - Record: *GeneratorInfo, *Lepton or *PileUpInfo
//   - error: ErrInvalidArgument for an unknown kind
func New(kind format.RecordKind) (Record, error) {
	switch kind {
	case format.KindGeneratorInfo:
		return NewGeneratorInfo(), nil
	case format.KindLepton:
		return NewLepton(), nil
	case format.KindPileUpInfo:
		return NewPileUpInfo(), nil
	default:
		return nil, fmt.Errorf("%w: unknown record kind %d", errs.ErrInvalidArgument, kind)
	}
}

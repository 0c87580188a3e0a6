package record

import (
	"fmt"
	"math"

	"github.com/arloliu/pec/errs"
	"github.com/arloliu/pec/format"
	"github.com/arloliu/pec/minifloat"
)

// Lepton is a charged lepton candidate.
//
// Relative isolation and the transverse impact parameter are stored as 16-bit
// minifloats (minifloat.RelIsoFormat and minifloat.ImpactParameterFormat).
type Lepton struct {
	CandidateWithID

	// true for negative charge
	charge bool
	relIso uint16
	dB     uint16
}

var _ Record = (*Lepton)(nil)

// NewLepton returns a Lepton in the reset state.
func NewLepton() *Lepton {
	return &Lepton{}
}

// Reset restores the state right after construction.
func (l *Lepton) Reset() {
	l.CandidateWithID.Reset()
	l.charge = false
	l.relIso = 0
	l.dB = 0
}

// SetCharge sets the electric charge. Only the sign of q is examined; zero is rejected.
func (l *Lepton) SetCharge(q int) error {
	if q == 0 {
		return fmt.Errorf("%w: lepton charge must be nonzero", errs.ErrInvalidArgument)
	}
	l.charge = q < 0

	return nil
}

// Charge returns +1 or -1.
func (l *Lepton) Charge() int {
	if l.charge {
		return -1
	}

	return 1
}

// SetRelIso sets the relative isolation.
func (l *Lepton) SetRelIso(relIso float64) error {
	if relIso < 0 || math.IsNaN(relIso) {
		return fmt.Errorf("%w: relative isolation %v", errs.ErrInvalidArgument, relIso)
	}
	l.relIso = minifloat.RelIso.Encode(relIso)

	return nil
}

// RelIso returns the relative isolation.
func (l *Lepton) RelIso() float64 { return minifloat.RelIso.Decode(l.relIso) }

// SetDB sets the transverse impact parameter, cm. Only the magnitude is stored.
func (l *Lepton) SetDB(dB float64) error {
	if math.IsNaN(dB) {
		return fmt.Errorf("%w: impact parameter is NaN", errs.ErrInvalidArgument)
	}
	l.dB = minifloat.ImpactParameter.Encode(math.Abs(dB))

	return nil
}

// DB returns the transverse impact parameter, cm. The result is never negative.
func (l *Lepton) DB() float64 { return minifloat.ImpactParameter.Decode(l.dB) }

// Kind returns KindLepton.
func (l *Lepton) Kind() format.RecordKind { return format.KindLepton }

var leptonColumns = append(candidateWithIDColumns[:len(candidateWithIDColumns):len(candidateWithIDColumns)],
	Column{Name: "charge", Width: 1},
	Column{Name: "relIso", Width: 2},
	Column{Name: "dB", Width: 2},
)

// Columns returns the stored columns in cell order.
func (l *Lepton) Columns() []Column { return leptonColumns }

// AppendCells appends the encoded fields to dst in column order.
func (l *Lepton) AppendCells(dst []uint64) []uint64 {
	dst = l.CandidateWithID.appendCells(dst)

	return append(dst, boolCell(l.charge), uint64(l.relIso), uint64(l.dB))
}

// LoadCells replaces the fields with the cells in src.
func (l *Lepton) LoadCells(src []uint64) error {
	if err := checkCells(l.Kind(), src, len(leptonColumns)); err != nil {
		return err
	}

	l.CandidateWithID.loadCells(src)
	n := len(candidateWithIDColumns)
	l.charge = src[n] != 0
	l.relIso = uint16(src[n+1])
	l.dB = uint16(src[n+2])

	return nil
}

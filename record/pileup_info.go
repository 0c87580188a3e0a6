package record

import (
	"fmt"
	"math"

	"github.com/arloliu/pec/errs"
	"github.com/arloliu/pec/format"
	"github.com/arloliu/pec/minifloat"
)

// PileUpInfo describes additional proton-proton interactions in an event.
type PileUpInfo struct {
	numPV       uint8
	rho         uint16
	trueNumPU   uint16
	inTimeNumPU uint8
}

var _ Record = (*PileUpInfo)(nil)

// NewPileUpInfo returns a PileUpInfo in the reset state.
func NewPileUpInfo() *PileUpInfo {
	return &PileUpInfo{}
}

// Reset zeroes every field.
func (p *PileUpInfo) Reset() {
	*p = PileUpInfo{}
}

// SetNumPV sets the number of good reconstructed primary vertices. Counts above 255 saturate.
func (p *PileUpInfo) SetNumPV(n int) error {
	v, err := countCell("primary vertices", n)
	if err != nil {
		return err
	}
	p.numPV = v

	return nil
}

// SetRho sets the mean angular energy density, GeV.
func (p *PileUpInfo) SetRho(rho float64) error {
	if rho < 0 || math.IsNaN(rho) {
		return fmt.Errorf("%w: rho %v", errs.ErrInvalidArgument, rho)
	}
	p.rho = minifloat.Rho.Encode(rho)

	return nil
}

// SetTrueNumPU sets the expected number of pile-up interactions.
func (p *PileUpInfo) SetTrueNumPU(lambda float64) error {
	if lambda < 0 || math.IsNaN(lambda) {
		return fmt.Errorf("%w: expected pile-up %v", errs.ErrInvalidArgument, lambda)
	}
	p.trueNumPU = minifloat.TrueNumPU.Encode(lambda)

	return nil
}

// SetInTimeNumPU sets the number of pile-up interactions in the triggered bunch crossing.
// Counts above 255 saturate.
func (p *PileUpInfo) SetInTimeNumPU(n int) error {
	v, err := countCell("in-time pile-up interactions", n)
	if err != nil {
		return err
	}
	p.inTimeNumPU = v

	return nil
}

// NumPV returns the number of primary vertices.
func (p *PileUpInfo) NumPV() int { return int(p.numPV) }

// Rho returns the mean energy density, GeV.
func (p *PileUpInfo) Rho() float64 { return minifloat.Rho.Decode(p.rho) }

// TrueNumPU returns the expected pile-up.
func (p *PileUpInfo) TrueNumPU() float64 { return minifloat.TrueNumPU.Decode(p.trueNumPU) }

// InTimeNumPU returns the in-time pile-up count.
func (p *PileUpInfo) InTimeNumPU() int { return int(p.inTimeNumPU) }

// Kind returns KindPileUpInfo.
func (p *PileUpInfo) Kind() format.RecordKind { return format.KindPileUpInfo }

var pileUpInfoColumns = []Column{
	{Name: "numPV", Width: 1},
	{Name: "rho", Width: 2},
	{Name: "trueNumPU", Width: 2},
	{Name: "inTimeNumPU", Width: 1},
}

// Columns returns the stored columns in cell order.
func (p *PileUpInfo) Columns() []Column { return pileUpInfoColumns }

// AppendCells appends the encoded fields to dst in column order.
func (p *PileUpInfo) AppendCells(dst []uint64) []uint64 {
	return append(dst, uint64(p.numPV), uint64(p.rho), uint64(p.trueNumPU), uint64(p.inTimeNumPU))
}

// LoadCells replaces the fields with the cells in src.
func (p *PileUpInfo) LoadCells(src []uint64) error {
	if err := checkCells(p.Kind(), src, len(pileUpInfoColumns)); err != nil {
		return err
	}

	p.numPV = uint8(src[0])
	p.rho = uint16(src[1])
	p.trueNumPU = uint16(src[2])
	p.inTimeNumPU = uint8(src[3])

	return nil
}

func countCell(what string, n int) (uint8, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative number of %s: %d", errs.ErrInvalidArgument, what, n)
	}

	return uint8(min(n, math.MaxUint8)), nil
}

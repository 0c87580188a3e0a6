package record

import (
	"fmt"
	"math"

	"github.com/arloliu/pec/errs"
	"github.com/arloliu/pec/format"
	"github.com/arloliu/pec/minifloat"
	"github.com/arloliu/pec/nibble"
)

// GeneratorInfo aggregates basic generator-level information of an event.
//
// The weight, the momentum fractions and the PDF scale are stored as 16-bit minifloats,
// see minifloat.WeightFormat, minifloat.PdfXFormat and minifloat.PdfQScaleFormat. The two
// initial parton codes share one byte (package nibble).
type GeneratorInfo struct {
	processID int16
	weight    uint16
	pdfX      [2]uint16
	pdfID     uint8
	pdfQScale uint16
}

var _ Record = (*GeneratorInfo)(nil)

// NewGeneratorInfo returns a GeneratorInfo in the reset state.
func NewGeneratorInfo() *GeneratorInfo {
	g := &GeneratorInfo{}
	g.Reset()

	return g
}

// Reset restores the state right after construction. Both partons become gluons.
func (g *GeneratorInfo) Reset() {
	*g = GeneratorInfo{pdfID: nibble.Sentinel}
}

// SetProcessID sets the generator process ID, which must fit a 16-bit signed integer.
func (g *GeneratorInfo) SetProcessID(id int) error {
	if id < math.MinInt16 || id > math.MaxInt16 {
		return fmt.Errorf("%w: process ID %d does not fit 16 bits", errs.ErrInvalidArgument, id)
	}
	g.processID = int16(id)

	return nil
}

// SetWeight sets the generator-level event weight. Negative weights are legal; NaN is not.
func (g *GeneratorInfo) SetWeight(w float64) error {
	if math.IsNaN(w) {
		return fmt.Errorf("%w: event weight is NaN", errs.ErrInvalidArgument)
	}
	g.weight = minifloat.Weight.Encode(w)

	return nil
}

// SetPdfX sets the momentum fraction carried by initial parton i. Fractions below
// 2^-21 (about 4.8e-7) are legal but read back as exactly zero.
//
// Parameters:
//   - i: parton index, 0 or 1
//   - x: momentum fraction in (0, 1]
//
// Returns:
//   - error: ErrOutOfRange for a bad index, ErrInvalidArgument for an unphysical fraction
func (g *GeneratorInfo) SetPdfX(i int, x float64) error {
	if err := checkParton(i); err != nil {
		return err
	}
	if err := checkPdfX(x); err != nil {
		return err
	}
	g.pdfX[i] = minifloat.PdfX.Encode(x)

	return nil
}

// SetPdfXs sets both momentum fractions. Neither is stored unless both are valid.
func (g *GeneratorInfo) SetPdfXs(x1, x2 float64) error {
	if err := checkPdfX(x1); err != nil {
		return err
	}
	if err := checkPdfX(x2); err != nil {
		return err
	}
	g.pdfX[0] = minifloat.PdfX.Encode(x1)
	g.pdfX[1] = minifloat.PdfX.Encode(x2)

	return nil
}

// SetPdfID sets the code of initial parton i. Gluons must be given as 0, not 21.
func (g *GeneratorInfo) SetPdfID(i, id int) error {
	if err := checkParton(i); err != nil {
		return err
	}

	ids := [2]int{}
	ids[0], ids[1] = nibble.Unpack(g.pdfID)
	ids[i] = id

	packed, err := nibble.Pack(ids[0], ids[1])
	if err != nil {
		return err
	}
	g.pdfID = packed

	return nil
}

// SetPdfIDs sets the codes of both initial partons.
func (g *GeneratorInfo) SetPdfIDs(id1, id2 int) error {
	packed, err := nibble.Pack(id1, id2)
	if err != nil {
		return err
	}
	g.pdfID = packed

	return nil
}

// SetPdfQScale sets the energy scale used to evaluate the PDF, GeV.
func (g *GeneratorInfo) SetPdfQScale(q float64) error {
	if q < 0 || math.IsNaN(q) {
		return fmt.Errorf("%w: PDF scale %v", errs.ErrInvalidArgument, q)
	}
	g.pdfQScale = minifloat.PdfQScale.Encode(q)

	return nil
}

// ProcessID returns the generator process ID.
func (g *GeneratorInfo) ProcessID() int { return int(g.processID) }

// Weight returns the event weight. It may be negative for some generators.
func (g *GeneratorInfo) Weight() float64 { return minifloat.Weight.Decode(g.weight) }

// PdfX returns the momentum fraction of initial parton i.
func (g *GeneratorInfo) PdfX(i int) (float64, error) {
	if err := checkParton(i); err != nil {
		return 0, err
	}

	return minifloat.PdfX.Decode(g.pdfX[i]), nil
}

// PdfID returns the code of initial parton i; gluons are reported as 0.
func (g *GeneratorInfo) PdfID(i int) (int, error) {
	if err := checkParton(i); err != nil {
		return 0, err
	}

	id1, id2 := nibble.Unpack(g.pdfID)
	if i == 0 {
		return id1, nil
	}

	return id2, nil
}

// PdfQScale returns the PDF energy scale, GeV.
func (g *GeneratorInfo) PdfQScale() float64 { return minifloat.PdfQScale.Decode(g.pdfQScale) }

// Kind returns KindGeneratorInfo.
func (g *GeneratorInfo) Kind() format.RecordKind { return format.KindGeneratorInfo }

var generatorInfoColumns = []Column{
	{Name: "processID", Width: 2},
	{Name: "weight", Width: 2},
	{Name: "pdfX1", Width: 2},
	{Name: "pdfX2", Width: 2},
	{Name: "pdfID", Width: 1},
	{Name: "pdfQScale", Width: 2},
}

// Columns returns the stored columns in cell order.
func (g *GeneratorInfo) Columns() []Column { return generatorInfoColumns }

// AppendCells appends the encoded fields to dst in column order.
func (g *GeneratorInfo) AppendCells(dst []uint64) []uint64 {
	return append(dst,
		uint64(uint16(g.processID)),
		uint64(g.weight),
		uint64(g.pdfX[0]),
		uint64(g.pdfX[1]),
		uint64(g.pdfID),
		uint64(g.pdfQScale),
	)
}

// LoadCells replaces the fields with the cells in src.
func (g *GeneratorInfo) LoadCells(src []uint64) error {
	if err := checkCells(g.Kind(), src, len(generatorInfoColumns)); err != nil {
		return err
	}

	g.processID = int16(uint16(src[0]))
	g.weight = uint16(src[1])
	g.pdfX[0] = uint16(src[2])
	g.pdfX[1] = uint16(src[3])
	g.pdfID = uint8(src[4])
	g.pdfQScale = uint16(src[5])

	return nil
}

func checkParton(i int) error {
	if i != 0 && i != 1 {
		return fmt.Errorf("%w: initial parton index %d, expected 0 or 1", errs.ErrOutOfRange, i)
	}

	return nil
}

func checkPdfX(x float64) error {
	if !(x > 0 && x <= 1) {
		return fmt.Errorf("%w: momentum fraction %v not in (0, 1]", errs.ErrInvalidArgument, x)
	}

	return nil
}

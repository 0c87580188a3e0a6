package record

import (
	"fmt"
	"math"

	"github.com/arloliu/pec/errs"
)

// NumIDBits is the number of identification flags carried by a CandidateWithID.
const NumIDBits = 16

// Candidate holds the four-momentum of a reconstructed object.
type Candidate struct {
	pt, eta, phi, mass float32
}

// SetPt sets the transverse momentum, GeV. Negative and NaN values are rejected.
func (c *Candidate) SetPt(pt float64) error {
	if pt < 0 || math.IsNaN(pt) {
		return fmt.Errorf("%w: transverse momentum %v", errs.ErrInvalidArgument, pt)
	}
	c.pt = float32(pt)

	return nil
}

func (c *Candidate) SetEta(eta float64)   { c.eta = float32(eta) }
func (c *Candidate) SetPhi(phi float64)   { c.phi = float32(phi) }
func (c *Candidate) SetMass(mass float64) { c.mass = float32(mass) }

// SetPtEtaPhiM sets the whole four-momentum. Nothing is modified when pt is invalid.
func (c *Candidate) SetPtEtaPhiM(pt, eta, phi, mass float64) error {
	if err := c.SetPt(pt); err != nil {
		return err
	}
	c.SetEta(eta)
	c.SetPhi(phi)
	c.SetMass(mass)

	return nil
}

func (c *Candidate) Pt() float64   { return float64(c.pt) }
func (c *Candidate) Eta() float64  { return float64(c.eta) }
func (c *Candidate) Phi() float64  { return float64(c.phi) }
func (c *Candidate) Mass() float64 { return float64(c.mass) }

// Reset zeroes the four-momentum.
func (c *Candidate) Reset() {
	*c = Candidate{}
}

var candidateColumns = []Column{
	{Name: "pt", Width: 4},
	{Name: "eta", Width: 4},
	{Name: "phi", Width: 4},
	{Name: "mass", Width: 4},
}

func (c *Candidate) appendCells(dst []uint64) []uint64 {
	return append(dst,
		uint64(math.Float32bits(c.pt)),
		uint64(math.Float32bits(c.eta)),
		uint64(math.Float32bits(c.phi)),
		uint64(math.Float32bits(c.mass)),
	)
}

func (c *Candidate) loadCells(src []uint64) {
	c.pt = math.Float32frombits(uint32(src[0]))
	c.eta = math.Float32frombits(uint32(src[1]))
	c.phi = math.Float32frombits(uint32(src[2]))
	c.mass = math.Float32frombits(uint32(src[3]))
}

// CandidateWithID extends Candidate with a set of boolean identification flags,
// e.g. the outcome of several selection working points.
type CandidateWithID struct {
	Candidate
	ids uint16
}

// SetBit sets identification flag i.
//
// Returns:
//   - error: ErrOutOfRange if i is not in [0, NumIDBits)
func (c *CandidateWithID) SetBit(i int, value bool) error {
	if err := checkIDBit(i); err != nil {
		return err
	}

	if value {
		c.ids |= 1 << i
	} else {
		c.ids &^= 1 << i
	}

	return nil
}

// TestBit reports identification flag i.
func (c *CandidateWithID) TestBit(i int) (bool, error) {
	if err := checkIDBit(i); err != nil {
		return false, err
	}

	return c.ids&(1<<i) != 0, nil
}

// Reset zeroes the four-momentum and clears all flags.
func (c *CandidateWithID) Reset() {
	c.Candidate.Reset()
	c.ids = 0
}

var candidateWithIDColumns = append(candidateColumns[:len(candidateColumns):len(candidateColumns)],
	Column{Name: "ids", Width: 2})

func (c *CandidateWithID) appendCells(dst []uint64) []uint64 {
	dst = c.Candidate.appendCells(dst)

	return append(dst, uint64(c.ids))
}

func (c *CandidateWithID) loadCells(src []uint64) {
	c.Candidate.loadCells(src)
	c.ids = uint16(src[len(candidateColumns)])
}

func checkIDBit(i int) error {
	if i < 0 || i >= NumIDBits {
		return fmt.Errorf("%w: identification bit %d not in [0, %d)", errs.ErrOutOfRange, i, NumIDBits)
	}

	return nil
}

package minifloat

import (
	"fmt"
	"math"

	"github.com/arloliu/pec/errs"
)

// maxCellWidth is the widest supported storage cell in bits.
const maxCellWidth = 16

// UnderflowPolicy selects how nonzero magnitudes below the smallest normal number are encoded.
type UnderflowPolicy uint8

const (
	// UnderflowClamp saturates tiny magnitudes to the smallest normal number.
	UnderflowClamp UnderflowPolicy = iota
	// UnderflowFlush rounds tiny magnitudes to the nearer of zero and the smallest
	// normal number. Ties go to the smallest normal number.
	UnderflowFlush
	// UnderflowSubnormal rounds tiny magnitudes onto the evenly spaced subnormal grid
	// below the smallest normal number.
	UnderflowSubnormal
)

func (p UnderflowPolicy) String() string {
	switch p {
	case UnderflowClamp:
		return "clamp"
	case UnderflowFlush:
		return "flush"
	case UnderflowSubnormal:
		return "subnormal"
	default:
		return "unknown"
	}
}

// Format is the descriptor of one minifloat instantiation.
type Format struct {
	// Signed reserves the most significant bit of the cell for the sign.
	Signed bool
	// MantissaBits is the number of explicitly stored significand bits.
	MantissaBits uint
	// ExponentBits is the width of the biased exponent field.
	ExponentBits uint
	// Bias is the exponent bias. The smallest normal magnitude is 2^-Bias.
	Bias int
	// Underflow selects the encoding of nonzero magnitudes below the smallest normal.
	Underflow UnderflowPolicy
}

// Width returns the total number of bits used by the format.
func (f Format) Width() uint {
	w := f.MantissaBits + f.ExponentBits
	if f.Signed {
		w++
	}

	return w
}

// Validate checks that the format describes a cell of at most 16 bits whose whole
// value range is representable as normal float64 numbers.
//
// Returns:
//   - error: ErrInvalidFormat wrapped with the reason, or nil
func (f Format) Validate() error {
	if f.ExponentBits == 0 {
		return fmt.Errorf("%w: at least one exponent bit is required", errs.ErrInvalidFormat)
	}

	if f.Width() > maxCellWidth {
		return fmt.Errorf("%w: %d bits exceed the %d-bit cell limit", errs.ErrInvalidFormat, f.Width(), maxCellWidth)
	}

	if top := f.topExponent(); top > 1023 {
		return fmt.Errorf("%w: largest magnitude 2^%d overflows float64", errs.ErrInvalidFormat, top)
	}

	if bottom := f.subnormalExponent(); bottom < -1022 {
		return fmt.Errorf("%w: smallest step 2^%d underflows float64", errs.ErrInvalidFormat, bottom)
	}

	return nil
}

// MinNormal returns the smallest positive normal magnitude, 2^-Bias.
func (f Format) MinNormal() float64 {
	return math.Ldexp(1, -f.Bias)
}

// Max returns the largest representable magnitude.
func (f Format) Max() float64 {
	m := int(f.MantissaBits)
	significand := float64(uint64(2)<<f.MantissaBits - 1)

	return math.Ldexp(significand, f.topExponent()-1-m)
}

// Step returns the distance between adjacent representable magnitudes around v.
//
// Below MinNormal this is the subnormal spacing 2^(-Bias-M); above Max the spacing of
// the top binade is returned.
func (f Format) Step(v float64) float64 {
	v = math.Abs(v)
	if v < f.MinNormal() {
		return math.Ldexp(1, f.subnormalExponent())
	}

	if v > f.Max() {
		v = f.Max()
	}

	_, exp := math.Frexp(v)

	return math.Ldexp(1, exp-1-int(f.MantissaBits))
}

func (f Format) String() string {
	return fmt.Sprintf("minifloat(signed=%t, mantissa=%d, exponent=%d, bias=%d, underflow=%s)",
		f.Signed, f.MantissaBits, f.ExponentBits, f.Bias, f.Underflow)
}

// topExponent returns k such that every representable magnitude is below 2^k.
func (f Format) topExponent() int {
	maxField := 1<<f.ExponentBits - 1

	return maxField - f.Bias
}

// subnormalExponent returns the exponent of the subnormal grid spacing.
func (f Format) subnormalExponent() int {
	return -f.Bias - int(f.MantissaBits)
}

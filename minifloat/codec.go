package minifloat

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/pec/errs"
)

// Cell is the set of unsigned integer types a minifloat can be stored in.
type Cell interface {
	~uint8 | ~uint16
}

// Codec encodes and decodes one Format into cells of type T.
//
// The zero value is not usable; create codecs with New or MustNew.
type Codec[T Cell] struct {
	format        Format
	mantMask      uint64
	expMax        uint64
	signMask      uint64
	implicitBit   uint64
	maxMagnitude  uint64
	minNormalCell uint64
	minNormal     float64
	max           float64
}

// New creates a codec for f stored in cells of type T.
//
// Returns:
//   - Codec[T]: ready-to-use codec
//   - error: ErrInvalidFormat if f is invalid or does not fill T exactly
func New[T Cell](f Format) (Codec[T], error) {
	if err := f.Validate(); err != nil {
		return Codec[T]{}, err
	}

	width := uint(bits.Len64(uint64(^T(0))))
	if f.Width() != width {
		return Codec[T]{}, fmt.Errorf("%w: %d-bit format does not fill a %d-bit cell", errs.ErrInvalidFormat, f.Width(), width)
	}

	c := Codec[T]{
		format:      f,
		mantMask:    1<<f.MantissaBits - 1,
		expMax:      1<<f.ExponentBits - 1,
		implicitBit: 1 << f.MantissaBits,
		minNormal:   f.MinNormal(),
		max:         f.Max(),
	}
	if f.Signed {
		c.signMask = 1 << (width - 1)
	}
	c.maxMagnitude = c.expMax<<f.MantissaBits | c.mantMask
	c.minNormalCell = c.implicitBit

	return c, nil
}

// MustNew is like New but panics on an invalid format. It is intended for
// package-level codec variables.
func MustNew[T Cell](f Format) Codec[T] {
	c, err := New[T](f)
	if err != nil {
		panic(err)
	}

	return c
}

// Format returns the format descriptor of the codec.
func (c Codec[T]) Format() Format {
	return c.format
}

// MinNormal returns the smallest positive normal magnitude.
func (c Codec[T]) MinNormal() float64 {
	return c.minNormal
}

// Max returns the largest representable magnitude.
func (c Codec[T]) Max() float64 {
	return c.max
}

// Encode converts v into a cell. It never fails: out-of-range input saturates,
// NaN maps to zero.
func (c Codec[T]) Encode(v float64) T {
	if v == 0 || math.IsNaN(v) {
		return 0
	}

	var sign uint64
	if v < 0 {
		if c.signMask == 0 {
			return 0
		}
		sign = c.signMask
		v = -v
	}

	if v >= c.max {
		return T(sign | c.maxMagnitude)
	}

	if v < c.minNormal {
		mag := c.underflow(v)
		if mag == 0 {
			return 0
		}

		return T(sign | mag)
	}

	frac, exp := math.Frexp(v)
	e := uint64(exp + c.format.Bias)
	m := uint64(math.RoundToEven(math.Ldexp(2*frac-1, int(c.format.MantissaBits))))
	if m > c.mantMask {
		// mantissa carry into the next binade
		m = 0
		e++
		if e > c.expMax {
			return T(sign | c.maxMagnitude)
		}
	}

	return T(sign | e<<c.format.MantissaBits | m)
}

// Decode converts a cell back into a float64. Every cell pattern decodes to a finite value.
func (c Codec[T]) Decode(cell T) float64 {
	raw := uint64(cell)
	m := raw & c.mantMask
	e := (raw >> c.format.MantissaBits) & c.expMax

	var v float64
	if e == 0 {
		v = math.Ldexp(float64(m), c.format.subnormalExponent())
	} else {
		v = math.Ldexp(float64(m|c.implicitBit), int(e)-1+c.format.subnormalExponent())
	}

	if raw&c.signMask != 0 {
		v = -v
	}

	return v
}

// underflow returns the magnitude bits for 0 < v < MinNormal.
func (c Codec[T]) underflow(v float64) uint64 {
	switch c.format.Underflow {
	case UnderflowFlush:
		if v < c.minNormal/2 {
			return 0
		}

		return c.minNormalCell
	case UnderflowSubnormal:
		// a result of 2^M is exactly the smallest normal cell
		return uint64(math.RoundToEven(math.Ldexp(v, -c.format.subnormalExponent())))
	default:
		return c.minNormalCell
	}
}

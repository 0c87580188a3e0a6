// Package minifloat provides lossy fixed-width floating-point cells for persisting physics
// quantities in 8 or 16 bits instead of a full float32/float64.
//
// A Format describes one instantiation: an optional sign bit, a mantissa width, an
// exponent width and an exponent bias. The widths must exactly fill the storage cell, and
// each persisted field owns its own Format; formats are never interchangeable.
//
// # Bit Layout
//
// Fields are packed most significant first:
//
//	[sign (0 or 1 bit)][exponent (E bits)][mantissa (M bits)]
//
// For an exponent field e and mantissa field m the cell represents:
//
//	e >= 1:  2^(e-1-Bias) * (1 + m/2^M)     normal numbers
//	e == 0:  2^(-Bias) * m/2^M              zero (m == 0) and the subnormal range
//
// The smallest normal magnitude is therefore 2^-Bias and the largest representable
// magnitude is 2^(2^E-2-Bias) * (2 - 2^-M). There are no infinities or NaNs: every
// exponent value above zero is a normal binade. The all-zero cell is exactly 0.0.
//
// The layout is part of the persisted data contract. Changing any of the four Format
// values of a field invalidates previously written cells.
//
// # Encoding Policy
//
//   - Exact zero (either sign) and NaN encode to the all-zero cell.
//   - Magnitudes at or above Max, including infinities, saturate to the largest cell of
//     the same sign. Overflow never spills into the sign bit.
//   - Unsigned formats encode negative input as zero.
//   - Normal magnitudes round to the nearest grid point, ties to even.
//   - Nonzero magnitudes below MinNormal follow the format's UnderflowPolicy.
//
// Decoding never fails and does not depend on the UnderflowPolicy, so a cell decodes to
// the same value whichever policy produced it.
//
// For any magnitude v in [MinNormal, Max] the round-trip error is bounded by
//
//	|Decode(Encode(v)) - v| <= v * 2^-(M+1)
//
// # Usage
//
//	cell := minifloat.PdfX.Encode(0.5)   // 0xE000
//	x := minifloat.PdfX.Decode(cell)     // 0.5
//
//	custom, err := minifloat.New[uint8](minifloat.Format{MantissaBits: 4, ExponentBits: 4, Bias: 7})
//
// # Thread Safety
//
// Codec values are immutable and safe for concurrent use.
package minifloat

// Package nibble packs two small signed parton codes into one byte.
//
// Each code lies in [MinCode, MaxCode] and is stored as code+5 in four bits: the first
// code in the low nibble, the second in the high nibble. Code 0 (gluon, or no parton)
// is stored as nibble 5, so the byte of two absent partons is Sentinel (0x55), not zero.
package nibble

import (
	"fmt"

	"github.com/arloliu/pec/errs"
)

const (
	MinCode = -5 // MinCode is the smallest storable code.
	MaxCode = 10 // MaxCode is the largest storable code.
	Gluon   = 0  // Gluon is the code of a gluon, also used for an absent parton.

	offset = 5
)

// Sentinel is the packed byte of two gluon/absent codes.
const Sentinel uint8 = offset | offset<<4

// Pack stores code1 in the low nibble and code2 in the high nibble.
//
// Returns:
//   - uint8: packed byte
//   - error: ErrInvalidArgument if either code lies outside [MinCode, MaxCode]
func Pack(code1, code2 int) (uint8, error) {
	if err := validate(code1); err != nil {
		return 0, err
	}
	if err := validate(code2); err != nil {
		return 0, err
	}

	return uint8(code1+offset) | uint8(code2+offset)<<4, nil
}

// Unpack is the inverse of Pack. Every byte decodes to a pair of valid codes.
func Unpack(b uint8) (code1, code2 int) {
	return int(b&0x0F) - offset, int(b>>4) - offset
}

func validate(code int) error {
	if code < MinCode || code > MaxCode {
		return fmt.Errorf("%w: parton code %d outside [%d, %d]", errs.ErrInvalidArgument, code, MinCode, MaxCode)
	}

	return nil
}

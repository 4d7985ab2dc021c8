// Copyright 2025 The HUBsim Authors. All rights reserved.

package hub

import (
	"fmt"
	"math"
)

// Fields is the exploded view of a value's storage word in terms of the
// custom layout. It exists for debugging and for the textual formatters;
// collaborators must not rely on any bit-pattern guarantee beyond it being
// the inverse of DecodePacked for core-produced values.
type Fields struct {
	Sign              uint64 // sign bit
	CustomExp         uint64 // expBits-wide exponent under the custom bias
	Fraction          uint64 // 52-bit double fraction of the storage word
	CustomFrac        uint64 // mantBits-wide custom fraction
	CustomFracWithHub uint64 // custom fraction with the hub bit appended, mantBits+1 wide
}

// Encode extracts the custom bit fields of a value produced by this
// format. The sentinel classes carry fixed field values: zero is all
// zeroes, one is the reserved bias exponent with a zero fraction, and
// infinity is all ones in both exponent and fraction. A NaN argument is
// first collapsed by the NaN policy, so Encode is total.
func (f Format) Encode(d float64) Fields {
	if math.IsNaN(d) {
		d = nanPolicy(f, d)
	}
	bits := math.Float64bits(d)
	sign := bits >> 63
	switch {
	case d == 0:
		return Fields{Sign: sign}
	case d == 1 || d == -1:
		return Fields{Sign: sign, CustomExp: uint64(f.bias)}
	case math.IsInf(d, 0):
		withHub := 1<<(f.mantBits+1) - uint64(1)
		return Fields{
			Sign:              sign,
			CustomExp:         f.expMask,
			Fraction:          withHub << (f.shift - 1),
			CustomFrac:        f.fracMask,
			CustomFracWithHub: withHub,
		}
	}
	return Fields{
		Sign:              sign,
		CustomExp:         uint64(f.customExp(d)) & f.expMask,
		Fraction:          bits & fracMask64,
		CustomFrac:        bits >> f.shift & f.fracMask,
		CustomFracWithHub: bits >> (f.shift - 1) & (1<<(f.mantBits+1) - 1),
	}
}

// PackedWord packs d into sign<<(e+m) | customExp<<m | customFrac.
func (f Format) PackedWord(d float64) uint64 {
	fl := f.Encode(d)
	return fl.Sign<<(f.expBits+f.mantBits) | fl.CustomExp<<f.mantBits | fl.CustomFrac
}

// BinaryString renders d as "sign|exponent|fraction", the fraction
// including the hub bit, e.g. "0|10000000|000000000000000000000000" for 1.
func (f Format) BinaryString(d float64) string {
	fl := f.Encode(d)
	return fmt.Sprintf("%b|%0*b|%0*b",
		fl.Sign, int(f.expBits), fl.CustomExp, int(f.mantBits)+1, fl.CustomFracWithHub)
}

// HexString renders the packed word with enough zero-padded digits for
// the layout width, e.g. "0x00000001" for the smallest positive value.
func (f Format) HexString(d float64) string {
	return fmt.Sprintf("0x%0*X", (int(f.width)+3)/4, f.PackedWord(d))
}

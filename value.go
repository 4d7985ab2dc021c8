// Copyright 2025 The HUBsim Authors. All rights reserved.

package hub

import (
	"math"
	"strconv"
)

// Value is a double-precision number constrained to the grid of the
// package-level layout. The zero Value is positive zero. Values are
// immutable; arithmetic returns new, re-quantized values, and a compound
// update is written v = v.Add(w).
//
// A Value's underlying type is float64, so float64(v) is the widening
// conversion; it never loses information.
type Value float64

// FromFloat64 quantizes an arbitrary double onto the grid. Doubles already
// on the grid are taken as-is (saturation still applies); everything else
// rounds through the narrower precision before masking.
func FromFloat64(d float64) Value {
	return Value(format.roundNarrow(d))
}

// FromFloat32 quantizes a single-precision value onto the grid. Widening
// to double is exact, so only the mask-and-force step is needed.
func FromFloat32(v float32) Value {
	return Value(format.Quantize(float64(v)))
}

// FromInt quantizes an integer onto the grid. Integers above the custom
// mantissa width round like any other off-grid double.
func FromInt(i int) Value {
	return FromFloat64(float64(i))
}

// FromPacked builds a value from a raw packed (1+e+m)-bit word,
// zero-extended. Every word is valid; see Format.DecodePacked.
func FromPacked(word uint64) Value {
	return Value(format.DecodePacked(word))
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Value {
	if sign < 0 {
		return Value(math.Inf(-1))
	}
	return Value(math.Inf(1))
}

// Lowest returns the smallest positive grid value.
func Lowest() Value { return Value(format.LowestVal()) }

// Max returns the largest finite grid value.
func Max() Value { return Value(format.MaxVal()) }

// Float64 returns the stored double.
func (v Value) Float64() float64 { return float64(v) }

// Bits returns the storage word, the raw float64 bit pattern.
func (v Value) Bits() uint64 { return math.Float64bits(float64(v)) }

// IsInf reports whether v is an infinity of either sign.
func (v Value) IsInf() bool { return math.IsInf(float64(v), 0) }

// Sign returns 1 for positive values, -1 for negative ones and 0 for
// either zero.
func (v Value) Sign() int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Packed returns the packed custom word for v.
func (v Value) Packed() uint64 { return format.PackedWord(float64(v)) }

// Fields returns the exploded custom bit fields of v.
func (v Value) Fields() Fields { return format.Encode(float64(v)) }

// BinaryString returns the "sign|exponent|fraction" rendering of v.
func (v Value) BinaryString() string { return format.BinaryString(float64(v)) }

// HexString returns the zero-padded hex rendering of v's packed word.
func (v Value) HexString() string { return format.HexString(float64(v)) }

// String formats the stored double in the shortest representation that
// round-trips.
func (v Value) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

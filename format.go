// Copyright 2025 The HUBsim Authors. All rights reserved.

// Package hub emulates a half-unit-biased (HUB) binary floating-point
// format on top of float64 storage.
//
// A HUB format keeps an implicit extra significand bit (the hub bit) set in
// every representable value, which shifts each representable point half a
// unit up inside its binade. The practical effect is that round-to-nearest
// collapses to plain truncation of the extra bits, so emulating the format
// over double-precision hardware needs nothing but bit masking.
//
// The emulated layout has a configurable exponent width and mantissa width
// (ExpBits, MantBits); the default is the 1+8+23 layout of IEEE single
// precision. Values are immutable: every operation returns a freshly
// quantized result.
package hub

import (
	"fmt"
	"math"
)

// Emulated layout. Edit and rebuild to emulate a different format.
const (
	ExpBits  = 8
	MantBits = 23
)

const (
	signMask64 = 1 << 63
	expMask64  = 0x7ff
	shift64    = 52
	fracMask64 = 1<<shift64 - 1
	bias64     = 1023
	infBits    = uint64(expMask64) << shift64
)

// Format holds the derived constants of one HUB layout.
// The zero Format is not usable; construct one with NewFormat or MustFormat.
type Format struct {
	expBits  uint
	mantBits uint

	shift    uint   // low double-fraction bits forced or cleared, 52-mantBits
	hubBit   uint64 // the forced implicit bit, 1<<(shift-1)
	bias     int    // custom exponent bias, 1<<(expBits-1)
	biasDiff int    // 1023 - bias
	width    uint   // packed word width, 1+expBits+mantBits

	expMask  uint64 // all-ones custom exponent field
	fracMask uint64 // all-ones custom fraction field

	maxBits    uint64 // largest finite grid magnitude, storage bits
	lowestBits uint64 // smallest positive grid magnitude, storage bits
}

// Single is the (8, 23) layout, bit-compatible with IEEE single precision.
// It is the only layout the FMA double-rounding correction is defined for.
var Single = MustFormat(8, 23)

// format is the process-wide layout every Value quantizes to.
// It is fixed at startup and never changes afterwards.
var format = MustFormat(ExpBits, MantBits)

// NewFormat builds the derived constants for a (expBits, mantBits) layout.
// The exponent width must map the whole custom exponent range into the
// double's normal exponent range, which bounds it to [2, 10]; the mantissa
// width must leave at least one low double-fraction bit for the hub, which
// bounds it to [1, 51]. Layouts wider than 32 packed bits work, but the
// textual interchange helpers assume at most a 64-bit packed word.
func NewFormat(expBits, mantBits int) (Format, error) {
	if expBits < 2 || expBits > 10 {
		return Format{}, fmt.Errorf("exponent width %d out of range [2, 10]", expBits)
	}
	if mantBits < 1 || mantBits > 51 {
		return Format{}, fmt.Errorf("mantissa width %d out of range [1, 51]", mantBits)
	}
	f := Format{
		expBits:  uint(expBits),
		mantBits: uint(mantBits),
		shift:    uint(shift64 - mantBits),
		bias:     1 << (expBits - 1),
		width:    uint(1 + expBits + mantBits),
		expMask:  1<<expBits - 1,
		fracMask: 1<<mantBits - 1,
	}
	f.hubBit = 1 << (f.shift - 1)
	f.biasDiff = bias64 - f.bias
	// The all-ones word is the infinity sentinel, so the top finite point
	// sits one grid step below it.
	f.maxBits = (f.expMask+uint64(f.biasDiff))<<shift64 | (f.fracMask-1)<<f.shift | f.hubBit
	f.lowestBits = uint64(f.biasDiff)<<shift64 | 1<<f.shift | f.hubBit
	return f, nil
}

// MustFormat is like NewFormat but panics on an invalid layout.
func MustFormat(expBits, mantBits int) Format {
	f, err := NewFormat(expBits, mantBits)
	if err != nil {
		panic(err)
	}
	return f
}

// ExpBits returns the exponent width.
func (f Format) ExpBits() int { return int(f.expBits) }

// MantBits returns the mantissa width.
func (f Format) MantBits() int { return int(f.mantBits) }

// Width returns the packed word width, 1+expBits+mantBits.
func (f Format) Width() int { return int(f.width) }

// MaxVal returns the largest finite grid magnitude.
func (f Format) MaxVal() float64 { return math.Float64frombits(f.maxBits) }

// MinVal returns the most negative finite grid value, -MaxVal.
func (f Format) MinVal() float64 { return math.Float64frombits(signMask64 | f.maxBits) }

// LowestVal returns the smallest positive grid magnitude; finite values
// below it in magnitude flush to a signed zero.
func (f Format) LowestVal() float64 { return math.Float64frombits(f.lowestBits) }

// DefaultFormat returns the layout the package was built with.
func DefaultFormat() Format { return format }

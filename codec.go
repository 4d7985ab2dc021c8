// Copyright 2025 The HUBsim Authors. All rights reserved.

package hub

import "math"

// onGrid reports whether a storage word already sits on the grid:
// all fraction bits below the hub are clear and the hub bit is set.
func (f Format) onGrid(bits uint64) bool {
	return bits&(1<<f.shift-1) == f.hubBit
}

// Quantize truncates d onto the grid: the fraction bits below the hub are
// cleared, the hub bit is forced, and the result saturates to a signed
// infinity past MaxVal. Because every grid point carries the hub bit,
// this truncation is round-to-nearest for inputs already within one grid
// step of the grid, which holds for every arithmetic result computed in
// double precision over grid operands. Arbitrary doubles must go through
// the narrower rounding first; see FromFloat64.
func (f Format) Quantize(d float64) float64 {
	if res, ok := f.normalize(d); ok {
		return res
	}
	bits := math.Float64bits(d)
	bits = bits&^(1<<f.shift-1) | f.hubBit
	return f.saturate(bits)
}

// roundNarrow quantizes an arbitrary double by rounding it through a
// 32-bit float before masking; masking alone is not round-to-nearest for
// inputs far off the grid. For the default single-precision layout the
// intermediate carries exactly the mantissa the mask keeps.
func (f Format) roundNarrow(d float64) float64 {
	if res, ok := f.normalize(d); ok {
		return res
	}
	bits := math.Float64bits(d)
	if f.onGrid(bits) {
		return f.saturate(bits)
	}
	d = float64(float32(d))
	if res, ok := f.normalize(d); ok {
		return res
	}
	bits = math.Float64bits(d)&^(1<<f.shift-1) | f.hubBit
	return f.saturate(bits)
}

// saturate replaces magnitudes beyond the top grid point with a signed
// infinity and materializes the storage word otherwise.
func (f Format) saturate(bits uint64) float64 {
	if bits&^uint64(signMask64) > f.maxBits {
		return math.Float64frombits(bits&signMask64 | infBits)
	}
	return math.Float64frombits(bits)
}

// DecodePacked expands a packed (1+expBits+mantBits)-bit word into its
// double value. The function is total: any word decodes, higher bits are
// ignored. Three sentinel patterns short-circuit the generic formula:
// the all-zero word is a signed zero, a bias exponent with a zero fraction
// is a signed one (exact one has no hub bit and is otherwise
// unrepresentable), and the all-ones word is a signed infinity.
func (f Format) DecodePacked(word uint64) float64 {
	word &= 1<<f.width - 1
	sign := word >> (f.expBits + f.mantBits) & 1
	exp := word >> f.mantBits & f.expMask
	frac := word & f.fracMask
	switch {
	case exp == 0 && frac == 0:
		return math.Float64frombits(sign << 63)
	case exp == uint64(f.bias) && frac == 0:
		if sign != 0 {
			return -1
		}
		return 1
	case exp == f.expMask && frac == f.fracMask:
		if sign != 0 {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	bits := sign<<63 | (exp+uint64(f.biasDiff))<<shift64 | frac<<f.shift | f.hubBit
	return math.Float64frombits(bits)
}

// customExp extracts the custom exponent field of a non-zero finite value,
// honoring the reserved exponent of the one sentinel.
func (f Format) customExp(d float64) int {
	if d == 1 || d == -1 {
		return f.bias
	}
	return int(math.Float64bits(d)>>shift64&expMask64) - f.biasDiff
}

// Copyright 2025 The HUBsim Authors. All rights reserved.

package hub

import "math"

// Arithmetic computes in double precision and re-quantizes the result.
// For the supported layouts the double result is always within half a
// grid step of the exact one, so the mask-and-force truncation lands on
// the nearest grid point and no per-operation rounding logic is needed.

// Add returns the quantized sum v + o.
func (v Value) Add(o Value) Value {
	return Value(format.Quantize(float64(v) + float64(o)))
}

// Sub returns the quantized difference v - o.
func (v Value) Sub(o Value) Value {
	return Value(format.Quantize(float64(v) - float64(o)))
}

// Mul returns the quantized product v * o.
func (v Value) Mul(o Value) Value {
	return Value(format.Quantize(float64(v) * float64(o)))
}

// Div returns the quantized quotient v / o. Division by zero follows the
// double, then the NaN policy: x/0 is a signed infinity and 0/0 collapses
// to an infinity as well.
func (v Value) Div(o Value) Value {
	return Value(format.Quantize(float64(v) / float64(o)))
}

// Neg returns v with the sign flipped; negation never leaves the grid.
func (v Value) Neg() Value {
	return Value(math.Float64frombits(v.Bits() ^ signMask64))
}

// Abs returns the magnitude of v.
func (v Value) Abs() Value {
	return Value(math.Float64frombits(v.Bits() &^ uint64(signMask64)))
}

// Sqrt returns the quantized square root of x. A negative argument yields
// a NaN in double precision, which the NaN policy collapses to an infinity.
func Sqrt(x Value) Value {
	return Value(format.Quantize(math.Sqrt(float64(x))))
}

// FMA returns the quantized fused multiply-add a*b + c.
//
// Two 24-bit grid significands keep a*b exact in double, so the fused
// result is the exact sum rounded once. That rounding can still land the
// fused value exactly on a truncation boundary while the exact sum sits
// just below it, in which case plain truncation picks the cell above the
// exact one. correctBoundary recovers the rounding error of the fused add
// and steps the result down one grid point in that case.
func FMA(a, b, c Value) Value {
	fused := math.FMA(float64(a), float64(b), float64(c))
	res := format.Quantize(fused)
	if format == Single {
		res = correctBoundary(fused, res, float64(a)*float64(b), float64(c))
	}
	return Value(res)
}

// correctBoundary applies the double-rounding fix-up for the (8, 23)
// layout. With the product exact in double, the rounding error of the
// fused add is exactly representable and recoverable with Knuth's TwoSum;
// its sign tells which side of the boundary the exact sum is on. Only a
// non-zero error pointing toward zero steps down: an exact tie sits on
// the boundary itself, which truncation assigns to the cell above.
func correctBoundary(fused, res, product, addend float64) float64 {
	if fused == 0 || math.IsInf(fused, 0) || math.IsNaN(fused) {
		return res
	}
	// Only a fused result sitting exactly on a truncation boundary is at
	// risk; anything with live low bits truncated to the nearest point.
	if math.Float64bits(fused)&(1<<format.shift-1) != 0 {
		return res
	}
	if !format.onGrid(math.Float64bits(res)) {
		return res
	}
	if math.IsInf(product, 0) || math.IsNaN(product) || math.IsInf(addend, 0) {
		return res
	}
	bp := fused - addend
	bc := fused - bp
	err := (product - bp) + (addend - bc)
	if err == 0 || math.Signbit(err) == math.Signbit(fused) {
		return res
	}
	bits := math.Float64bits(res)
	if bits&^uint64(signMask64) == format.lowestBits {
		// One step below the smallest grid magnitude is the underflow
		// region; its bit pattern would pack to the zero sentinel word.
		return math.Float64frombits(bits & signMask64)
	}
	return prevGridPoint(res)
}

// prevGridPoint steps a finite on-grid value one grid point toward zero,
// keeping the sign.
func prevGridPoint(d float64) float64 {
	bits := math.Float64bits(d)
	mag := bits&^uint64(signMask64) - 1<<format.shift
	return math.Float64frombits(bits&signMask64 | mag)
}

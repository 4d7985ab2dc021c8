// Copyright 2025 The HUBsim Authors. All rights reserved.

package hub

import "math"

// The two normalization choices below deliberately diverge from IEEE 754:
// NaNs collapse to a signed infinity and sub-grid magnitudes flush to a
// signed zero. They are kept as package variables so a conforming mode can
// be substituted without touching any of the bit-level code.
var (
	nanPolicy       = collapseNaNToInf
	underflowPolicy = flushToZero
)

// collapseNaNToInf maps a NaN to the infinity carrying the NaN's sign bit.
// The payload is discarded; the format has no NaN encoding.
func collapseNaNToInf(_ Format, d float64) float64 {
	return math.Float64frombits(math.Float64bits(d)&signMask64 | infBits)
}

// flushToZero maps a non-zero magnitude below the smallest grid point to
// the zero of the same sign.
func flushToZero(_ Format, d float64) float64 {
	return math.Float64frombits(math.Float64bits(d) & signMask64)
}

// normalize applies the fixed special-value table that runs before every
// quantization: zeros, exact ones and infinities pass through unchanged,
// NaNs and sub-grid magnitudes go through their policies. ok reports
// whether d was fully handled; otherwise the caller forwards d to the
// grid codec.
func (f Format) normalize(d float64) (res float64, ok bool) {
	switch {
	case d == 0:
		return d, true
	case math.IsNaN(d):
		return nanPolicy(f, d), true
	case math.IsInf(d, 0):
		return d, true
	case d == 1 || d == -1:
		return d, true
	case math.Abs(d) < f.LowestVal():
		return underflowPolicy(f, d), true
	}
	return d, false
}

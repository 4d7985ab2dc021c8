// Copyright 2025 The HUBsim Authors. All rights reserved.

package hubmath

import (
	"golang.org/x/exp/constraints"

	hub "github.com/HUBformat/HUBsim"
)

// Horner evaluates the polynomial with the given coefficients at x,
// highest degree first.
func Horner(coeffs []hub.Value, x hub.Value) hub.Value {
	var res hub.Value
	for _, c := range coeffs {
		res = res.Mul(x).Add(c)
	}
	return res
}

// HornerFloat is the plain floating-point evaluation of the same loop,
// the reference the hub run is measured against.
func HornerFloat[F constraints.Float](coeffs []F, x F) F {
	var res F
	for _, c := range coeffs {
		res = res*x + c
	}
	return res
}

// Copyright 2025 The HUBsim Authors. All rights reserved.

package hubmath

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"

	hub "github.com/HUBformat/HUBsim"
)

// FFT computes the in-place radix-2 transform of the signal held in the
// re and im slices. The length must be a power of two. Twiddle factors
// are evaluated in double precision and quantized at use, the same way
// a hardware core would feed them from a ROM.
func FFT(re, im []hub.Value) error {
	n, err := fftSize(len(re), len(im))
	if err != nil {
		return err
	}
	rearrange(re, im, n)

	for step := 1; step < n; step <<= 1 {
		angle := -math.Pi / float64(step)
		for group := 0; group < step; group++ {
			wr := hub.FromFloat64(math.Cos(angle * float64(group)))
			wi := hub.FromFloat64(math.Sin(angle * float64(group)))
			for pair := group; pair < n; pair += step << 1 {
				match := pair + step
				pr := wr.Mul(re[match]).Sub(wi.Mul(im[match]))
				pi := wr.Mul(im[match]).Add(wi.Mul(re[match]))
				re[match] = re[pair].Sub(pr)
				im[match] = im[pair].Sub(pi)
				re[pair] = re[pair].Add(pr)
				im[pair] = im[pair].Add(pi)
			}
		}
	}
	return nil
}

// FFTFloat is the identical loop over plain floats, kept as the
// precision reference for FFT.
func FFTFloat[F constraints.Float](re, im []F) error {
	n, err := fftSize(len(re), len(im))
	if err != nil {
		return err
	}
	rearrange(re, im, n)

	for step := 1; step < n; step <<= 1 {
		angle := -math.Pi / float64(step)
		for group := 0; group < step; group++ {
			wr := F(math.Cos(angle * float64(group)))
			wi := F(math.Sin(angle * float64(group)))
			for pair := group; pair < n; pair += step << 1 {
				match := pair + step
				pr := wr*re[match] - wi*im[match]
				pi := wr*im[match] + wi*re[match]
				re[match] = re[pair] - pr
				im[match] = im[pair] - pi
				re[pair] = re[pair] + pr
				im[pair] = im[pair] + pi
			}
		}
	}
	return nil
}

func fftSize(nre, nim int) (int, error) {
	if nre != nim {
		return 0, fmt.Errorf("%w: %d real and %d imaginary points", ErrDimension, nre, nim)
	}
	if nre == 0 || nre&(nre-1) != 0 {
		return 0, fmt.Errorf("%w: length %d is not a power of two", ErrDimension, nre)
	}
	return nre, nil
}

// rearrange permutes the signal into bit-reversed order.
func rearrange[F constraints.Float](re, im []F, n int) {
	shift := 64 - uint(bits.TrailingZeros(uint(n)))
	for i := 1; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if j > i {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}

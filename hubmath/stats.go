// Copyright 2025 The HUBsim Authors. All rights reserved.

package hubmath

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Stats aggregates the error of a computed sequence against its
// double-precision reference.
type Stats struct {
	Count int

	AvgAbsErr float64
	MaxAbsErr float64
	MinAbsErr float64
	// AvgErr keeps the sign, exposing systematic bias.
	AvgErr    float64
	AvgRelErr float64
	Variance  float64
	MSE       float64
	RMSE      float64
	// SNR is the signal-to-noise ratio in dB.
	SNR float64
}

// relGuard keeps relative error finite near zero references.
const relGuard = 1e-10

// Measure compares a computed sequence against its reference.
func Measure[F constraints.Float](reference []float64, result []F) (Stats, error) {
	if len(reference) != len(result) {
		return Stats{}, fmt.Errorf("%w: %d reference and %d result points", ErrDimension, len(reference), len(result))
	}
	if len(reference) == 0 {
		return Stats{}, fmt.Errorf("%w: empty sequences", ErrDimension)
	}
	s := Stats{Count: len(reference), MinAbsErr: math.Inf(1)}
	var sumErr, sumAbs, sumRel, sumSq, signal float64
	for i, ref := range reference {
		err := float64(result[i]) - ref
		abs := math.Abs(err)
		sumErr += err
		sumAbs += abs
		sumSq += err * err
		signal += ref * ref
		if math.Abs(ref) > relGuard {
			sumRel += abs / math.Abs(ref)
		}
		if abs > s.MaxAbsErr {
			s.MaxAbsErr = abs
		}
		if abs < s.MinAbsErr {
			s.MinAbsErr = abs
		}
	}
	n := float64(s.Count)
	s.AvgErr = sumErr / n
	s.AvgAbsErr = sumAbs / n
	s.AvgRelErr = sumRel / n
	s.MSE = sumSq / n
	s.RMSE = math.Sqrt(s.MSE)
	mean := s.AvgAbsErr
	for i, ref := range reference {
		d := math.Abs(float64(result[i])-ref) - mean
		s.Variance += d * d
	}
	s.Variance /= n
	if sumSq == 0 {
		s.SNR = math.MaxFloat64
	} else {
		s.SNR = 10 * math.Log10(signal/sumSq)
	}
	return s, nil
}

// Copyright 2025 The HUBsim Authors. All rights reserved.

package hubmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	hub "github.com/HUBformat/HUBsim"
)

func TestNewNetwork(t *testing.T) {
	a := assert.New(t)
	n, err := NewNetwork(2, 3, 1)
	a.NoError(err)
	a.Len(n.WeightsHidden, 6)
	a.Len(n.BiasesHidden, 3)
	a.Len(n.WeightsOutput, 3)
	a.Len(n.BiasesOutput, 1)

	_, err = NewNetwork(0, 3, 1)
	a.ErrorIs(err, ErrDimension)
}

func TestPredictZeroNetwork(t *testing.T) {
	a := assert.New(t)
	n, err := NewNetwork(2, 2, 2)
	a.NoError(err)
	// All-zero weights: both layers see sigmoid(0) = 0.5 inputs.
	out, err := n.Predict(vec(1, -1))
	a.NoError(err)
	a.Len(out, 2)
	for _, o := range out {
		a.InDelta(0.5, o.Float64(), 1e-6)
	}
}

func TestPredictMatchesFloat(t *testing.T) {
	a := assert.New(t)
	n, err := NewNetwork(2, 2, 1)
	a.NoError(err)
	n.WeightsHidden = vec(0.5, -0.25, 1.5, 0.75)
	n.BiasesHidden = vec(0.1, -0.2)
	n.WeightsOutput = vec(2, -1)
	n.BiasesOutput = vec(0.05)

	input := []float64{0.8, -0.3}
	out, err := n.Predict(vec(input...))
	a.NoError(err)

	sigmoid := func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
	h0 := sigmoid(0.1 + 0.8*0.5 + -0.3*1.5)
	h1 := sigmoid(-0.2 + 0.8*-0.25 + -0.3*0.75)
	want := sigmoid(0.05 + h0*2 + h1*-1)
	a.InDelta(want, out[0].Float64(), 1e-5)
}

func TestPredictBadInput(t *testing.T) {
	a := assert.New(t)
	n, err := NewNetwork(3, 2, 1)
	a.NoError(err)
	_, err = n.Predict(vec(1, 2))
	a.ErrorIs(err, ErrDimension)
	var out []hub.Value
	out, err = n.Predict(vec(1, 2, 3))
	a.NoError(err)
	a.Len(out, 1)
}

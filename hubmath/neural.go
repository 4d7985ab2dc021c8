// Copyright 2025 The HUBsim Authors. All rights reserved.

package hubmath

import (
	"fmt"
	"math"

	hub "github.com/HUBformat/HUBsim"
)

// Network is a one-hidden-layer perceptron over hub values. Weights are
// row-major: WeightsHidden[i*HiddenCount+j] connects input i to hidden
// unit j, WeightsOutput[j*OutputCount+k] connects hidden unit j to
// output k.
type Network struct {
	InputCount  int
	HiddenCount int
	OutputCount int

	WeightsHidden []hub.Value
	BiasesHidden  []hub.Value
	WeightsOutput []hub.Value
	BiasesOutput  []hub.Value
}

// NewNetwork allocates a zero-weight network of the given shape.
func NewNetwork(inputs, hidden, outputs int) (*Network, error) {
	if inputs <= 0 || hidden <= 0 || outputs <= 0 {
		return nil, fmt.Errorf("%w: shape %d-%d-%d", ErrDimension, inputs, hidden, outputs)
	}
	return &Network{
		InputCount:    inputs,
		HiddenCount:   hidden,
		OutputCount:   outputs,
		WeightsHidden: make([]hub.Value, inputs*hidden),
		BiasesHidden:  make([]hub.Value, hidden),
		WeightsOutput: make([]hub.Value, hidden*outputs),
		BiasesOutput:  make([]hub.Value, outputs),
	}, nil
}

// Predict runs a forward pass with sigmoid activations on both layers.
func (n *Network) Predict(input []hub.Value) ([]hub.Value, error) {
	if len(input) != n.InputCount {
		return nil, fmt.Errorf("%w: %d inputs for a %d-input network", ErrDimension, len(input), n.InputCount)
	}
	hidden := make([]hub.Value, n.HiddenCount)
	for j := 0; j < n.HiddenCount; j++ {
		acc := n.BiasesHidden[j]
		for i := 0; i < n.InputCount; i++ {
			acc = acc.Add(input[i].Mul(n.WeightsHidden[i*n.HiddenCount+j]))
		}
		hidden[j] = sigmoid(acc)
	}
	output := make([]hub.Value, n.OutputCount)
	for k := 0; k < n.OutputCount; k++ {
		acc := n.BiasesOutput[k]
		for j := 0; j < n.HiddenCount; j++ {
			acc = acc.Add(hidden[j].Mul(n.WeightsOutput[j*n.OutputCount+k]))
		}
		output[k] = sigmoid(acc)
	}
	return output, nil
}

// sigmoid computes 1/(1+exp(-x)). The exponential runs in double
// precision, then the division happens on the grid; a hardware core
// would use a quantized lookup instead, which this approximates from
// above.
func sigmoid(x hub.Value) hub.Value {
	e := hub.FromFloat64(math.Exp(-x.Float64()))
	return hub.FromInt(1).Div(hub.FromInt(1).Add(e))
}

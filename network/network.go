// Copyright 2026 Glia ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package network

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/glia-ml/glia/internal/network"
)

// Network is a fully connected feedforward neural network with sigmoid
// activations.
//
// Methods:
//
//	Predict(input *mat.Dense) *mat.Dense
//	    Forward pass; returns outputs in (0,1), one row per input row.
//
//	PredictZeroOne(input *mat.Dense) *mat.Dense
//	    Forward pass thresholded at 0.5; outputs are exactly 0 or 1.
//
//	Gradients(input, output *mat.Dense) []*mat.Dense
//	    Backpropagated mean-squared-error gradients, one matrix per
//	    weight matrix, normalized by the batch size.
//
//	Train(input, output *mat.Dense, config TrainConfig)
//	    Runs full-batch gradient descent, mutating the weights in place.
//
//	Weights() []*mat.Dense
//	    The weight matrices in layer order, for external persistence.
//
//	Layers() int
//	    Number of layers, one more than the number of weight matrices.
//
// Note: Network is a type alias so that the internal implementation's
// methods are the public API without wrapper indirection.
type Network = network.Network

// TrainConfig holds configuration for Network.Train. Zero-valued fields
// select the package defaults.
type TrainConfig = network.TrainConfig

// Defaults applied by Train for zero TrainConfig fields.
const (
	DefaultIterations   = network.DefaultIterations
	DefaultLearningRate = network.DefaultLearningRate
)

// Random creates a network with the given number of units per layer and
// Xavier/Glorot-uniform initial weights.
//
// Returns an error if fewer than two layer sizes are given.
//
// Example:
//
//	net, err := network.Random(784, 128, 10)
func Random(layerSizes ...int) (*Network, error) {
	return network.Random(layerSizes...)
}

// RandomFrom is Random with an explicit random source, for reproducible
// construction. A nil source uses the global source.
func RandomFrom(src rand.Source, layerSizes ...int) (*Network, error) {
	return network.RandomFrom(src, layerSizes...)
}

// FromWeights creates a network directly from pre-built weight matrices.
//
// The matrices are used as given and not validated eagerly: a chain with
// incompatible inner dimensions panics on the first forward pass.
func FromWeights(weights ...*mat.Dense) *Network {
	return network.FromWeights(weights...)
}

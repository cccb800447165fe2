package network

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Network is a fully connected feedforward neural network in which every
// unit has a sigmoid activation.
//
// The network owns one weight matrix per layer transition: weight matrix l
// has shape [n_l, n_l+1], so an input batch of shape [N, n_0] flows through
// the chain left to right. Weights are mutated in place only by Train.
//
// A Network must not be used concurrently without external synchronization
// while Train is mutating its weights.
type Network struct {
	// weights[l] transforms layer l activations into layer l+1
	// pre-activations. Inner dimensions of consecutive matrices must
	// agree; mismatches surface as shape panics from gonum during the
	// forward pass.
	weights []*mat.Dense
}

// Random creates a network with the given number of units per layer.
//
// One weight matrix is created per consecutive pair of sizes, so a call
// like Random(784, 128, 10) builds a two-transform network. Each weight is
// drawn uniformly from [-eps, +eps] with eps = sqrt(6/(nIn+nOut)), the
// Xavier/Glorot bound that keeps initial sigmoid activations in a usable
// dynamic range.
//
// Returns an error if fewer than two layer sizes are given.
func Random(layerSizes ...int) (*Network, error) {
	return RandomFrom(nil, layerSizes...)
}

// RandomFrom is Random with an explicit random source, for reproducible
// construction. A nil source uses the global source.
func RandomFrom(src rand.Source, layerSizes ...int) (*Network, error) {
	if len(layerSizes) < 2 {
		return nil, fmt.Errorf("network: need at least two layer sizes (input and output), got %d", len(layerSizes))
	}

	weights := make([]*mat.Dense, len(layerSizes)-1)
	for l := range weights {
		weights[l] = xavier(layerSizes[l], layerSizes[l+1], src)
	}
	return &Network{weights: weights}, nil
}

// FromWeights creates a network from pre-built weight matrices.
//
// The weights are used as given, not copied, and are not validated eagerly:
// an incompatible chain is reported by the matrix layer on the first
// forward pass that exercises it.
func FromWeights(weights ...*mat.Dense) *Network {
	return &Network{weights: weights}
}

// xavier samples an [nIn, nOut] weight matrix from the Xavier/Glorot
// uniform distribution U(-sqrt(6/(nIn+nOut)), +sqrt(6/(nIn+nOut))).
func xavier(nIn, nOut int, src rand.Source) *mat.Dense {
	bound := math.Sqrt(6.0 / float64(nIn+nOut))
	uniform := distuv.Uniform{Min: -bound, Max: bound, Src: src}

	data := make([]float64, nIn*nOut)
	for i := range data {
		data[i] = uniform.Rand()
	}
	return mat.NewDense(nIn, nOut, data)
}

// Weights returns the network's weight matrices in layer order.
//
// The slice and matrices are the network's own: callers that read them for
// persistence must not mutate them while training runs.
func (n *Network) Weights() []*mat.Dense {
	return n.weights
}

// Layers returns the number of layers, counting the input and output
// layers. It is always one more than the number of weight matrices.
func (n *Network) Layers() int {
	return len(n.weights) + 1
}

// Copyright 2026 Glia ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network implements a minimal fully connected feedforward neural
// network with sigmoid activations, trained by full-batch gradient descent
// with manually derived backpropagation.
//
// # Overview
//
// A Network is an ordered sequence of weight matrices, one per layer
// transition. All data is exchanged as gonum dense matrices in which each
// row is one example:
//   - Construction: Random / RandomFrom (Xavier-uniform init) or
//     FromWeights (explicit matrices)
//   - Inference: Predict (sigmoid outputs in (0,1)) and PredictZeroOne
//     (thresholded at 0.5)
//   - Training: Gradients (per-weight gradients of the mean squared
//     error) and Train (iterative in-place gradient descent)
//
// # Basic Usage
//
//	import (
//	    "log"
//
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/glia-ml/glia/network"
//	)
//
//	func main() {
//	    net, err := network.Random(2, 2, 1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    inputs := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
//	    targets := mat.NewDense(4, 1, []float64{0, 1, 1, 0})
//
//	    net.Train(inputs, targets, network.TrainConfig{
//	        Iterations:   10000,
//	        LearningRate: 0.5,
//	    })
//
//	    predictions := net.PredictZeroOne(inputs)
//	}
//
// # Shapes
//
// For layer sizes (n_0, ..., n_L), weight matrix l has shape [n_l, n_l+1]
// and an input batch has shape [N, n_0]. Shape mismatches panic in the
// matrix layer (gonum); they are caller bugs, never retried or translated.
//
// # Concurrency
//
// All operations are pure in-memory computation with no I/O or blocking.
// Predict and Gradients allocate their intermediate activations locally,
// but Train mutates the weight matrices in place, so a single Network must
// not be shared between goroutines without external synchronization.
package network

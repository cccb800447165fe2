package network

import "gonum.org/v1/gonum/mat"

// Defaults applied by Train when the corresponding TrainConfig field is
// zero.
const (
	DefaultIterations   = 10
	DefaultLearningRate = 0.1
)

// TrainConfig holds configuration for Train.
type TrainConfig struct {
	// Iterations is the number of gradient-descent steps to run. Zero
	// selects DefaultIterations; a negative value runs no steps.
	Iterations int

	// LearningRate scales each gradient step. Zero selects
	// DefaultLearningRate. It is not validated: an overly large step
	// diverging is the caller's responsibility, as with gradient descent
	// generally.
	LearningRate float64
}

// Train fits the network to the given batch by full-batch gradient
// descent.
//
// Each step computes Gradients(input, output) and updates every weight
// matrix in place:
//
//	W_l ← W_l − learningRate × grad_l
//
// Exactly Iterations steps run: no convergence check, no early stopping,
// no loss reporting. Steps are strictly sequential because each gradient
// computation must see the previous step's weights.
func (n *Network) Train(input, output *mat.Dense, config TrainConfig) {
	if config.Iterations == 0 {
		config.Iterations = DefaultIterations
	}
	if config.LearningRate == 0 {
		config.LearningRate = DefaultLearningRate
	}

	var step mat.Dense
	for iter := 0; iter < config.Iterations; iter++ {
		grads := n.Gradients(input, output)
		for l, grad := range grads {
			step.Reset()
			step.Scale(config.LearningRate, grad)
			n.weights[l].Sub(n.weights[l], &step)
		}
	}
}

package network

import "gonum.org/v1/gonum/mat"

// forward runs a forward pass and returns the full activation sequence,
// one matrix per layer: element 0 is the raw input, element l+1 is
// sigmoid(h_l × W_l). The sequence is a fresh local value on every call;
// nothing is cached on the network.
func (n *Network) forward(input *mat.Dense) []*mat.Dense {
	activations := make([]*mat.Dense, len(n.weights)+1)
	activations[0] = input
	for l, w := range n.weights {
		var z mat.Dense
		z.Mul(activations[l], w)
		z.Apply(func(_, _ int, v float64) float64 { return sigmoid(v) }, &z)
		activations[l+1] = &z
	}
	return activations
}

// Predict performs forward propagation over the network starting from the
// given input batch.
//
// Each row of input is one example, so input has shape [N, n_0] for a
// network whose first layer has n_0 units. The returned matrix has shape
// [N, n_L] and every entry lies strictly in (0, 1).
//
// A shape mismatch between the input and the weight chain panics in the
// matrix layer; it is a caller bug and is not translated.
func (n *Network) Predict(input *mat.Dense) *mat.Dense {
	activations := n.forward(input)
	return activations[len(activations)-1]
}

// PredictZeroOne is Predict with every output thresholded to binary:
// entries below 0.5 become 0, all others become 1.
func (n *Network) PredictZeroOne(input *mat.Dense) *mat.Dense {
	out := n.Predict(input)
	out.Apply(func(_, _ int, v float64) float64 {
		if v < 0.5 {
			return 0
		}
		return 1
	}, out)
	return out
}

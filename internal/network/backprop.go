package network

import "gonum.org/v1/gonum/mat"

// Gradients computes, by backpropagation, the gradient of the mean squared
// error between Predict(input) and output with respect to every weight
// matrix.
//
// The returned slice is ordered and shaped exactly like Weights(). Each
// gradient is divided by the batch size N, making it a per-example mean
// whose scale does not depend on N.
//
// output must have the same dimensions as Predict's result; mismatches
// panic in the matrix layer. An empty batch cannot reach the division by N
// because gonum rejects zero-row matrices at construction.
func (n *Network) Gradients(input, output *mat.Dense) []*mat.Dense {
	activations := n.forward(input)
	batch, _ := input.Dims()
	grads := make([]*mat.Dense, len(n.weights))

	// The output-layer error seeds the backward walk: delta = h_L - y.
	delta := &mat.Dense{}
	delta.Sub(activations[len(activations)-1], output)

	// Every layer runs the same step: gate the incoming error with the
	// sigmoid derivative, take the outer product with the layer's input
	// activations, then push the gated error back through the weights.
	for l := len(n.weights) - 1; l >= 0; l-- {
		h := activations[l+1]

		// g = delta ⊙ h(1-h), the sigmoid derivative in activation form.
		var g mat.Dense
		g.Apply(func(_, _ int, v float64) float64 { return sigmoidPrime(v) }, h)
		g.MulElem(delta, &g)

		// grad_l = h_lᵀ × g / N.
		grad := &mat.Dense{}
		grad.Mul(activations[l].T(), &g)
		grad.Scale(1/float64(batch), grad)
		grads[l] = grad

		if l > 0 {
			// Error backpropagated to layer l: delta = g × W_lᵀ.
			next := &mat.Dense{}
			next.Mul(&g, n.weights[l].T())
			delta = next
		}
	}
	return grads
}

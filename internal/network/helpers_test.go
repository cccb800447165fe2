package network_test

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// randomMatrix returns an r×c matrix with entries uniform in [-scale, +scale].
func randomMatrix(src rand.Source, r, c int, scale float64) *mat.Dense {
	rnd := rand.New(src)
	data := make([]float64, r*c)
	for i := range data {
		data[i] = (rnd.Float64()*2 - 1) * scale
	}
	return mat.NewDense(r, c, data)
}

// cloneWeights deep-copies a weight slice.
func cloneWeights(weights []*mat.Dense) []*mat.Dense {
	out := make([]*mat.Dense, len(weights))
	for i, w := range weights {
		out[i] = mat.DenseCopyOf(w)
	}
	return out
}

// halfMSE is the loss whose gradients the network computes:
// sum of squared errors over the batch, divided by 2N.
func halfMSE(pred, want *mat.Dense, batch int) float64 {
	var diff mat.Dense
	diff.Sub(pred, want)

	sum := 0.0
	r, c := diff.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := diff.At(i, j)
			sum += v * v
		}
	}
	return sum / (2 * float64(batch))
}

// xorInputs is the 4-row XOR truth-table input.
func xorInputs() *mat.Dense {
	return mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
}

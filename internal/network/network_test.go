package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/glia-ml/glia/internal/network"
)

// TestRandom_Shapes checks that Random builds one weight matrix per layer
// transition with [nIn, nOut] shapes.
func TestRandom_Shapes(t *testing.T) {
	net, err := network.Random(4, 3, 2)
	require.NoError(t, err)

	weights := net.Weights()
	require.Len(t, weights, 2)

	r, c := weights[0].Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 3, c)

	r, c = weights[1].Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)

	assert.Equal(t, 3, net.Layers())
}

// TestRandom_TooFewLayers checks the invalid-configuration error.
func TestRandom_TooFewLayers(t *testing.T) {
	for _, sizes := range [][]int{{}, {5}} {
		_, err := network.Random(sizes...)
		assert.Error(t, err, "layer sizes %v", sizes)
	}
}

// TestRandomFrom_InitBound checks that every initial weight lies inside
// the Xavier/Glorot interval for its transform.
func TestRandomFrom_InitBound(t *testing.T) {
	net, err := network.RandomFrom(rand.NewSource(1), 6, 2)
	require.NoError(t, err)

	// Xavier bound for a 6→2 transform: sqrt(6/8).
	bound := math.Sqrt(6.0 / 8.0)
	w := net.Weights()[0]
	r, c := w.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.LessOrEqual(t, math.Abs(w.At(i, j)), bound, "weight (%d,%d)", i, j)
		}
	}
}

// TestRandomFrom_Reproducible checks that the same source yields the same
// network.
func TestRandomFrom_Reproducible(t *testing.T) {
	a, err := network.RandomFrom(rand.NewSource(7), 3, 4, 2)
	require.NoError(t, err)
	b, err := network.RandomFrom(rand.NewSource(7), 3, 4, 2)
	require.NoError(t, err)

	for l := range a.Weights() {
		assert.True(t, mat.Equal(a.Weights()[l], b.Weights()[l]), "weight %d differs", l)
	}
}

// TestFromWeights checks explicit construction: the matrices are adopted
// as given, without copying.
func TestFromWeights(t *testing.T) {
	w := mat.NewDense(2, 1, []float64{0.5, -0.5})
	net := network.FromWeights(w)

	require.Len(t, net.Weights(), 1)
	assert.Same(t, w, net.Weights()[0])
	assert.Equal(t, 2, net.Layers())
}

package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

// constant returns a [2,2] network that predicts (p, 1-p) for any input.
func constant(t *testing.T, p float64) *Network {
	net, err := New([]int{2, 2}, WithSeed(1))
	require.NoError(t, err)
	err = net.SetParams(0, mat.NewDense(2, 2, nil), mat.NewVecDense(2, []float64{logit(p), logit(1 - p)}))
	require.NoError(t, err)
	return net
}

func TestEvaluate(t *testing.T) {
	net := constant(t, 0.9)

	x := [][]float64{{0.3, 0.7}, {-1, 4}}
	for _, xx := range x {
		out, err := net.Predict(xx)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{0.9, 0.1}, out, 1e-12)
	}

	loss, accuracy, err := net.Evaluate(x, [][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 0.5, accuracy)
	// (0.1² + 0.1² + 0.9² + 0.9²) / (2*2)
	assert.InDelta(t, 0.41, loss, 1e-12)
}

func TestEvaluate_Accuracy(t *testing.T) {

	type test struct {
		p        float64
		y        [][]float64
		accuracy float64
	}

	tests := map[string]test{
		"all-right": {
			p:        0.8,
			y:        [][]float64{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
			accuracy: 1,
		},
		"all-wrong": {
			p:        0.2,
			y:        [][]float64{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
			accuracy: 0,
		},
		"quarter": {
			p:        0.3,
			y:        [][]float64{{1, 0}, {1, 0}, {1, 0}, {0, 1}},
			accuracy: 0.25,
		},
	}

	x := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, accuracy, err := constant(t, tt.p).Evaluate(x, tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.accuracy, accuracy)
		})
	}
}

func TestEvaluate_DimensionMismatch(t *testing.T) {
	net := constant(t, 0.5)

	_, _, err := net.Evaluate(nil, nil)
	assert.ErrorIs(t, err, DimensionMismatchErr)

	_, _, err = net.Evaluate([][]float64{{1, 1}}, [][]float64{{1, 0}, {0, 1}})
	assert.ErrorIs(t, err, DimensionMismatchErr)

	_, _, err = net.Evaluate([][]float64{{1, 1}}, [][]float64{{1}})
	assert.ErrorIs(t, err, DimensionMismatchErr)
}

func TestEvaluate_NotFinite(t *testing.T) {
	net := constant(t, 0.5)
	require.NoError(t, net.SetParams(0, mat.NewDense(2, 2, []float64{math.NaN(), 0, 0, 0}), mat.NewVecDense(2, nil)))

	loss, _, err := net.Evaluate([][]float64{{1, 1}}, [][]float64{{1, 0}})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(loss))
}

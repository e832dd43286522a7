package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNew(t *testing.T) {

	type test struct {
		sizes []int
		err   error
	}

	tests := map[string]test{
		"no-layers": {
			err: InvalidTopologyErr,
		},
		"single-layer": {
			sizes: []int{3},
			err:   InvalidTopologyErr,
		},
		"zero-width": {
			sizes: []int{2, 0, 1},
			err:   InvalidTopologyErr,
		},
		"negative-width": {
			sizes: []int{2, 3, -1},
			err:   InvalidTopologyErr,
		},
		"perceptron": {
			sizes: []int{2, 2},
		},
		"hidden": {
			sizes: []int{2, 3, 1},
		},
		"mnist": {
			sizes: []int{784, 30, 10},
		},
		"deep": {
			sizes: []int{5, 8, 8, 4, 3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			net, err := New(tt.sizes, WithSeed(1))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, net)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sizes, net.Sizes())
			assert.Equal(t, len(tt.sizes)-1, net.Layers())
			assert.Equal(t, Initialized, net.State())
			for l := 0; l < net.Layers(); l++ {
				w, b, err := net.Params(l)
				require.NoError(t, err)
				r, c := w.Dims()
				assert.Equal(t, tt.sizes[l+1], r)
				assert.Equal(t, tt.sizes[l], c)
				assert.Equal(t, tt.sizes[l+1], b.Len())
			}
		})
	}
}

func TestNew_Seed(t *testing.T) {
	n1, err := New([]int{3, 4, 2}, WithSeed(42))
	require.NoError(t, err)
	n2, err := New([]int{3, 4, 2}, WithSeed(42))
	require.NoError(t, err)
	n3, err := New([]int{3, 4, 2}, WithSeed(43))
	require.NoError(t, err)

	for l := 0; l < n1.Layers(); l++ {
		w1, b1, _ := n1.Params(l)
		w2, b2, _ := n2.Params(l)
		w3, _, _ := n3.Params(l)
		assert.True(t, mat.Equal(w1, w2))
		assert.True(t, mat.Equal(b1, b2))
		assert.False(t, mat.Equal(w1, w3))
	}
}

func TestNew_StandardNormal(t *testing.T) {
	net, err := New([]int{200, 100}, WithSeed(3))
	require.NoError(t, err)
	w, _, err := net.Params(0)
	require.NoError(t, err)

	data := w.RawMatrix().Data
	var sum, sq float64
	for _, v := range data {
		sum += v
		sq += v * v
	}
	mean := sum / float64(len(data))
	variance := sq/float64(len(data)) - mean*mean
	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 1, variance, 0.05)
}

func TestPredict_ZeroInput(t *testing.T) {
	net, err := New([]int{2, 2})
	require.NoError(t, err)

	err = net.SetParams(0, mat.NewDense(2, 2, []float64{1, 0, 0, 1}), mat.NewVecDense(2, nil))
	require.NoError(t, err)

	out, err := net.Predict([]float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, out)
}

func TestPredict_Deterministic(t *testing.T) {
	net, err := New([]int{3, 5, 2}, WithSeed(11))
	require.NoError(t, err)

	x := []float64{0.1, -0.4, 2.5}
	out1, err := net.Predict(x)
	require.NoError(t, err)
	out2, err := net.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)

	// the returned slice is not backed by the network buffers
	out1[0] = 42
	out3, err := net.Predict([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.NotEqual(t, 42.0, out3[0])
	out4, err := net.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, out2, out4)

	for _, v := range out2 {
		assert.True(t, v > 0 && v < 1)
	}
}

func TestPredict_DimensionMismatch(t *testing.T) {
	net, err := New([]int{3, 4, 2}, WithSeed(5))
	require.NoError(t, err)
	before := net.Snapshot()

	for name, x := range map[string][]float64{
		"nil":   nil,
		"short": {1, 2},
		"long":  {1, 2, 3, 4},
	} {
		t.Run(name, func(t *testing.T) {
			out, err := net.Predict(x)
			assert.ErrorIs(t, err, DimensionMismatchErr)
			assert.Nil(t, out)
			assert.Equal(t, before, net.Snapshot())
		})
	}
}

func TestSetParams(t *testing.T) {

	type test struct {
		layer int
		w     mat.Matrix
		b     mat.Vector
		err   error
	}

	tests := map[string]test{
		"ok": {
			layer: 1,
			w:     mat.NewDense(2, 4, nil),
			b:     mat.NewVecDense(2, nil),
		},
		"negative-layer": {
			layer: -1,
			w:     mat.NewDense(4, 3, nil),
			b:     mat.NewVecDense(4, nil),
			err:   InvalidArgumentErr,
		},
		"unknown-layer": {
			layer: 2,
			w:     mat.NewDense(2, 4, nil),
			b:     mat.NewVecDense(2, nil),
			err:   InvalidArgumentErr,
		},
		"transposed-weights": {
			layer: 0,
			w:     mat.NewDense(3, 4, nil),
			b:     mat.NewVecDense(4, nil),
			err:   DimensionMismatchErr,
		},
		"short-bias": {
			layer: 0,
			w:     mat.NewDense(4, 3, nil),
			b:     mat.NewVecDense(3, nil),
			err:   DimensionMismatchErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			net, err := New([]int{3, 4, 2}, WithSeed(1))
			require.NoError(t, err)
			before := net.Snapshot()

			err = net.SetParams(tt.layer, tt.w, tt.b)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Equal(t, before, net.Snapshot())
				return
			}
			require.NoError(t, err)
			w, b, err := net.Params(tt.layer)
			require.NoError(t, err)
			assert.True(t, mat.Equal(tt.w, w))
			assert.True(t, mat.Equal(tt.b, b))
		})
	}
}

func TestParams_Copy(t *testing.T) {
	net, err := New([]int{2, 3}, WithSeed(9))
	require.NoError(t, err)

	w, b, err := net.Params(0)
	require.NoError(t, err)
	w.Set(0, 0, 100)
	b.SetVec(0, 100)

	w2, b2, err := net.Params(0)
	require.NoError(t, err)
	assert.NotEqual(t, 100.0, w2.At(0, 0))
	assert.NotEqual(t, 100.0, b2.AtVec(0))
}

func TestScaleWeights(t *testing.T) {
	net, err := New([]int{4, 9, 2}, WithSeed(17))
	require.NoError(t, err)
	scaled, err := New([]int{4, 9, 2}, WithSeed(17), WithScaledInit())
	require.NoError(t, err)

	for l, fanIn := range []float64{4, 9} {
		w, b, _ := net.Params(l)
		sw, sb, _ := scaled.Params(l)
		r, c := w.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				assert.InDelta(t, w.At(i, j)/math.Sqrt(fanIn), sw.At(i, j), 1e-12)
			}
		}
		// biases are left untouched
		assert.True(t, mat.Equal(b, sb))
	}

	net.ScaleWeights()
	assert.Equal(t, scaled.Snapshot(), net.Snapshot())
}

func TestClone(t *testing.T) {
	net, err := New([]int{3, 4, 2}, WithSeed(23))
	require.NoError(t, err)

	clone := net.Clone()
	assert.Equal(t, net.Snapshot(), clone.Snapshot())

	x := []float64{0.3, 0.2, -0.1}
	expected, err := net.Predict(x)
	require.NoError(t, err)

	clone.ScaleWeights()
	out, err := net.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, expected, out)
	assert.NotEqual(t, net.Snapshot(), clone.Snapshot())
}

func TestClone_OwnRandomness(t *testing.T) {
	x, y := separable(2, 20)
	net, err := New([]int{2, 3, 1}, WithSeed(31))
	require.NoError(t, err)
	fresh, err := New([]int{2, 3, 1}, WithSeed(31))
	require.NoError(t, err)

	clone := net.Clone()
	require.NoError(t, clone.Fit(x, y, 2, 5, 1))
	require.NoError(t, net.Fit(x, y, 2, 5, 1))
	require.NoError(t, fresh.Fit(x, y, 2, 5, 1))

	// training the clone leaves the shuffling of the original untouched
	assert.Equal(t, fresh.Snapshot(), net.Snapshot())
	assert.Equal(t, fresh.Snapshot(), clone.Snapshot())
}

func TestClone_Options(t *testing.T) {
	x, y := separable(2, 12)
	net, err := New([]int{2, 3, 1}, WithSeed(37))
	require.NoError(t, err)

	epochs := make([]int, 0)
	clone := net.Clone(WithShuffler(inOrder{}), WithObserver(ObserverFunc(func(epoch int, loss, accuracy float64) {
		epochs = append(epochs, epoch)
	})))
	inOrderNet := net.Clone(WithShuffler(inOrder{}))

	require.NoError(t, clone.Fit(x, y, 1, 4, 1))
	require.NoError(t, inOrderNet.Fit(x, y, 1, 4, 1))
	assert.Equal(t, []int{1}, epochs)
	assert.Equal(t, inOrderNet.Snapshot(), clone.Snapshot())
	assert.Equal(t, 0, net.Epochs())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "initialized", Initialized.String())
	assert.Equal(t, "trained", Trained.String())
	assert.Equal(t, "state(7)", State(7).String())
}

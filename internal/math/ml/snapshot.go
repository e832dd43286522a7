package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Snapshot is the serialisable state of a network.
type Snapshot struct {
	Sizes   []int   `json:"sizes"`
	Layers  []Layer `json:"layers"`
	Epochs  int     `json:"epochs"`
	Updates int     `json:"updates"`
}

// Layer holds the parameters of one layer, weights in row-major order.
type Layer struct {
	Weights []float64 `json:"weights"`
	Biases  []float64 `json:"biases"`
}

// Snapshot copies the network parameters into a Snapshot.
func (n *Network) Snapshot() Snapshot {
	layers := make([]Layer, len(n.layers))
	for i, l := range n.layers {
		r, c := l.w.Dims()
		w := make([]float64, 0, r*c)
		for j := 0; j < r; j++ {
			w = append(w, l.w.RawRowView(j)...)
		}
		layers[i] = Layer{
			Weights: w,
			Biases:  append([]float64(nil), l.b.RawVector().Data...),
		}
	}
	return Snapshot{
		Sizes:   n.Sizes(),
		Layers:  layers,
		Epochs:  n.epochs,
		Updates: n.updates,
	}
}

// FromSnapshot restores a network from a snapshot.
// Options apply as for New, apart from the parameter initialisation.
func FromSnapshot(s Snapshot, options ...Option) (*Network, error) {
	n, err := build(s.Sizes, options...)
	if err != nil {
		return nil, err
	}
	if len(s.Layers) != len(n.layers) {
		return nil, fmt.Errorf("snapshot has %d layers for sizes %v: %w", len(s.Layers), s.Sizes, DimensionMismatchErr)
	}
	for i, l := range s.Layers {
		rows, cols := s.Sizes[i+1], s.Sizes[i]
		if len(l.Weights) != rows*cols || len(l.Biases) != rows {
			return nil, fmt.Errorf("layer %d has %d weights and %d biases, expected %d and %d: %w",
				i, len(l.Weights), len(l.Biases), rows*cols, rows, DimensionMismatchErr)
		}
		err := n.SetParams(i,
			mat.NewDense(rows, cols, append([]float64(nil), l.Weights...)),
			mat.NewVecDense(rows, append([]float64(nil), l.Biases...)))
		if err != nil {
			return nil, err
		}
	}
	n.epochs = s.Epochs
	n.updates = s.Updates
	return n, nil
}

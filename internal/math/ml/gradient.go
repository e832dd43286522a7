package ml

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// gradient backpropagates the squared error of the last forward pass against y.
// It must follow the forward pass of the matching input.
func (n *Network) gradient(y []float64) error {
	out := n.sizes[len(n.sizes)-1]
	if len(y) != out {
		return fmt.Errorf("target must have length %d but got %d: %w", out, len(y), DimensionMismatchErr)
	}

	last := len(n.layers) - 1
	for i := last; i >= 0; i-- {
		l := n.layers[i]
		if i == last {
			// (v_L - y) * σ'(z_L)
			for j := 0; j < l.delta.Len(); j++ {
				l.delta.SetVec(j, (l.v.AtVec(j)-y[j])*sigmoidDerivative(l.z.AtVec(j)))
			}
		} else {
			// W_{l+1}^T δ_{l+1} * σ'(z_l)
			next := n.layers[i+1]
			l.delta.MulVec(next.w.T(), next.delta)
			for j := 0; j < l.delta.Len(); j++ {
				l.delta.SetVec(j, l.delta.AtVec(j)*sigmoidDerivative(l.z.AtVec(j)))
			}
		}
		l.dw.Outer(1, l.delta, n.activation(i))
	}
	return nil
}

// accumulate adds the gradients of the last example to the batch sums.
func (n *Network) accumulate() {
	for _, l := range n.layers {
		l.sumW.Add(l.sumW, l.dw)
		l.sumB.AddVec(l.sumB, l.delta)
	}
}

// update applies the mean batch gradient over count examples and resets the sums.
func (n *Network) update(eta float64, count int) {
	rate := eta / float64(count)
	for _, l := range n.layers {
		floats.AddScaled(l.w.RawMatrix().Data, -rate, l.sumW.RawMatrix().Data)
		floats.AddScaled(l.b.RawVector().Data, -rate, l.sumB.RawVector().Data)
	}
	n.reset()
	n.updates++
}

func (n *Network) reset() {
	for _, l := range n.layers {
		l.sumW.Zero()
		l.sumB.Zero()
	}
}

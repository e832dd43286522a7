package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Fit trains the network with mini-batch gradient descent.
// Every epoch shuffles the examples, applies one update per batchSize examples
// (the last batch of the epoch may be smaller and is averaged over its own size)
// and reports the loss and accuracy on the given data to the observers.
func (n *Network) Fit(x, y [][]float64, epochs, batchSize int, eta float64) error {
	if epochs <= 0 {
		return fmt.Errorf("epochs must be positive but got %d: %w", epochs, InvalidArgumentErr)
	}
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be positive but got %d: %w", batchSize, InvalidArgumentErr)
	}
	if !(eta > 0) || math.IsInf(eta, 1) {
		return fmt.Errorf("learning rate must be positive but got %v: %w", eta, InvalidArgumentErr)
	}
	if err := n.checkData(x, y); err != nil {
		return err
	}

	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}

	for e := 0; e < epochs; e++ {
		n.shuffler.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		n.reset()
		count := 0
		for k, i := range order {
			n.forward(x[i])
			if err := n.gradient(y[i]); err != nil {
				return err
			}
			n.accumulate()
			count++
			if count >= batchSize || k == len(order)-1 {
				n.update(eta, count)
				count = 0
			}
		}
		n.epochs++

		loss, accuracy, err := n.Evaluate(x, y)
		if err != nil {
			return err
		}
		n.notify(n.epochs, loss, accuracy)
	}
	return nil
}

// Evaluate returns the halved mean squared error and the argmax accuracy over the given data.
func (n *Network) Evaluate(x, y [][]float64) (loss, accuracy float64, err error) {
	if err := n.checkData(x, y); err != nil {
		return 0, 0, err
	}
	hits := 0
	for i := range x {
		out := n.forward(x[i]).RawVector().Data
		for j, v := range out {
			d := v - y[i][j]
			loss += d * d
		}
		if floats.MaxIdx(out) == floats.MaxIdx(y[i]) {
			hits++
		}
	}
	size := float64(len(x))
	return loss / (2 * size), float64(hits) / size, nil
}

// checkData validates a data set against the network before anything is computed.
func (n *Network) checkData(x, y [][]float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("got %d inputs for %d targets: %w", len(x), len(y), DimensionMismatchErr)
	}
	if len(x) == 0 {
		return fmt.Errorf("empty data set: %w", DimensionMismatchErr)
	}
	in, out := n.sizes[0], n.sizes[len(n.sizes)-1]
	for i := range x {
		if len(x[i]) != in {
			return fmt.Errorf("input %d must have length %d but got %d: %w", i, in, len(x[i]), DimensionMismatchErr)
		}
		if len(y[i]) != out {
			return fmt.Errorf("target %d must have length %d but got %d: %w", i, out, len(y[i]), DimensionMismatchErr)
		}
	}
	return nil
}

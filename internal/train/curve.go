package train

import (
	"fmt"

	"github.com/drakos74/neurons/internal/buffer"
	coinmath "github.com/drakos74/neurons/internal/math"
)

const (
	trainLossColumn = 1
	testLossColumn  = 3
)

// Curve is the learning curve of a training run, one row per epoch.
type Curve struct {
	rows *buffer.MultiBuffer
}

// NewCurve creates a new empty learning curve.
func NewCurve() *Curve {
	return &Curve{rows: buffer.NewMultiBuffer(0)}
}

// Push adds the epoch to the curve.
func (c *Curve) Push(e Epoch) {
	c.rows.Push(e.row()...)
}

// Len returns the number of epochs in the curve.
func (c *Curve) Len() int {
	return c.rows.Len()
}

// Epochs returns all the epochs of the curve.
func (c *Curve) Epochs() []Epoch {
	rows := c.rows.Get()
	ee := make([]Epoch, len(rows))
	for i, row := range rows {
		ee[i] = fromRow(row)
	}
	return ee
}

// Last returns the latest epoch.
func (c *Curve) Last() (Epoch, bool) {
	if c.rows.Len() == 0 {
		return Epoch{}, false
	}
	return fromRow(c.rows.Last()), true
}

// Best returns the epoch with the lowest test loss.
func (c *Curve) Best() (Epoch, bool) {
	if c.rows.Len() == 0 {
		return Epoch{}, false
	}
	stats := buffer.NewStats()
	for _, l := range c.rows.Column(testLossColumn) {
		stats.Push(l)
	}
	_, i := stats.Min()
	return fromRow(c.rows.Get()[i]), true
}

// TrainLoss returns the train losses of all epochs.
func (c *Curve) TrainLoss() []float64 {
	return c.rows.Column(trainLossColumn)
}

// TestLoss returns the test losses of all epochs.
func (c *Curve) TestLoss() []float64 {
	return c.rows.Column(testLossColumn)
}

// Slope returns the linear trend of the test loss over the last window epochs.
func (c *Curve) Slope(window int) (float64, error) {
	if window < 2 {
		return 0, fmt.Errorf("need a window of at least 2 epochs but got %d", window)
	}
	loss := c.TestLoss()
	if len(loss) < window {
		return 0, fmt.Errorf("need %d epochs but got %d", window, len(loss))
	}
	return coinmath.Slope(loss[len(loss)-window:])
}

// Oscillation returns the share of the spectrum of the train loss changes
// that lies in the upper half of the frequencies.
// Values close to 1 mean the loss jumps back and forth between epochs.
func (c *Curve) Oscillation() float64 {
	diff := coinmath.Diff(c.TrainLoss())
	if len(diff) < 4 {
		return 0
	}
	return coinmath.FFT(diff).Above(len(diff) / 4)
}

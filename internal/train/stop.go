package train

import (
	"fmt"
	"math"

	"github.com/drakos74/neurons/internal/buffer"
	coinmath "github.com/drakos74/neurons/internal/math"
)

// stopper decides when the test loss stopped improving.
type stopper struct {
	patience int
	minDelta float64
	window   int

	recent *buffer.Buffer
	best   float64
	since  int
}

func newStopper(cfg Config) *stopper {
	return &stopper{
		patience: cfg.Patience,
		minDelta: cfg.MinDelta,
		window:   cfg.Window,
		recent:   buffer.NewBuffer(cfg.Window),
		best:     math.Inf(1),
	}
}

// check returns a reason for stopping after the latest epoch of the curve, or an empty string.
func (s *stopper) check(curve *Curve) string {
	if s.patience == 0 {
		return ""
	}
	last, ok := curve.Last()
	if !ok {
		return ""
	}
	if last.TestLoss < s.best-s.minDelta {
		s.best = last.TestLoss
		s.since = 0
	} else {
		s.since++
	}
	if s.since >= s.patience {
		return fmt.Sprintf("no improvement for %d epochs", s.since)
	}
	if s.window == 0 {
		return ""
	}
	s.recent.Push(last.TestLoss)
	if s.recent.Full() {
		slope, err := coinmath.Slope(s.recent.Get())
		if err == nil && slope >= 0 {
			return fmt.Sprintf("test loss trend over %d epochs is %s", s.window, formatSlope(slope))
		}
	}
	return ""
}

func formatSlope(slope float64) string {
	if slope == 0 {
		return "flat"
	}
	return "increasing"
}

package train

import (
	"errors"
	"fmt"
	"math"

	"github.com/drakos74/neurons/internal/math/ml"
)

var (
	ConfigErr   = errors.New("invalid config")
	DivergedErr = errors.New("training diverged")
)

// Config defines the network topology and the training hyperparameters.
type Config struct {
	Layers       []int   `json:"layers"`
	Epochs       int     `json:"epochs"`
	BatchSize    int     `json:"batch_size"`
	LearningRate float64 `json:"learning_rate"`
	// Patience is the number of epochs without improvement of the test loss before stopping.
	// 0 disables early stopping.
	Patience int     `json:"patience"`
	MinDelta float64 `json:"min_delta"`
	// Window is the number of recent test losses the trend is measured on.
	// 0 disables the trend check.
	Window     int    `json:"window"`
	Seed       uint64 `json:"seed"`
	ScaledInit bool   `json:"scaled_init"`
}

// Validate checks the config values.
func (c Config) Validate() error {
	if len(c.Layers) < 2 {
		return fmt.Errorf("need at least 2 layers but got %v: %w", c.Layers, ConfigErr)
	}
	for i, l := range c.Layers {
		if l <= 0 {
			return fmt.Errorf("layer %d has non-positive size %d: %w", i, l, ConfigErr)
		}
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive but got %d: %w", c.Epochs, ConfigErr)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive but got %d: %w", c.BatchSize, ConfigErr)
	}
	if !(c.LearningRate > 0) || math.IsInf(c.LearningRate, 1) {
		return fmt.Errorf("learning rate must be positive but got %v: %w", c.LearningRate, ConfigErr)
	}
	if c.Patience < 0 {
		return fmt.Errorf("patience must not be negative but got %d: %w", c.Patience, ConfigErr)
	}
	if c.MinDelta < 0 {
		return fmt.Errorf("min delta must not be negative but got %v: %w", c.MinDelta, ConfigErr)
	}
	if c.Window == 1 || c.Window < 0 {
		return fmt.Errorf("window must be 0 or at least 2 but got %d: %w", c.Window, ConfigErr)
	}
	return nil
}

// Network creates a new network for the config topology.
func (c Config) Network(options ...ml.Option) (*ml.Network, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []ml.Option{ml.WithSeed(c.Seed)}
	if c.ScaledInit {
		opts = append(opts, ml.WithScaledInit())
	}
	return ml.New(c.Layers, append(opts, options...)...)
}

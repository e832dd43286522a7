package dataset

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	BlobsKind     = "blobs"
	SeparableKind = "separable"
	XORKind       = "xor"
)

// Config describes a synthetic data set and its train/test split.
type Config struct {
	Kind        string  `json:"kind"`
	Size        int     `json:"size"`
	Classes     int     `json:"classes"`
	Dim         int     `json:"dim"`
	Spread      float64 `json:"spread"`
	Noise       float64 `json:"noise"`
	Ratio       float64 `json:"ratio"`
	Seed        uint64  `json:"seed"`
	Standardize bool    `json:"standardize"`
}

// Generate creates the configured data set, shuffles it and splits it in a train and a test set.
// Standardization uses the statistics of the train set only.
func (c Config) Generate() (Set, Set, error) {
	if c.Size <= 0 {
		return Set{}, Set{}, fmt.Errorf("size must be positive but got %d: %w", c.Size, ArgumentErr)
	}
	src := rand.NewSource(c.Seed)
	var set Set
	switch c.Kind {
	case BlobsKind:
		s, err := Blobs(src, c.Size, c.Classes, c.Dim, c.Spread)
		if err != nil {
			return Set{}, Set{}, err
		}
		set = s
	case SeparableKind:
		set = Separable(src, c.Size)
	case XORKind:
		set = XOR(src, c.Size, c.Noise)
	default:
		return Set{}, Set{}, fmt.Errorf("unknown data set kind '%s': %w", c.Kind, ArgumentErr)
	}
	train, test, err := Split(Shuffle(src, set), c.Ratio)
	if err != nil {
		return Set{}, Set{}, err
	}
	if c.Standardize {
		scaler := NewScaler(train)
		train, test = scaler.Apply(train), scaler.Apply(test)
	}
	return train, test, nil
}

package dataset

import (
	"errors"
	"fmt"

	"github.com/drakos74/go-ex-machina/xmath"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

var (
	EmptyErr    = errors.New("empty data set")
	MismatchErr = errors.New("inconsistent data set")
	LabelErr    = errors.New("invalid label")
	RatioErr    = errors.New("invalid split ratio")
	ArgumentErr = errors.New("invalid argument")
)

// Set is a collection of input vectors and their expected outputs.
type Set struct {
	X [][]float64 `json:"x"`
	Y [][]float64 `json:"y"`
}

// Len returns the number of examples.
func (s Set) Len() int {
	return len(s.X)
}

// Dims returns the input and output width of the set.
// It assumes the set is valid.
func (s Set) Dims() (int, int) {
	if len(s.X) == 0 || len(s.Y) == 0 {
		return 0, 0
	}
	return len(s.X[0]), len(s.Y[0])
}

// Validate checks that every example has the same input and output width.
func (s Set) Validate() error {
	if len(s.X) == 0 {
		return EmptyErr
	}
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%d inputs for %d outputs: %w", len(s.X), len(s.Y), MismatchErr)
	}
	in, out := s.Dims()
	if in == 0 || out == 0 {
		return fmt.Errorf("zero width vectors: %w", MismatchErr)
	}
	for i := range s.X {
		if len(s.X[i]) != in {
			return fmt.Errorf("input %d has width %d instead of %d: %w", i, len(s.X[i]), in, MismatchErr)
		}
		if len(s.Y[i]) != out {
			return fmt.Errorf("output %d has width %d instead of %d: %w", i, len(s.Y[i]), out, MismatchErr)
		}
	}
	return nil
}

// OneHot encodes the label as a vector of the given number of classes.
func OneHot(label, classes int) ([]float64, error) {
	if label < 0 || label >= classes {
		return nil, fmt.Errorf("label %d for %d classes: %w", label, classes, LabelErr)
	}
	v := xmath.Vec(classes)
	v[label] = 1
	return v, nil
}

// Labels one-hot encodes all the given labels.
func Labels(ids []int, classes int) ([][]float64, error) {
	yy := make([][]float64, len(ids))
	for i, id := range ids {
		y, err := OneHot(id, classes)
		if err != nil {
			return nil, fmt.Errorf("could not encode example %d: %w", i, err)
		}
		yy[i] = y
	}
	return yy, nil
}

// Label decodes a one-hot vector back to its label.
func Label(y []float64) int {
	return floats.MaxIdx(y)
}

// Split splits the set in two, the first part holding the given ratio of the examples.
func Split(set Set, ratio float64) (Set, Set, error) {
	if ratio <= 0 || ratio >= 1 {
		return Set{}, Set{}, fmt.Errorf("ratio %v: %w", ratio, RatioErr)
	}
	cut := int(ratio*float64(set.Len()) + 0.5)
	if cut == 0 || cut == set.Len() {
		return Set{}, Set{}, fmt.Errorf("ratio %v leaves an empty part of %d examples: %w", ratio, set.Len(), RatioErr)
	}
	return Set{X: set.X[:cut], Y: set.Y[:cut]}, Set{X: set.X[cut:], Y: set.Y[cut:]}, nil
}

// Shuffle returns a new set with the examples in random order.
func Shuffle(src rand.Source, set Set) Set {
	order := make([]int, set.Len())
	for i := range order {
		order[i] = i
	}
	rand.New(src).Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	shuffled := Set{
		X: make([][]float64, len(order)),
		Y: make([][]float64, len(order)),
	}
	for i, k := range order {
		shuffled.X[i] = set.X[k]
		shuffled.Y[i] = set.Y[k]
	}
	return shuffled
}

package dataset

import (
	"fmt"

	"github.com/drakos74/go-ex-machina/xmath"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/drakos74/neurons/internal/buffer"
)

const spacing = 4.0

// Blobs generates gaussian clusters, one per class, with one-hot targets.
// The cluster centres lie on the first axis, spacing units apart.
func Blobs(src rand.Source, n, classes, dim int, spread float64) (Set, error) {
	if n <= 0 || classes < 2 || dim <= 0 || spread < 0 {
		return Set{}, fmt.Errorf("n=%d classes=%d dim=%d spread=%v: %w", n, classes, dim, spread, ArgumentErr)
	}
	noise := distuv.Normal{Mu: 0, Sigma: spread, Src: src}
	centres := make([]xmath.Vector, classes)
	for c := range centres {
		centres[c] = xmath.Vec(dim)
		centres[c][0] = spacing*float64(c) - spacing*float64(classes-1)/2
	}
	ids := make([]int, n)
	x := make([][]float64, n)
	for i := range x {
		ids[i] = i % classes
		x[i] = centres[ids[i]].Add(sample(noise, dim))
	}
	y, err := Labels(ids, classes)
	if err != nil {
		return Set{}, err
	}
	return Set{X: x, Y: y}, nil
}

// Separable generates two linearly separable clusters around (-1,-1) and (1,1) with a scalar 0/1 target.
func Separable(src rand.Source, n int) Set {
	noise := distuv.Normal{Mu: 0, Sigma: 0.3, Src: src}
	set := Set{
		X: make([][]float64, n),
		Y: make([][]float64, n),
	}
	for i := range set.X {
		c := float64(i % 2)
		centre := xmath.Vec(2).With(2*c-1, 2*c-1)
		set.X[i] = centre.Add(sample(noise, 2))
		set.Y[i] = []float64{c}
	}
	return set
}

// XOR generates the four corners of the unit square with the exclusive or of the coordinates as target.
func XOR(src rand.Source, n int, noise float64) Set {
	var gen func() float64
	if noise > 0 {
		gen = distuv.Normal{Mu: 0, Sigma: noise, Src: src}.Rand
	} else {
		gen = func() float64 { return 0 }
	}
	set := Set{
		X: make([][]float64, n),
		Y: make([][]float64, n),
	}
	for i := range set.X {
		a, b := float64(i%2), float64((i/2)%2)
		set.X[i] = []float64{a + gen(), b + gen()}
		y := 0.0
		if a != b {
			y = 1
		}
		set.Y[i] = []float64{y}
	}
	return set
}

// Scaler holds the per feature statistics of a set.
type Scaler struct {
	stats []*buffer.Stats
}

// NewScaler collects the input feature statistics of the set.
func NewScaler(set Set) *Scaler {
	in, _ := set.Dims()
	stats := make([]*buffer.Stats, in)
	for j := range stats {
		stats[j] = buffer.NewStats()
	}
	for _, x := range set.X {
		for j, v := range x {
			stats[j].Push(v)
		}
	}
	return &Scaler{stats: stats}
}

// Apply returns a copy of the set with every input feature shifted and scaled
// by the collected mean and standard deviation.
// Constant features are only centred.
func (s *Scaler) Apply(set Set) Set {
	scaled := Set{
		X: make([][]float64, set.Len()),
		Y: set.Y,
	}
	for i, x := range set.X {
		scaled.X[i] = make([]float64, len(x))
		for j, v := range x {
			scaled.X[i][j] = v - s.stats[j].Avg()
			if sd := s.stats[j].StDev(); sd > 0 {
				scaled.X[i][j] /= sd
			}
		}
	}
	return scaled
}

// Standardize scales every input feature of the set to zero mean and unit variance.
func Standardize(set Set) Set {
	return NewScaler(set).Apply(set)
}

func sample(noise distuv.Normal, dim int) xmath.Vector {
	v := xmath.Vec(dim)
	for i := range v {
		v[i] = noise.Rand()
	}
	return v
}

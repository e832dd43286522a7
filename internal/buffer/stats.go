package buffer

import (
	"math"
)

// Stats keeps the running mean, variance and minimum of a series of numbers.
type Stats struct {
	count          int
	min            float64
	minAt          int
	mean, dSquared float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{
		min: math.MaxFloat64,
	}
}

// Push adds another element to the set.
func (s *Stats) Push(v float64) {
	s.count++
	diff := (v - s.mean) / float64(s.count)
	mean := s.mean + diff
	s.dSquared += (v - mean) * (v - s.mean)
	s.mean = mean

	if s.min > v {
		s.min = v
		s.minAt = s.count - 1
	}
}

// Avg returns the average value of the set.
func (s Stats) Avg() float64 {
	return s.mean
}

// Min returns the smallest element and the order it was pushed in.
func (s Stats) Min() (float64, int) {
	return s.min, s.minAt
}

// Variance is the population variance of the set.
func (s Stats) Variance() float64 {
	return s.dSquared / float64(s.count)
}

// StDev is the standard deviation of the set.
func (s Stats) StDev() float64 {
	return math.Sqrt(s.Variance())
}

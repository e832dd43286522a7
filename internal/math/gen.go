package math

// Series returns the first limit multiples of factor, starting at 0.
func Series(factor float64, limit int) []float64 {
	xx := make([]float64, limit)
	for i := range xx {
		xx[i] = factor * float64(i)
	}
	return xx
}

// Diff returns the differences of consecutive elements.
func Diff(xx []float64) []float64 {
	if len(xx) < 2 {
		return []float64{}
	}
	dd := make([]float64, len(xx)-1)
	for i := 1; i < len(xx); i++ {
		dd[i-1] = xx[i] - xx[i-1]
	}
	return dd
}

package math

import (
	"math"
	"strconv"
)

// maxPrecision caps the decimals Format prints for very small values.
const maxPrecision = 8

// Format formats a float keeping about 2 significant digits for values below 1
// and 2 decimals otherwise.
func Format(f float64) string {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= 1 {
		return strconv.FormatFloat(f, 'f', 2, 64)
	}
	p := 2 + O10(f)
	if p > maxPrecision {
		p = maxPrecision
	}
	return strconv.FormatFloat(f, 'f', p, 64)
}

// O10 returns the order of the value on a decimal basis
// NOTE : this does not differentiate between values bigger or smaller than 1
func O10(f float64) int {
	log10 := math.Log10(math.Abs(f))
	return int(math.Abs(log10))
}

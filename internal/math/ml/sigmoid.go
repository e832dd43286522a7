package ml

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// sigmoid is the logistic function written through tanh.
func sigmoid(x float64) float64 {
	return 0.5 * (math.Tanh(0.5*x) + 1)
}

func sigmoidDerivative(x float64) float64 {
	s := sigmoid(x)
	return s * (1 - s)
}

// apply sets dst[i] = f(src[i]) for every element of src.
func apply(dst, src *mat.VecDense, f func(x float64) float64) {
	for i := 0; i < src.Len(); i++ {
		dst.SetVec(i, f(src.AtVec(i)))
	}
}

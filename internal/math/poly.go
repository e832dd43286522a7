package math

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Fit fits the given series of x and y into a polynomial function of the given degree
// out put is a vector with the coefficients of the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
func Fit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("got %d x values for %d y values", len(x), len(y))
	}
	if len(x) <= degree {
		return nil, fmt.Errorf("need more than %d points for a polynomial of degree %d but got %d", degree, degree, len(x))
	}

	a := vandermonde(x, degree)
	b := mat.NewDense(len(y), 1, append([]float64(nil), y...))
	c := mat.NewDense(degree+1, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	if err := qr.SolveTo(c, false, b); err != nil {
		return nil, fmt.Errorf("could not solve least squares: %w", err)
	}

	return mat.Col(nil, 0, c), nil
}

// Slope returns the slope of the least squares line through the values,
// taken at unit distance from each other.
func Slope(y []float64) (float64, error) {
	c, err := Fit(Series(1, len(y)), y, 1)
	if err != nil {
		return 0, err
	}
	return c[1], nil
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}

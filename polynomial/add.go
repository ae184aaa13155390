package polynomial

import (
	"github.com/tuneinsight/lagrange/utils"
)

// Add returns the sum of the polynomials a and b.
// The shorter operand is left-padded with zeros so that coefficients
// of the same degree are aligned. The result has max(len(a), len(b))
// coefficients and leading zeros are kept.
func Add(a, b Coefficients) (c Coefficients) {
	c = make(Coefficients, utils.Max(len(a), len(b)))
	AddAllocFree(a, b, c)
	return
}

// AddAllocFree writes a + b on c, aligning a and b on their constant term.
// c must have max(len(a), len(b)) coefficients and can alias the longest operand.
func AddAllocFree(a, b, c Coefficients) {

	if len(c) != utils.Max(len(a), len(b)) {
		panic("cannot AddAllocFree: len(c) != max(len(a), len(b))")
	}

	// c is written from the constant term upwards so that it may alias the
	// longest operand.
	for i, j, k := len(a)-1, len(b)-1, len(c)-1; k >= 0; i, j, k = i-1, j-1, k-1 {
		var ai, bj float64
		if i >= 0 {
			ai = a[i]
		}
		if j >= 0 {
			bj = b[j]
		}
		c[k] = ai + bj
	}
}

// MulScalar returns the polynomial a scaled by y/d, each coefficient
// being computed as (a[i] * y) / d.
func MulScalar(a Coefficients, y, d float64) (c Coefficients) {
	c = make(Coefficients, len(a))
	for i := range a {
		c[i] = a[i] * y / d
	}
	return
}

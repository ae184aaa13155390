package polynomial

import (
	"github.com/tuneinsight/lagrange/utils"
)

// Multiply returns the product of the polynomials a and b.
//
// Both operands are left-padded with zeros to the same power-of-two
// length N and multiplied by splitting them recursively into their
// high and low halves. The product of the padded operands has 2N-1
// coefficients; its leading zeros are stripped before it is returned,
// and the zero polynomial is returned as Coefficients{0}.
//
// The inputs are never modified and the result never shares memory
// with them.
func Multiply(a, b Coefficients) Coefficients {

	if utils.Min(len(a), len(b)) == 0 {
		return Coefficients{0}
	}

	N := utils.NextPowerOfTwo(utils.Max(len(a), len(b)))

	buff := make([]float64, 2*N)
	utils.PadLeftAllocFree([]float64(a), buff[:N])
	utils.PadLeftAllocFree([]float64(b), buff[N:])

	return utils.TrimLeadingZeros(multiply(buff[:N], buff[N:]))
}

// multiply returns the 2n-1 coefficients of a*b for two operands of the
// same power-of-two length n.
// With a = a1*x^(n/2) + a0 and b = b1*x^(n/2) + b0, the product is
// a1b1*x^n + (a1b0 + a0b1)*x^(n/2) + a0b0.
func multiply(a, b []float64) (r []float64) {

	n := len(a)

	r = make([]float64, 2*n-1)

	if n == 1 {
		r[0] = a[0] * b[0]
		return
	}

	h := n >> 1

	// a1b1 fills r[0:n-1], a0b0 fills r[n:2n-1], r[n-1] is left to zero.
	copy(r, multiply(a[:h], b[:h]))
	copy(r[n:], multiply(a[h:], b[h:]))

	a1b0 := multiply(a[:h], b[h:])
	a0b1 := multiply(a[h:], b[:h])

	for i := range a1b0 {
		r[h+i] += a1b0[i] + a0b1[i]
	}

	return
}

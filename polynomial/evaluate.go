package polynomial

import (
	"math"
	"math/big"

	"github.com/tuneinsight/lagrange/utils/bignum"
)

// Evaluate returns y = sum coeffs[i] * x^(n-1-i) where n = len(coeffs).
// Each monomial is computed with math.Pow and the monomials are summed
// from the highest to the lowest degree. Evaluate returns 0 for an empty
// coeffs.
func Evaluate(coeffs Coefficients, x float64) (y float64) {
	n := len(coeffs)
	for i := range coeffs {
		y += math.Pow(x, float64(n-1-i)) * coeffs[i]
	}
	return
}

// EvaluateAll evaluates the polynomial at all the given x values. If an output
// slice is given, the output is written to that slice (the slice is still
// returned as a convenience).
//
// If more than one output slice is provided, only the first is used.
func EvaluateAll(coeffs Coefficients, xs []float64, out ...[]float64) []float64 {

	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}

	if len(out[0]) < len(xs) {
		panic("cannot EvaluateAll: len(out[0]) < len(xs)")
	}

	for i, x := range xs {
		out[0][i] = Evaluate(coeffs, x)
	}

	return out[0]
}

// EvaluateBig evaluates the polynomial at x with prec bits of precision.
// The coefficients and x are converted exactly to big.Float, so the
// only rounding errors are those of the prec-bit arithmetic.
func EvaluateBig(coeffs Coefficients, x float64, prec uint) (y *big.Float) {
	poly := make([]*big.Float, len(coeffs))
	for i := range coeffs {
		poly[i] = bignum.NewFloat(coeffs[i], prec)
	}
	return bignum.MonomialEval(bignum.NewFloat(x, prec), poly)
}

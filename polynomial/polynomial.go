// Package polynomial implements arithmetic on real polynomials
// represented by their monomial coefficients.
package polynomial

import (
	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/lagrange/utils"
)

// Coefficients is a polynomial given by its coefficients ordered
// from the highest to the lowest degree: for a slice of length n,
// element 0 is the coefficient of x^(n-1) and element n-1 is the
// constant term.
type Coefficients []float64

// Degree returns the degree of the polynomial, that is len(c)-1,
// without inspecting leading zero coefficients.
// The degree of an empty Coefficients is -1.
func (c Coefficients) Degree() int {
	return len(c) - 1
}

// Clone returns a deep copy of the target.
func (c Coefficients) Clone() Coefficients {
	if c == nil {
		return nil
	}
	clone := make(Coefficients, len(c))
	copy(clone, c)
	return clone
}

// Equal performs an exact equality check between the target and other.
func (c Coefficients) Equal(other Coefficients) bool {
	return cmp.Equal([]float64(c), []float64(other))
}

// Trim returns a new Coefficients without the leading zero coefficients
// of the target. The zero polynomial is returned as Coefficients{0}.
func (c Coefficients) Trim() Coefficients {
	return utils.TrimLeadingZeros(c)
}

// Evaluate returns the value of the polynomial at x.
func (c Coefficients) Evaluate(x float64) float64 {
	return Evaluate(c, x)
}

package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^(n-1-i) * poly[i], where poly is
// ordered from the highest to the lowest degree.
// The precision of x is used as reference precision for y.
// MonomialEval returns zero for an empty poly.
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {

	y = new(big.Float).SetPrec(x.Prec())

	for i := range poly {
		y.Mul(y, x)
		y.Add(y, poly[i])
	}

	return
}

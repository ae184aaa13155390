package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Log", 1e-12, math.Log, Log, 1e-13, t)

	t.Run("Log2", func(t *testing.T) {
		y, _ := Log2(128).Float64()
		require.Equal(t, math.Ln2, y)
	})

	t.Run("NewFloat", func(t *testing.T) {
		require.Equal(t, uint(128), NewFloat(1.5, 128).Prec())
		require.Equal(t, 0, NewFloat(3, 64).Cmp(big.NewFloat(3)))
		require.Equal(t, 0, NewFloat(int64(-3), 64).Cmp(big.NewFloat(-3)))
		require.Equal(t, 0, NewFloat(uint64(7), 64).Cmp(big.NewFloat(7)))
		require.Equal(t, 0, NewFloat(big.NewInt(5), 64).Cmp(big.NewFloat(5)))
		require.Equal(t, 0, NewFloat(nil, 64).Sign())
		require.Panics(t, func() { NewFloat("1", 64) })
	})
}

func TestPrecision(t *testing.T) {
	require.True(t, math.IsInf(Precision(NewFloat(0, 128)), 1))
	require.InDelta(t, 10, Precision(NewFloat(math.Ldexp(1, -10), 128)), 1e-12)
	require.InDelta(t, 10, Precision(NewFloat(-math.Ldexp(1, -10), 128)), 1e-12)
	require.InDelta(t, -3, Precision(NewFloat(8, 128)), 1e-12)
	require.InDelta(t, math.Log2(1/3e-7), Precision(NewFloat(3e-7, 128)), 1e-9)
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

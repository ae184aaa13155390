package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, -3.5, Min(2.0, -3.5))
	require.Equal(t, 2, Max(1, 2))
	require.Equal(t, 2.0, Max(2.0, -3.5))
}

func TestIsPowerOfTwo(t *testing.T) {
	require.False(t, IsPowerOfTwo(0))
	require.False(t, IsPowerOfTwo(-4))
	require.True(t, IsPowerOfTwo(1))
	require.True(t, IsPowerOfTwo(2))
	require.False(t, IsPowerOfTwo(3))
	require.True(t, IsPowerOfTwo(1024))
	require.False(t, IsPowerOfTwo(1025))
}

func TestNextPowerOfTwo(t *testing.T) {
	require.Equal(t, 1, NextPowerOfTwo(0))
	require.Equal(t, 1, NextPowerOfTwo(1))
	require.Equal(t, 2, NextPowerOfTwo(2))
	require.Equal(t, 4, NextPowerOfTwo(3))
	require.Equal(t, 8, NextPowerOfTwo(5))
	require.Equal(t, 8, NextPowerOfTwo(8))
	require.Equal(t, 16, NextPowerOfTwo(9))

	for n := 1; n < 300; n++ {
		p := NextPowerOfTwo(n)
		require.True(t, IsPowerOfTwo(p))
		require.GreaterOrEqual(t, p, n)
		require.Less(t, p>>1, n)
	}
}

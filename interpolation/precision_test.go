package interpolation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/lagrange/polynomial"
)

func TestGetFitStats(t *testing.T) {

	t.Run("Exact", func(t *testing.T) {
		fit, err := GetFitStats(polynomial.Coefficients{1, 0, 0}, squares)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0, 0}, fit.Deltas)
		require.Equal(t, 0.0, fit.MaxDelta)
		require.Equal(t, 0.0, fit.STDDelta)
		require.True(t, math.IsInf(fit.MinPrecision, 1))
		for _, prec := range fit.Precisions {
			require.True(t, math.IsInf(prec, 1))
		}
	})

	t.Run("Constant", func(t *testing.T) {
		// |1 - y| over y = 0, 1, 4
		fit, err := GetFitStats(polynomial.Coefficients{1}, squares)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 0, 3}, fit.Deltas)
		require.Equal(t, 3.0, fit.MaxDelta)
		require.Equal(t, 0.0, fit.MinDelta)
		require.InDelta(t, 4.0/3, fit.MeanDelta, 1e-15)
		require.Equal(t, 1.0, fit.MedianDelta)
		require.InDelta(t, math.Sqrt(14.0/9), fit.STDDelta, 1e-15)
		require.InDelta(t, -math.Log2(3), fit.MinPrecision, 1e-12)
		require.True(t, math.IsInf(fit.MaxPrecision, 1))
		require.InDelta(t, 0, fit.MedianPrecision, 1e-12)
		require.InDelta(t, math.Log2(3.0/4), fit.MeanPrecision, 1e-12)
		require.Contains(t, fit.String(), "MED")
	})

	t.Run("Interpolant", func(t *testing.T) {
		itp := newTestInterpolator(t, harnessData)
		coeffs, err := itp.Compute(0, false)
		require.NoError(t, err)

		fit, err := GetFitStats(coeffs, harnessData)
		require.NoError(t, err)
		require.Len(t, fit.Deltas, len(harnessData))
		require.LessOrEqual(t, fit.MinDelta, fit.MedianDelta)
		require.LessOrEqual(t, fit.MedianDelta, fit.MaxDelta)
		require.GreaterOrEqual(t, fit.MaxPrecision, fit.MinPrecision)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := GetFitStats(polynomial.Coefficients{1}, nil)
		require.ErrorAs(t, err, &EmptyInputError{})

		_, err = GetFitStats(polynomial.Coefficients{math.NaN()}, squares)
		require.Error(t, err)

		_, err = GetFitStats(polynomial.Coefficients{1}, []Point{{math.Inf(1), 0}})
		require.ErrorAs(t, err, &NonFiniteSampleError{})
	})
}

package interpolation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {

	points, err := NewPoints([]float64{0, 1, 2}, []float64{0, 1, 4})
	require.NoError(t, err)
	require.Equal(t, squares, points)

	require.Equal(t, []float64{0, 1, 2}, Abscissae(points))
	require.Equal(t, []float64{0, 1, 4}, Ordinates(points))

	require.Equal(t, Point{X: 1.5, Y: -2}, NewPoint(1.5, -2))
	require.Equal(t, "(1.5, -2)", NewPoint(1.5, -2).String())

	_, err = NewPoints([]float64{0, 1}, []float64{0})
	require.Error(t, err)

	points, err = NewPoints(nil, nil)
	require.NoError(t, err)
	require.Empty(t, points)
}

package interpolation

import (
	"fmt"
	"math"
)

// Point is a sample (X, Y) of the function to interpolate.
type Point struct {
	X, Y float64
}

// NewPoint creates a new Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Abscissae returns the X values of the points.
func Abscissae(points []Point) (xs []float64) {
	xs = make([]float64, len(points))
	for i := range points {
		xs[i] = points[i].X
	}
	return
}

// Ordinates returns the Y values of the points.
func Ordinates(points []Point) (ys []float64) {
	ys = make([]float64, len(points))
	for i := range points {
		ys[i] = points[i].Y
	}
	return
}

// NewPoints zips xs and ys into a slice of Point.
// It returns an error if xs and ys have different lengths.
func NewPoints(xs, ys []float64) (points []Point, err error) {

	if len(xs) != len(ys) {
		return nil, fmt.Errorf("cannot NewPoints: len(xs)=%d != len(ys)=%d", len(xs), len(ys))
	}

	points = make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}

	return
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// checkFinite returns a NonFiniteSampleError for the first point having
// a NaN or infinite coordinate.
func checkFinite(points []Point) error {
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return NonFiniteSampleError{I: i, Point: p}
		}
	}
	return nil
}

package interpolation

import (
	"fmt"
)

// EmptyInputError is returned when an Interpolator is created without
// any sample.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "cannot interpolate: empty point sequence"
}

// DuplicateAbscissaError is returned when two samples share the same
// X value, which makes the denominator of their Lagrange basis
// polynomials zero.
type DuplicateAbscissaError struct {
	// I and J are the indexes of the first two samples sharing X.
	I, J int
	X    float64
}

func (e DuplicateAbscissaError) Error() string {
	return fmt.Sprintf("cannot interpolate: samples %d and %d share the abscissa x=%v", e.I, e.J, e.X)
}

// InvalidDegreeError is returned when the requested reduction degree
// does not allow to resample the interpolant.
type InvalidDegreeError struct {
	Degree  int
	Samples int
	Reason  string
}

func (e InvalidDegreeError) Error() string {
	return fmt.Sprintf("cannot reduce interpolant of %d samples to %d coefficients: %s", e.Samples, e.Degree, e.Reason)
}

// NonFiniteSampleError is returned when a coordinate of a sample is NaN
// or infinite.
type NonFiniteSampleError struct {
	I     int
	Point Point
}

func (e NonFiniteSampleError) Error() string {
	return fmt.Sprintf("cannot interpolate: sample %d %v is not finite", e.I, e.Point)
}

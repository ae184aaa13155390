// Package interpolation implements the computation of the coefficients of
// the Lagrange interpolating polynomial of a set of samples, and its
// reduction to a lower degree by resampling.
package interpolation

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tuneinsight/lagrange/polynomial"
	"github.com/tuneinsight/lagrange/utils"
)

// Interpolator computes the coefficients of the polynomial interpolating
// a fixed sequence of samples.
// An Interpolator is never modified after its creation.
type Interpolator struct {
	points []Point
	logger logrus.FieldLogger
	output io.Writer
}

// NewInterpolator creates a new Interpolator over a copy of the given points.
// The abscissae of the points are expected to be pairwise distinct, which is
// checked by Compute.
// NewInterpolator returns an EmptyInputError if points is empty and a
// NonFiniteSampleError if a coordinate of a point is NaN or infinite.
func NewInterpolator(points []Point) (itp *Interpolator, err error) {

	if len(points) == 0 {
		return nil, EmptyInputError{}
	}

	if err = checkFinite(points); err != nil {
		return nil, err
	}

	pts := make([]Point, len(points))
	copy(pts, points)

	return &Interpolator{
		points: pts,
		logger: logrus.StandardLogger(),
		output: os.Stdout,
	}, nil
}

// WithLogger creates a shallow copy of the target Interpolator which logs
// with the given logger.
func (itp *Interpolator) WithLogger(logger logrus.FieldLogger) *Interpolator {
	return &Interpolator{
		points: itp.points,
		logger: logger,
		output: itp.output,
	}
}

// WithOutput creates a shallow copy of the target Interpolator which prints
// the coefficient table of verbose computations on w.
func (itp *Interpolator) WithOutput(w io.Writer) *Interpolator {
	return &Interpolator{
		points: itp.points,
		logger: itp.logger,
		output: w,
	}
}

// Points returns a copy of the samples of the Interpolator.
func (itp *Interpolator) Points() (points []Point) {
	points = make([]Point, len(itp.points))
	copy(points, itp.points)
	return
}

// Compute returns the coefficients, highest degree first, of the polynomial
// interpolating the samples of the Interpolator.
//
// If degree is 0 or equal to the number of samples, the exact Lagrange
// interpolant is returned: it has as many coefficients as there are samples.
//
// Otherwise the exact interpolant is evaluated at degree evenly spaced
// abscissae spanning from the first to the last sample (see ResamplingAbscissae),
// and the polynomial interpolating these resampled points is returned.
// It has degree coefficients and matches the resampled points, not the
// original samples.
//
// If verbose is true, the table of the returned coefficients is printed on
// the output of the Interpolator.
//
// Compute returns an InvalidDegreeError if degree does not allow the
// resampling and a DuplicateAbscissaError if two samples share the same
// abscissa.
func (itp *Interpolator) Compute(degree int, verbose bool) (coeffs polynomial.Coefficients, err error) {

	n := len(itp.points)

	if degree != 0 && degree != n {
		if err = itp.checkResamplingDegree(degree); err != nil {
			return nil, err
		}
	}

	if i, j := utils.IndexOfDuplicate(Abscissae(itp.points)); i >= 0 {
		return nil, DuplicateAbscissaError{I: i, J: j, X: itp.points[i].X}
	}

	itp.logger.WithFields(logrus.Fields{"samples": n}).Debug("computing Lagrange interpolant")

	coeffs = make(polynomial.Coefficients, n)

	for i := range itp.points {
		basis := itp.basis(i, itp.points[i].Y)
		if len(basis) > len(coeffs) {
			coeffs = utils.PadLeft(coeffs, len(basis))
		}
		polynomial.AddAllocFree(coeffs, basis, coeffs)
	}

	if degree != 0 && degree != len(coeffs) {

		xs := itp.resamplingAbscissae(degree)

		itp.logger.WithFields(logrus.Fields{
			"samples": n,
			"degree":  degree,
			"step":    xs[1] - xs[0],
		}).Debug("reducing degree by resampling")

		resampled := make([]Point, degree)
		for i, x := range xs {
			resampled[i] = Point{X: x, Y: polynomial.Evaluate(coeffs, x)}
		}

		inner := &Interpolator{
			points: resampled,
			logger: itp.logger,
			output: itp.output,
		}

		if coeffs, err = inner.Compute(0, false); err != nil {
			return nil, err
		}
	}

	if verbose {
		if err = PrintCoefficients(itp.output, coeffs); err != nil {
			return nil, fmt.Errorf("cannot print coefficients: %w", err)
		}
	}

	return
}

// ResamplingAbscissae returns the degree evenly spaced abscissae at which
// Compute resamples the exact interpolant when reducing it to degree
// coefficients: x[i] = x0 + i * (xn - x0) / (degree - 1), where x0 and xn
// are the abscissae of the first and last samples.
//
// ResamplingAbscissae returns an InvalidDegreeError if degree < 2 or if the
// distance between the first and last abscissae is zero or overflows.
func (itp *Interpolator) ResamplingAbscissae(degree int) (xs []float64, err error) {
	if err = itp.checkResamplingDegree(degree); err != nil {
		return nil, err
	}
	return itp.resamplingAbscissae(degree), nil
}

func (itp *Interpolator) checkResamplingDegree(degree int) error {

	n := len(itp.points)
	span := itp.points[n-1].X - itp.points[0].X

	switch {
	case degree < 0:
		return InvalidDegreeError{Degree: degree, Samples: n, Reason: "degree must be positive"}
	case degree < 2:
		return InvalidDegreeError{Degree: degree, Samples: n, Reason: "resampling requires at least two points"}
	case span == 0:
		return InvalidDegreeError{Degree: degree, Samples: n, Reason: "first and last samples share the same abscissa"}
	case math.IsInf(span, 0) || math.IsNaN(span):
		return InvalidDegreeError{Degree: degree, Samples: n, Reason: "abscissa range is not finite"}
	}

	return nil
}

func (itp *Interpolator) resamplingAbscissae(degree int) (xs []float64) {

	x0 := itp.points[0].X
	span := itp.points[len(itp.points)-1].X - x0

	xs = make([]float64, degree)
	for i := range xs {
		xs[i] = x0 + (float64(i)*span)/float64(degree-1)
	}

	return
}

// basis returns y * L_i(x), where L_i is the Lagrange basis polynomial
// of the i-th sample: L_i(x) = prod_{m != i} (x - x_m) / (x_i - x_m).
// The abscissae must be pairwise distinct.
func (itp *Interpolator) basis(i int, y float64) polynomial.Coefficients {

	xi := itp.points[i].X

	coeffs := polynomial.Coefficients{1}
	denominator := 1.0

	for m := range itp.points {

		if m == i {
			continue
		}

		xm := itp.points[m].X

		coeffs = polynomial.Multiply(polynomial.Coefficients{1, -xm}, coeffs)
		denominator *= xi - xm
	}

	return polynomial.MulScalar(coeffs, y, denominator)
}

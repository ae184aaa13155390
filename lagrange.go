/*
Package lagrange computes the monomial coefficients of the Lagrange polynomial
interpolating a set of real samples, and reduces it to a lower degree by
resampling it at evenly spaced points.

The polynomial package implements the arithmetic on coefficient sequences
(multiplication, addition and evaluation) and the interpolation package
implements the interpolator on top of it.
*/
package lagrange

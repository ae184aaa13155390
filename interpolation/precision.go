package interpolation

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/lagrange/polynomial"
	"github.com/tuneinsight/lagrange/utils/bignum"
)

// FitPrecision is the number of bits of precision used to evaluate
// the residuals of a fit.
const FitPrecision = 128

// FitStats is a struct storing statistics about the distance between
// a polynomial and a set of samples.
// Deltas are absolute errors |P(x) - y| and precisions are the matching
// log2(1/delta), in bits.
type FitStats struct {
	Deltas     []float64
	Precisions []float64

	MaxDelta    float64
	MinDelta    float64
	MeanDelta   float64
	MedianDelta float64
	STDDelta    float64

	MaxPrecision    float64
	MinPrecision    float64
	MeanPrecision   float64
	MedianPrecision float64
}

func (fit FitStats) String() string {
	return fmt.Sprintf(`
┌─────────┬──────────┬──────────┐
│         │ Delta    │ Log2     │
├─────────┼──────────┼──────────┤
│MIN      │ %8.2e │ %8.2f │
│MAX      │ %8.2e │ %8.2f │
│AVG      │ %8.2e │ %8.2f │
│MED      │ %8.2e │ %8.2f │
└─────────┴──────────┴──────────┘
Err STD : %8.2e
`,
		fit.MinDelta, fit.MaxPrecision,
		fit.MaxDelta, fit.MinPrecision,
		fit.MeanDelta, fit.MeanPrecision,
		fit.MedianDelta, fit.MedianPrecision,
		fit.STDDelta)
}

// GetFitStats evaluates coeffs at the abscissae of the points with
// FitPrecision bits of precision and returns the statistics of the
// distances to the ordinates of the points.
func GetFitStats(coeffs polynomial.Coefficients, points []Point) (fit FitStats, err error) {

	if len(points) == 0 {
		return fit, EmptyInputError{}
	}

	for _, c := range coeffs {
		if !isFinite(c) {
			return fit, fmt.Errorf("cannot GetFitStats: non-finite coefficient %v", c)
		}
	}

	if err = checkFinite(points); err != nil {
		return fit, fmt.Errorf("cannot GetFitStats: %w", err)
	}

	fit.Deltas = make([]float64, len(points))
	fit.Precisions = make([]float64, len(points))

	delta := new(big.Float)

	ys := Ordinates(points)

	for i, x := range Abscissae(points) {
		delta.Sub(polynomial.EvaluateBig(coeffs, x, FitPrecision), bignum.NewFloat(ys[i], FitPrecision))
		delta.Abs(delta)
		fit.Deltas[i], _ = delta.Float64()
		fit.Precisions[i] = deltaToPrecision(fit.Deltas[i])
	}

	if fit.MaxDelta, err = stats.Max(fit.Deltas); err != nil {
		return
	}

	if fit.MinDelta, err = stats.Min(fit.Deltas); err != nil {
		return
	}

	if fit.MeanDelta, err = stats.Mean(fit.Deltas); err != nil {
		return
	}

	if fit.MedianDelta, err = stats.Median(fit.Deltas); err != nil {
		return
	}

	if fit.STDDelta, err = stats.StandardDeviation(fit.Deltas); err != nil {
		return
	}

	fit.MinPrecision = deltaToPrecision(fit.MaxDelta)
	fit.MaxPrecision = deltaToPrecision(fit.MinDelta)
	fit.MeanPrecision = deltaToPrecision(fit.MeanDelta)
	fit.MedianPrecision = deltaToPrecision(fit.MedianDelta)

	return
}

func deltaToPrecision(delta float64) float64 {
	if math.IsInf(delta, 0) {
		return math.Inf(-1)
	}
	return bignum.Precision(bignum.NewFloat(delta, FitPrecision))
}

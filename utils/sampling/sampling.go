// Package sampling implements sampling of bytes and floats from a PRNG.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sort"
)

// Source samples float64 values from the byte stream of a PRNG.
type Source struct {
	prng PRNG
	buff [8]byte
}

// NewSource creates a new Source reading from prng.
func NewSource(prng PRNG) *Source {
	return &Source{prng: prng}
}

// Uint64 returns a uniform value between 0 and 0xFFFFFFFFFFFFFFFF.
func (s *Source) Uint64() uint64 {
	if _, err := io.ReadFull(s.prng, s.buff[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return binary.LittleEndian.Uint64(s.buff[:])
}

// Float64 returns a uniform float between min and max.
func (s *Source) Float64(min, max float64) float64 {
	f := float64(s.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}

// Float64s returns n uniform floats between min and max.
func (s *Source) Float64s(n int, min, max float64) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = s.Float64(min, max)
	}
	return
}

// DistinctFloat64s returns n pairwise distinct floats sorted in increasing
// order, sampled uniformly between min and max. The samples are at least
// (max-min)/(2n) apart from each other.
func (s *Source) DistinctFloat64s(n int, min, max float64) (v []float64, err error) {

	if n < 0 || !(min < max) {
		return nil, fmt.Errorf("cannot DistinctFloat64s: invalid parameters n=%d, [min, max] = [%v, %v]", n, min, max)
	}

	if n == 0 {
		return []float64{}, nil
	}

	// one value per slot, in the middle half of each slot
	slot := (max - min) / float64(n)

	v = make([]float64, n)
	for i := range v {
		lo := min + float64(i)*slot
		v[i] = s.Float64(lo+slot/4, lo+3*slot/4)
	}

	sort.Float64s(v)

	for i := 1; i < n; i++ {
		if !(v[i] > v[i-1]) || math.IsInf(v[i], 0) {
			return nil, fmt.Errorf("cannot DistinctFloat64s: interval [%v, %v] too small for %d values", min, max, n)
		}
	}

	return
}

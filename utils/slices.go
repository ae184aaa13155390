package utils

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of types the slice helpers operate on.
type Number interface {
	constraints.Float | constraints.Integer
}

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// PadLeft returns a new slice of length max(n, len(s)) whose last len(s)
// elements are a copy of s and whose first elements are zero.
// The input slice is never modified.
func PadLeft[V Number](s []V, n int) (r []V) {
	r = make([]V, Max(n, len(s)))
	copy(r[len(r)-len(s):], s)
	return
}

// PadLeftAllocFree writes s into sout, right-aligned, and zeroes the
// leading len(sout)-len(s) elements of sout.
func PadLeftAllocFree[V Number](s, sout []V) {

	if len(sout) < len(s) {
		panic("cannot PadLeftAllocFree: len(sout) < len(s)")
	}

	offset := len(sout) - len(s)

	// sout may alias s, so the copy runs before the zeroing
	copy(sout[offset:], s)

	for i := 0; i < offset; i++ {
		sout[i] = 0
	}
}

// TrimLeadingZeros returns a new slice holding s without its leading zero
// elements. If s is empty or only contains zeros, []V{0} is returned.
func TrimLeadingZeros[V Number](s []V) (r []V) {

	var i int
	for i < len(s) && s[i] == 0 {
		i++
	}

	if i == len(s) {
		return []V{0}
	}

	r = make([]V, len(s)-i)
	copy(r, s[i:])
	return
}

// IndexOfDuplicate returns the indexes i < j of the first pair of equal
// elements of s, or (-1, -1) if all elements are distinct.
func IndexOfDuplicate[V comparable](s []V) (i, j int) {
	m := make(map[V]int, len(s))
	for j, sj := range s {
		if i, exists := m[sj]; exists {
			return i, j
		}
		m[sj] = j
	}
	return -1, -1
}

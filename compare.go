package inplacevector

import "cmp"

// Equal reports whether x and y hold the same elements in the same order.
// Vectors of different lengths are never equal.
func Equal[A any, T comparable](x, y *Vector[A, T]) bool {
	return EqualFunc(x, y, func(a, b T) bool { return a == b })
}

// EqualFunc is Equal with a caller-supplied element equality predicate.
func EqualFunc[A any, T any](x, y *Vector[A, T], eq func(T, T) bool) bool {
	if x.Len() != y.Len() {
		return false
	}
	xs, ys := x.Data(), y.Data()
	for i := range xs {
		if !eq(xs[i], ys[i]) {
			return false
		}
	}
	return true
}

// Compare orders two vectors: the shorter vector orders first; equal-length
// vectors compare element-wise, tying only when every pair is equal,
// ordering "less" only when every pair is strictly less, and otherwise
// "greater". This is not a lexicographic order; it mirrors the pairwise rule
// of the container's three-way comparison.
func Compare[A any, T cmp.Ordered](x, y *Vector[A, T]) int {
	return CompareFunc(x, y, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied three-way element comparison.
func CompareFunc[A any, T any](x, y *Vector[A, T], compare func(T, T) int) int {
	if x.Len() != y.Len() {
		if x.Len() < y.Len() {
			return -1
		}
		return 1
	}

	allEqual := true
	allLess := true
	xs, ys := x.Data(), y.Data()
	for i := range xs {
		c := compare(xs[i], ys[i])
		if c != 0 {
			allEqual = false
		}
		if c >= 0 {
			allLess = false
		}
	}

	switch {
	case allEqual:
		return 0
	case allLess:
		return -1
	default:
		return 1
	}
}

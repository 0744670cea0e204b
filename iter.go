package inplacevector

import "iter"

// All returns an index/element iterator over the live elements in positional
// order. The sequence is finite and restartable; it reads the vector's state
// at iteration time, so mutating the vector mid-iteration is a caller error.
func (v *Vector[A, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.slots()
		for i := 0; i < v.n; i++ {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Values returns an element iterator over the live elements in positional
// order.
func (v *Vector[A, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := v.slots()
		for i := 0; i < v.n; i++ {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Backward returns an index/element iterator over the live elements in
// reverse positional order.
func (v *Vector[A, T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.slots()
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

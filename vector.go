package inplacevector

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"

	"github.com/wippyai/inplace-vector/errors"
	"github.com/wippyai/inplace-vector/internal/layout"
)

// Vector is a fixed-capacity sequence container whose elements live entirely
// within the Vector value. The storage type parameter A must be [N]T for the
// element type T; N is the capacity, fixed for the instantiation:
//
//	var v inplacevector.Vector[[8]int, int] // capacity 8, ready to use
//
// The zero Vector is a valid empty container. No operation allocates; an
// operation that would grow the length past the capacity reports a
// capacity-exceeded error instead.
//
// A Vector must not be mutated concurrently from multiple goroutines without
// external synchronization.
type Vector[A any, T any] struct {
	elems A
	n     int
}

// New returns an empty vector, validating the (A, T) pairing eagerly.
// The zero Vector value works too; New exists so that an invalid pairing
// faults at construction rather than at first use.
func New[A any, T any]() *Vector[A, T] {
	v := &Vector[A, T]{}
	v.info()
	return v
}

// Of returns a vector holding the given elements in order.
func Of[A any, T any](vals ...T) (*Vector[A, T], error) {
	v := New[A, T]()
	if len(vals) > v.Cap() {
		return nil, errors.CapacityExceeded(errors.OpOf, v.Cap(), len(vals))
	}
	copy(v.slots(), vals)
	v.n = len(vals)
	return v, nil
}

// Repeat returns a vector holding n copies of x.
func Repeat[A any, T any](n int, x T) (*Vector[A, T], error) {
	v := New[A, T]()
	if n < 0 {
		panic(fmt.Sprintf("inplacevector: negative count %d", n))
	}
	if n > v.Cap() {
		return nil, errors.CapacityExceeded(errors.OpRepeat, v.Cap(), n)
	}
	s := v.slots()
	for i := 0; i < n; i++ {
		s[i] = x
	}
	v.n = n
	return v, nil
}

// Sized returns a vector holding n zero-value elements.
func Sized[A any, T any](n int) (*Vector[A, T], error) {
	v := New[A, T]()
	if n < 0 {
		panic(fmt.Sprintf("inplacevector: negative count %d", n))
	}
	if n > v.Cap() {
		return nil, errors.CapacityExceeded(errors.OpSized, v.Cap(), n)
	}
	// a fresh vector's slots are already zero values
	v.n = n
	return v, nil
}

// Collect returns a vector holding the elements produced by seq, in order.
// It fails with capacity-exceeded as soon as the sequence produces more
// elements than the capacity admits.
func Collect[A any, T any](seq iter.Seq[T]) (*Vector[A, T], error) {
	v := New[A, T]()
	s := v.slots()
	for x := range seq {
		if v.n == len(s) {
			return nil, errors.CapacityExceeded(errors.OpCollect, v.Cap(), v.n+1)
		}
		s[v.n] = x
		v.n++
	}
	return v, nil
}

// info returns the cached storage representation for this instantiation.
// It faults if A is not an array of T.
func (v *Vector[A, T]) info() *layout.Info {
	return layout.Of(reflect.TypeFor[A](), reflect.TypeFor[T]())
}

// slots returns a view over all capacity slots, live and dead.
// Indexing past Len is the caller's responsibility.
func (v *Vector[A, T]) slots() []T {
	info := v.info()
	if info.Capacity == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&v.elems)), info.Capacity)
}

// destroy releases dead slots. For the managed variant the slots are zeroed
// so the garbage collector can reclaim what they referenced; for the flat
// and empty variants discarding is free and the bits are left as-is.
func (v *Vector[A, T]) destroy(dead []T) {
	if v.info().Variant == layout.VariantManaged {
		clear(dead)
	}
}

// Len returns the number of live elements.
func (v *Vector[A, T]) Len() int { return v.n }

// Cap returns the fixed capacity of this instantiation.
func (v *Vector[A, T]) Cap() int { return v.info().Capacity }

// Empty reports whether the vector holds no elements.
func (v *Vector[A, T]) Empty() bool { return v.n == 0 }

// Data returns a view of the live elements. The view's capacity extends to
// the vector's full storage so it can observe appends, but any mutating
// operation that shifts or destroys slots invalidates it.
func (v *Vector[A, T]) Data() []T {
	return v.slots()[:v.n]
}

// Get returns the element at index i. Indexing outside [0, Len) is a
// programming error and panics; use At for a recoverable check.
func (v *Vector[A, T]) Get(i int) T {
	v.checkIndex(i)
	return v.slots()[i]
}

// Set replaces the element at index i. Indexing outside [0, Len) panics.
func (v *Vector[A, T]) Set(i int, x T) {
	v.checkIndex(i)
	v.slots()[i] = x
}

// Ref returns a pointer to the element at index i. The pointer is
// invalidated by any operation that shifts or destroys the slot.
// Indexing outside [0, Len) panics.
func (v *Vector[A, T]) Ref(i int) *T {
	v.checkIndex(i)
	return &v.slots()[i]
}

// At returns the element at index i, reporting an out-of-bounds error for
// indexes outside [0, Len).
func (v *Vector[A, T]) At(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, errors.OutOfBounds(errors.OpAt, i, v.n)
	}
	return v.slots()[i], nil
}

// SetAt replaces the element at index i, reporting an out-of-bounds error
// for indexes outside [0, Len).
func (v *Vector[A, T]) SetAt(i int, x T) error {
	if i < 0 || i >= v.n {
		return errors.OutOfBounds(errors.OpSetAt, i, v.n)
	}
	v.slots()[i] = x
	return nil
}

// Front returns the first element. Panics when empty.
func (v *Vector[A, T]) Front() T {
	v.checkIndex(0)
	return v.slots()[0]
}

// Back returns the last element. Panics when empty.
func (v *Vector[A, T]) Back() T {
	v.checkIndex(v.n - 1)
	return v.slots()[v.n-1]
}

func (v *Vector[A, T]) checkIndex(i int) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("inplacevector: index %d out of range [0, %d)", i, v.n))
	}
}

func (v *Vector[A, T]) checkPos(i int) {
	if i < 0 || i > v.n {
		panic(fmt.Sprintf("inplacevector: position %d out of range [0, %d]", i, v.n))
	}
}

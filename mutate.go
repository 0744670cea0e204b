package inplacevector

import (
	"fmt"
	"iter"

	"github.com/wippyai/inplace-vector/errors"
)

// PushBack appends x, reporting capacity-exceeded when the vector is full.
// On failure the vector is unchanged.
func (v *Vector[A, T]) PushBack(x T) error {
	if v.TryPushBack(x) == nil {
		return errors.CapacityExceeded(errors.OpPushBack, v.Cap(), v.n+1)
	}
	return nil
}

// TryPushBack appends x and returns the address of the new element, or nil
// when the vector is full. On failure the vector is unchanged.
func (v *Vector[A, T]) TryPushBack(x T) *T {
	s := v.slots()
	if v.n == len(s) {
		return nil
	}
	s[v.n] = x
	v.n++
	return &s[v.n-1]
}

// UncheckedPushBack appends x assuming Len() < Cap(). Violating the
// precondition is a programming error and panics.
func (v *Vector[A, T]) UncheckedPushBack(x T) *T {
	p := v.TryPushBack(x)
	if p == nil {
		panic(fmt.Sprintf("inplacevector: push on full vector (capacity %d)", v.Cap()))
	}
	return p
}

// PopBack removes and returns the last element. Panics when empty.
func (v *Vector[A, T]) PopBack() T {
	if v.n == 0 {
		panic("inplacevector: pop from empty vector")
	}
	s := v.slots()
	x := s[v.n-1]
	v.destroy(s[v.n-1 : v.n])
	v.n--
	return x
}

// AppendSlice appends the given elements in order. The length is known up
// front, so on capacity-exceeded the vector is left untouched.
func (v *Vector[A, T]) AppendSlice(xs ...T) error {
	if v.n+len(xs) > v.Cap() {
		return errors.CapacityExceeded(errors.OpAppend, v.Cap(), v.n+len(xs))
	}
	copy(v.slots()[v.n:], xs)
	v.n += len(xs)
	return nil
}

// AppendSeq appends each element produced by seq. The sequence length is not
// knowable up front: on capacity-exceeded the elements consumed before the
// overflow remain appended. Callers needing atomicity should collect the
// sequence first and use AppendSlice.
func (v *Vector[A, T]) AppendSeq(seq iter.Seq[T]) error {
	s := v.slots()
	for x := range seq {
		if v.n == len(s) {
			return errors.CapacityExceeded(errors.OpAppendSeq, v.Cap(), v.n+1)
		}
		s[v.n] = x
		v.n++
	}
	return nil
}

// Insert places x at index i, shifting elements at [i, Len) right by one.
// There is no spare slot to shift into, so the element is appended and then
// rotated into place; cost is linear in Len()-i. Position i may equal Len.
// On capacity-exceeded the vector is unchanged.
func (v *Vector[A, T]) Insert(i int, x T) error {
	v.checkPos(i)
	s := v.slots()
	if v.n == len(s) {
		return errors.CapacityExceeded(errors.OpInsert, v.Cap(), v.n+1)
	}
	s[v.n] = x
	v.n++
	rotateLeft(s[i:v.n], v.n-1-i)
	return nil
}

// InsertN places n copies of x at index i. On capacity-exceeded the vector
// is unchanged.
func (v *Vector[A, T]) InsertN(i, n int, x T) error {
	v.checkPos(i)
	if n < 0 {
		panic(fmt.Sprintf("inplacevector: negative count %d", n))
	}
	if n == 0 {
		return nil
	}
	if v.n+n > v.Cap() {
		return errors.New(errors.OpInsertN, errors.KindCapacityExceeded).
			Capacity(v.Cap()).
			Needed(v.n + n).
			Detail("%d copies at index %d", n, i).
			Build()
	}
	s := v.slots()
	m := v.n
	for j := 0; j < n; j++ {
		s[m+j] = x
	}
	v.n += n
	rotateLeft(s[i:v.n], m-i)
	return nil
}

// InsertSlice places the given elements at index i, preserving their order
// and the order of the existing elements. On capacity-exceeded the vector is
// unchanged.
func (v *Vector[A, T]) InsertSlice(i int, xs ...T) error {
	v.checkPos(i)
	if len(xs) == 0 {
		return nil
	}
	if v.n+len(xs) > v.Cap() {
		return errors.CapacityExceeded(errors.OpInsert, v.Cap(), v.n+len(xs))
	}
	s := v.slots()
	m := v.n
	copy(s[m:], xs)
	v.n += len(xs)
	rotateLeft(s[i:v.n], m-i)
	return nil
}

// InsertSeq places the elements produced by seq at index i. The sequence
// length is not knowable up front: on capacity-exceeded the elements
// consumed before the overflow remain appended at the end, unrotated (the
// same weaker guarantee as AppendSeq).
func (v *Vector[A, T]) InsertSeq(i int, seq iter.Seq[T]) error {
	v.checkPos(i)
	s := v.slots()
	m := v.n
	for x := range seq {
		if v.n == len(s) {
			return errors.CapacityExceeded(errors.OpInsertSeq, v.Cap(), v.n+1)
		}
		s[v.n] = x
		v.n++
	}
	rotateLeft(s[i:v.n], m-i)
	return nil
}

// DeleteAt removes the element at index i, shifting later elements left by
// one. Never fails; an index outside [0, Len) panics.
func (v *Vector[A, T]) DeleteAt(i int) {
	v.checkIndex(i)
	v.Delete(i, i+1)
}

// Delete removes the elements in the half-open range [i, j), shift-compacting
// the tail leftward and destroying the vacated trailing slots. Never fails;
// a malformed range panics.
func (v *Vector[A, T]) Delete(i, j int) {
	if i < 0 || j < i || j > v.n {
		panic(fmt.Sprintf("inplacevector: delete range [%d, %d) out of range [0, %d]", i, j, v.n))
	}
	if i == j {
		return
	}
	s := v.slots()
	copy(s[i:v.n], s[j:v.n])
	tail := v.n - (j - i)
	v.destroy(s[tail:v.n])
	v.n = tail
}

// Clear destroys all live elements and resets the length to zero.
func (v *Vector[A, T]) Clear() {
	v.destroy(v.slots()[:v.n])
	v.n = 0
}

// Resize grows the vector with zero-value elements or shrinks it by
// destroying the tail. Resizing to the current length is a no-op; resizing
// past the capacity reports capacity-exceeded and leaves the vector
// unchanged.
func (v *Vector[A, T]) Resize(n int) error {
	var zero T
	return v.resize(errors.OpResize, n, zero)
}

// ResizeFill is Resize with copies of x as the fill element when growing.
func (v *Vector[A, T]) ResizeFill(n int, x T) error {
	return v.resize(errors.OpResize, n, x)
}

func (v *Vector[A, T]) resize(op errors.Op, n int, fill T) error {
	switch {
	case n < 0:
		panic(fmt.Sprintf("inplacevector: negative length %d", n))
	case n == v.n:
		return nil
	case n > v.Cap():
		return errors.CapacityExceeded(op, v.Cap(), n)
	case n > v.n:
		s := v.slots()
		for i := v.n; i < n; i++ {
			s[i] = fill
		}
		v.n = n
	default:
		v.destroy(v.slots()[n:v.n])
		v.n = n
	}
	return nil
}

// Assign replaces the contents with the given elements. The length is known
// up front, so on capacity-exceeded the vector is left untouched.
func (v *Vector[A, T]) Assign(vals ...T) error {
	if len(vals) > v.Cap() {
		return errors.CapacityExceeded(errors.OpAssign, v.Cap(), len(vals))
	}
	v.Clear()
	copy(v.slots(), vals)
	v.n = len(vals)
	return nil
}

// AssignN replaces the contents with n copies of x. On capacity-exceeded the
// vector is left untouched.
func (v *Vector[A, T]) AssignN(n int, x T) error {
	if n < 0 {
		panic(fmt.Sprintf("inplacevector: negative count %d", n))
	}
	if n > v.Cap() {
		return errors.CapacityExceeded(errors.OpAssignN, v.Cap(), n)
	}
	v.Clear()
	s := v.slots()
	for i := 0; i < n; i++ {
		s[i] = x
	}
	v.n = n
	return nil
}

// AssignSeq replaces the contents with the elements produced by seq. The
// vector is cleared before consumption, so on capacity-exceeded it holds the
// prefix that fit (the weaker range guarantee).
func (v *Vector[A, T]) AssignSeq(seq iter.Seq[T]) error {
	v.Clear()
	s := v.slots()
	for x := range seq {
		if v.n == len(s) {
			return errors.CapacityExceeded(errors.OpAssignSeq, v.Cap(), v.n+1)
		}
		s[v.n] = x
		v.n++
	}
	return nil
}

// rotateLeft moves s[k:] in front of s[:k], preserving the relative order of
// both halves.
func rotateLeft[T any](s []T, k int) {
	if k <= 0 || k >= len(s) {
		return
	}
	reverse(s[:k])
	reverse(s[k:])
	reverse(s)
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

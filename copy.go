package inplacevector

import "github.com/wippyai/inplace-vector/internal/layout"

// Clone returns a copy of the vector. Elements are copied by value, slot for
// slot; for pointer-bearing element types the copies alias whatever the
// originals reference, as with any Go value copy.
func (v *Vector[A, T]) Clone() Vector[A, T] {
	return *v
}

// CopyFrom replaces the contents with a copy of src's live elements.
// Both vectors have the same capacity by construction, so this never fails.
func (v *Vector[A, T]) CopyFrom(src *Vector[A, T]) {
	if v == src {
		return
	}
	v.Clear()
	copy(v.slots(), src.slots()[:src.n])
	v.n = src.n
}

// MoveFrom transfers src's live elements into the vector. For the managed
// variant the transfer is element-wise and src is drained: it ends empty,
// with its slots released. For the flat and empty variants the whole
// representation is bulk-copied and src is left as-is; its length after the
// move is valid but unspecified by this contract. Callers that need a drained
// source regardless of element type should call src.Clear themselves.
func (v *Vector[A, T]) MoveFrom(src *Vector[A, T]) {
	if v == src {
		return
	}
	if v.info().Variant != layout.VariantManaged {
		v.elems = src.elems
		v.n = src.n
		return
	}
	v.Clear()
	copy(v.slots(), src.slots()[:src.n])
	v.n = src.n
	src.Clear()
}

// Swap exchanges the full contents of the two vectors: a temporary is
// move-constructed from the receiver, then two move-assignments complete the
// exchange.
func (v *Vector[A, T]) Swap(other *Vector[A, T]) {
	if v == other {
		return
	}
	var tmp Vector[A, T]
	tmp.MoveFrom(v)
	v.MoveFrom(other)
	other.MoveFrom(&tmp)
}

package main

import (
	"fmt"
	"slices"

	inplacevector "github.com/wippyai/inplace-vector"
)

// runner erases the capacity type parameter so the CLI can drive a vector
// whose capacity was chosen at startup. Capacity is part of the vector's
// type, so only a fixed set of instantiations is available.
type runner interface {
	apply(op opSpec) error
	state() []int
	length() int
	capacity() int
}

func newRunner(capacity int) (runner, error) {
	switch capacity {
	case 4:
		return &vecRunner[[4]int]{}, nil
	case 8:
		return &vecRunner[[8]int]{}, nil
	case 16:
		return &vecRunner[[16]int]{}, nil
	case 32:
		return &vecRunner[[32]int]{}, nil
	case 64:
		return &vecRunner[[64]int]{}, nil
	default:
		return nil, fmt.Errorf("unsupported capacity %d: capacity is fixed at compile time, pick one of 4, 8, 16, 32, 64", capacity)
	}
}

type vecRunner[A any] struct {
	v inplacevector.Vector[A, int]
}

func (r *vecRunner[A]) capacity() int { return r.v.Cap() }
func (r *vecRunner[A]) length() int   { return r.v.Len() }

func (r *vecRunner[A]) state() []int {
	return slices.Clone(r.v.Data())
}

func (r *vecRunner[A]) apply(op opSpec) error {
	switch op.Op {
	case "push":
		return r.v.PushBack(op.Value)
	case "pop":
		if r.v.Empty() {
			return fmt.Errorf("pop: vector is empty")
		}
		r.v.PopBack()
		return nil
	case "insert":
		if op.Index < 0 || op.Index > r.v.Len() {
			return fmt.Errorf("insert: position %d out of range [0, %d]", op.Index, r.v.Len())
		}
		return r.v.Insert(op.Index, op.Value)
	case "erase":
		if op.Index < 0 || op.Index >= r.v.Len() {
			return fmt.Errorf("erase: index %d out of range [0, %d)", op.Index, r.v.Len())
		}
		r.v.DeleteAt(op.Index)
		return nil
	case "resize":
		if op.Count < 0 {
			return fmt.Errorf("resize: negative count %d", op.Count)
		}
		return r.v.Resize(op.Count)
	case "assign":
		return r.v.Assign(op.Values...)
	case "append":
		return r.v.AppendSlice(op.Values...)
	case "clear":
		r.v.Clear()
		return nil
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
}

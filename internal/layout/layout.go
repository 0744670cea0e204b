package layout

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Variant identifies the storage representation selected for a (storage
// array, element) type pair. Exactly one variant applies per instantiation
// and it never changes at runtime.
type Variant uint8

const (
	// VariantEmpty is selected for zero-capacity storage. No addressable
	// element memory exists and the length is always zero.
	VariantEmpty Variant = iota
	// VariantFlat is selected for positive-capacity storage over plain-data
	// elements. Whole-value copy and discard are bulk memory operations;
	// vacated slots need no per-slot cleanup.
	VariantFlat
	// VariantManaged is selected for positive-capacity storage over elements
	// that contain pointers. Vacated slots must be zeroed so the garbage
	// collector can reclaim whatever they referenced.
	VariantManaged
)

var variantNames = [...]string{
	VariantEmpty:   "empty",
	VariantFlat:    "flat",
	VariantManaged: "managed",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

// Info describes the storage representation of one (storage array, element)
// instantiation.
type Info struct {
	Capacity int
	ElemSize uintptr
	Variant  Variant
}

type cacheKey struct {
	arrayType reflect.Type
	elemType  reflect.Type
}

var cache sync.Map // cacheKey -> *Info

// Of returns the storage Info for the given array and element types,
// computing and caching it on first use. The array type must be [N]T where T
// is exactly elemType; any other pairing is a programming error and panics.
func Of(arrayType, elemType reflect.Type) *Info {
	key := cacheKey{arrayType: arrayType, elemType: elemType}
	if cached, ok := cache.Load(key); ok {
		return cached.(*Info)
	}

	info, err := compute(arrayType, elemType)
	if err != nil {
		panic("inplacevector: " + err.Error())
	}

	actual, loaded := cache.LoadOrStore(key, info)
	if !loaded {
		Logger().Debug("storage variant selected",
			zap.String("storage", arrayType.String()),
			zap.String("element", elemType.String()),
			zap.Int("capacity", info.Capacity),
			zap.Stringer("variant", info.Variant),
		)
	}
	return actual.(*Info)
}

func compute(arrayType, elemType reflect.Type) (*Info, error) {
	if arrayType.Kind() != reflect.Array {
		return nil, fmt.Errorf("storage parameter %s is not an array type", arrayType)
	}
	if arrayType.Elem() != elemType {
		return nil, fmt.Errorf("storage parameter %s holds %s elements, not %s",
			arrayType, arrayType.Elem(), elemType)
	}

	info := &Info{
		Capacity: arrayType.Len(),
		ElemSize: elemType.Size(),
	}
	switch {
	case info.Capacity == 0:
		info.Variant = VariantEmpty
	case pointerFree(elemType):
		info.Variant = VariantFlat
	default:
		info.Variant = VariantManaged
	}
	return info, nil
}

// pointerFree reports whether values of t hold no pointers anywhere, meaning
// copy and discard have no behavior beyond moving raw bits.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Ptr, Slice, Map, Chan, String, Interface, Func, UnsafePointer
		return false
	}
}

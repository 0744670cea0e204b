package layout

import (
	"reflect"
	"testing"
	"unsafe"
)

type plainPair struct {
	X, Y int32
}

type nested struct {
	A [4]plainPair
	B float64
}

type holdsString struct {
	Name string
	N    int
}

type holdsSlice struct {
	Data []byte
}

func TestOf_VariantSelection(t *testing.T) {
	tests := []struct {
		name      string
		arrayType reflect.Type
		elemType  reflect.Type
		capacity  int
		variant   Variant
	}{
		{"zero capacity", reflect.TypeFor[[0]int](), reflect.TypeFor[int](), 0, VariantEmpty},
		{"zero capacity pointer elem", reflect.TypeFor[[0]*int](), reflect.TypeFor[*int](), 0, VariantEmpty},
		{"int", reflect.TypeFor[[8]int](), reflect.TypeFor[int](), 8, VariantFlat},
		{"byte", reflect.TypeFor[[256]byte](), reflect.TypeFor[byte](), 256, VariantFlat},
		{"float64", reflect.TypeFor[[3]float64](), reflect.TypeFor[float64](), 3, VariantFlat},
		{"plain struct", reflect.TypeFor[[5]plainPair](), reflect.TypeFor[plainPair](), 5, VariantFlat},
		{"nested plain struct", reflect.TypeFor[[2]nested](), reflect.TypeFor[nested](), 2, VariantFlat},
		{"array of arrays", reflect.TypeFor[[4][16]uint64](), reflect.TypeFor[[16]uint64](), 4, VariantFlat},
		{"string", reflect.TypeFor[[8]string](), reflect.TypeFor[string](), 8, VariantManaged},
		{"pointer", reflect.TypeFor[[8]*int](), reflect.TypeFor[*int](), 8, VariantManaged},
		{"slice", reflect.TypeFor[[2][]byte](), reflect.TypeFor[[]byte](), 2, VariantManaged},
		{"struct with string", reflect.TypeFor[[4]holdsString](), reflect.TypeFor[holdsString](), 4, VariantManaged},
		{"struct with slice", reflect.TypeFor[[4]holdsSlice](), reflect.TypeFor[holdsSlice](), 4, VariantManaged},
		{"map", reflect.TypeFor[[1]map[string]int](), reflect.TypeFor[map[string]int](), 1, VariantManaged},
		{"interface", reflect.TypeFor[[3]any](), reflect.TypeFor[any](), 3, VariantManaged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Of(tt.arrayType, tt.elemType)
			if info.Capacity != tt.capacity {
				t.Errorf("capacity: got %d, want %d", info.Capacity, tt.capacity)
			}
			if info.Variant != tt.variant {
				t.Errorf("variant: got %v, want %v", info.Variant, tt.variant)
			}
			if info.ElemSize != tt.elemType.Size() {
				t.Errorf("elem size: got %d, want %d", info.ElemSize, tt.elemType.Size())
			}
		})
	}
}

func TestOf_Cached(t *testing.T) {
	a := Of(reflect.TypeFor[[7]uint32](), reflect.TypeFor[uint32]())
	b := Of(reflect.TypeFor[[7]uint32](), reflect.TypeFor[uint32]())
	if a != b {
		t.Error("expected the same cached *Info on repeated lookups")
	}
}

func TestOf_InvalidPairings(t *testing.T) {
	tests := []struct {
		name      string
		arrayType reflect.Type
		elemType  reflect.Type
	}{
		{"not an array", reflect.TypeFor[[]int](), reflect.TypeFor[int]()},
		{"scalar storage", reflect.TypeFor[int](), reflect.TypeFor[int]()},
		{"element mismatch", reflect.TypeFor[[4]int64](), reflect.TypeFor[int32]()},
		{"named element mismatch", reflect.TypeFor[[4]byte](), reflect.TypeFor[uint16]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for invalid pairing")
				}
			}()
			Of(tt.arrayType, tt.elemType)
		})
	}
}

func TestPointerFree(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"int", reflect.TypeFor[int](), true},
		{"uintptr", reflect.TypeFor[uintptr](), true},
		{"complex128", reflect.TypeFor[complex128](), true},
		{"plain struct", reflect.TypeFor[plainPair](), true},
		{"empty struct", reflect.TypeFor[struct{}](), true},
		{"zero-length array of pointers", reflect.TypeFor[[0]*int](), true},
		{"string", reflect.TypeFor[string](), false},
		{"func", reflect.TypeFor[func()](), false},
		{"chan", reflect.TypeFor[chan int](), false},
		{"unsafe pointer", reflect.TypeFor[unsafe.Pointer](), false},
		{"deeply nested pointer", reflect.TypeFor[struct{ A [2]struct{ P *int } }](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pointerFree(tt.typ); got != tt.want {
				t.Errorf("pointerFree(%s) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestVariant_String(t *testing.T) {
	if VariantEmpty.String() != "empty" || VariantFlat.String() != "flat" || VariantManaged.String() != "managed" {
		t.Error("unexpected variant names")
	}
	if Variant(99).String() != "unknown" {
		t.Error("out-of-range variant should stringify as unknown")
	}
}

// Package inplacevector provides a fixed-capacity sequence container whose
// elements are stored entirely within the container value. No operation ever
// allocates: mutations either succeed within the fixed capacity or report a
// capacity-exceeded error.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	inplacevector/       Root package with the Vector container
//	├── errors/          Structured error types (capacity-exceeded, out-of-bounds)
//	├── internal/layout/ Storage representation selection per instantiation
//	├── cmd/ivrun/       CLI for running op scripts and an interactive TUI
//	└── examples/        Example programs
//
// # Capacity at the type level
//
// Go has no constant generic parameters, so the capacity is carried by an
// array type parameter: Vector[A, T] requires A to be [N]T, and N becomes
// the capacity of the instantiation.
//
//	var v inplacevector.Vector[[8]int, int]
//
//	if err := v.PushBack(42); err != nil {
//	    // vector full
//	}
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// The zero Vector is a valid empty container. A [0]T storage parameter gives
// a zero-capacity vector on which every append form immediately reports
// capacity-exceeded.
//
// # Storage variants
//
// Each (A, T) instantiation selects one of three storage representations,
// once, at first use: empty (zero capacity), flat (plain-data elements whose
// copy and discard are bulk memory operations), or managed (pointer-bearing
// elements whose vacated slots are zeroed so the garbage collector can
// reclaim what they referenced). The variant affects only internals; the
// operation surface is identical, with one documented exception: MoveFrom
// drains its source for managed elements but may leave a flat source's
// length unspecified-but-valid.
//
// # Error model
//
// Exactly two conditions are recoverable errors, both carried by the errors
// subpackage: capacity-exceeded and out-of-bounds (the At/SetAt accessors).
// Every other illegal use (unchecked indexing past Len, UncheckedPushBack on
// a full vector, a malformed Delete range) is a programming error and panics.
//
// Vectors are not synchronized; concurrent mutation requires external
// locking.
package inplacevector

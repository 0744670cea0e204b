// Package layout selects the storage representation for a vector
// instantiation.
//
// Given the storage array type [N]T and the element type T, it picks exactly
// one of three variants: empty (N == 0), flat (plain-data elements, bulk
// copy/discard), or managed (pointer-bearing elements, per-slot zeroing on
// destroy). Selection runs once per instantiation and is cached; an invalid
// pairing of array and element type panics.
package layout

// Package errors provides structured error types for the inplace-vector library.
//
// Errors are categorized by Op (which container operation failed) and Kind
// (error category). Only two kinds exist: capacity-exceeded and out-of-bounds.
// Every other illegal use of the container is a programming-error fault and
// panics instead of returning an error value.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpInsert, errors.KindCapacityExceeded).
//		Capacity(8).
//		Needed(9).
//		Detail("insert of 3 elements at index 2").
//		Build()
//
// Or use convenience constructors for the common patterns:
//
//	err := errors.CapacityExceeded(errors.OpPushBack, 8, 9)
//	err := errors.OutOfBounds(errors.OpAt, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
// The IsCapacityExceeded and IsOutOfBounds predicates classify an error chain
// without requiring the caller to unwrap it.
package errors

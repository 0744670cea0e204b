package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Op identifies the container operation that failed
type Op string

const (
	OpPushBack  Op = "push_back"
	OpAppend    Op = "append"
	OpAppendSeq Op = "append_seq"
	OpInsert    Op = "insert"
	OpInsertN   Op = "insert_n"
	OpInsertSeq Op = "insert_seq"
	OpResize    Op = "resize"
	OpAssign    Op = "assign"
	OpAssignN   Op = "assign_n"
	OpAssignSeq Op = "assign_seq"
	OpAt        Op = "at"
	OpSetAt     Op = "set_at"
	OpOf        Op = "of"
	OpRepeat    Op = "repeat"
	OpSized     Op = "sized"
	OpCollect   Op = "collect"
)

// Kind categorizes the error
type Kind string

const (
	// KindCapacityExceeded is reported when an operation would need more
	// live slots than the vector's fixed capacity provides.
	KindCapacityExceeded Kind = "capacity_exceeded"
	// KindOutOfBounds is reported by the checked accessors when an index
	// falls outside the live range [0, len).
	KindOutOfBounds Kind = "out_of_bounds"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Op       Op
	Kind     Kind
	Index    int
	Len      int
	Capacity int
	Needed   int
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	switch e.Kind {
	case KindCapacityExceeded:
		fmt.Fprintf(&b, ": need %d slots, capacity %d", e.Needed, e.Capacity)
	case KindOutOfBounds:
		fmt.Fprintf(&b, ": index %d, len %d", e.Index, e.Len)
	}

	if e.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Index sets the offending index
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// Len sets the vector length at the time of the error
func (b *Builder) Len(n int) *Builder {
	b.err.Len = n
	return b
}

// Capacity sets the vector's fixed capacity
func (b *Builder) Capacity(c int) *Builder {
	b.err.Capacity = c
	return b
}

// Needed sets the number of slots the operation required
func (b *Builder) Needed(n int) *Builder {
	b.err.Needed = n
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the two recoverable error patterns

// CapacityExceeded creates a capacity-exceeded error
func CapacityExceeded(op Op, capacity, needed int) *Error {
	return &Error{
		Op:       op,
		Kind:     KindCapacityExceeded,
		Capacity: capacity,
		Needed:   needed,
	}
}

// OutOfBounds creates an out-of-bounds access error
func OutOfBounds(op Op, index, length int) *Error {
	return &Error{
		Op:    op,
		Kind:  KindOutOfBounds,
		Index: index,
		Len:   length,
	}
}

// IsCapacityExceeded reports whether err is a capacity-exceeded error
func IsCapacityExceeded(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == KindCapacityExceeded
}

// IsOutOfBounds reports whether err is an out-of-bounds error
func IsOutOfBounds(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == KindOutOfBounds
}

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "capacity exceeded",
			err: &Error{
				Op:       OpPushBack,
				Kind:     KindCapacityExceeded,
				Capacity: 3,
				Needed:   4,
			},
			contains: []string{"[push_back]", "capacity_exceeded", "need 4 slots", "capacity 3"},
		},
		{
			name: "out of bounds",
			err: &Error{
				Op:    OpAt,
				Kind:  KindOutOfBounds,
				Index: 7,
				Len:   5,
			},
			contains: []string{"[at]", "out_of_bounds", "index 7", "len 5"},
		},
		{
			name: "with detail",
			err: &Error{
				Op:       OpInsert,
				Kind:     KindCapacityExceeded,
				Capacity: 2,
				Needed:   5,
				Detail:   "insert of 4 elements at index 1",
			},
			contains: []string{"[insert]", "capacity_exceeded", "insert of 4 elements"},
		},
		{
			name: "with cause",
			err: &Error{
				Op:     OpAssignSeq,
				Kind:   KindCapacityExceeded,
				Detail: "sequence longer than capacity",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[assign_seq]", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Op:    OpResize,
		Kind:  KindCapacityExceeded,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not traverse the cause chain")
	}
}

func TestError_Is(t *testing.T) {
	err := CapacityExceeded(OpPushBack, 3, 4)

	if !errors.Is(err, &Error{Op: OpPushBack, Kind: KindCapacityExceeded}) {
		t.Error("expected match on same op and kind")
	}
	if errors.Is(err, &Error{Op: OpInsert, Kind: KindCapacityExceeded}) {
		t.Error("unexpected match on different op")
	}
	if errors.Is(err, &Error{Op: OpPushBack, Kind: KindOutOfBounds}) {
		t.Error("unexpected match on different kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("wrapped")
	err := New(OpInsertN, KindCapacityExceeded).
		Capacity(4).
		Needed(6).
		Detail("requested %d copies", 5).
		Cause(cause).
		Build()

	if err.Op != OpInsertN {
		t.Errorf("op: got %q, want %q", err.Op, OpInsertN)
	}
	if err.Kind != KindCapacityExceeded {
		t.Errorf("kind: got %q, want %q", err.Kind, KindCapacityExceeded)
	}
	if err.Capacity != 4 || err.Needed != 6 {
		t.Errorf("capacity/needed: got %d/%d, want 4/6", err.Capacity, err.Needed)
	}
	if err.Detail != "requested 5 copies" {
		t.Errorf("detail: got %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not set")
	}
}

func TestPredicates(t *testing.T) {
	capErr := CapacityExceeded(OpAppend, 8, 10)
	oobErr := OutOfBounds(OpSetAt, 9, 4)

	if !IsCapacityExceeded(capErr) {
		t.Error("IsCapacityExceeded(capErr) = false")
	}
	if IsCapacityExceeded(oobErr) {
		t.Error("IsCapacityExceeded(oobErr) = true")
	}
	if !IsOutOfBounds(oobErr) {
		t.Error("IsOutOfBounds(oobErr) = false")
	}
	if IsOutOfBounds(capErr) {
		t.Error("IsOutOfBounds(capErr) = true")
	}

	// wrapped errors are still classified
	wrapped := fmt.Errorf("applying script: %w", capErr)
	if !IsCapacityExceeded(wrapped) {
		t.Error("IsCapacityExceeded did not see through fmt.Errorf wrapping")
	}

	if IsCapacityExceeded(nil) || IsOutOfBounds(nil) {
		t.Error("predicates matched nil")
	}
	if IsCapacityExceeded(errors.New("plain")) {
		t.Error("predicate matched a plain error")
	}
}

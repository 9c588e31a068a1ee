// Package assert raises caller contract violations as panics.
//
// A violated precondition means the caller has broken the occupancy
// invariants of the buffer; continuing would silently corrupt unread data,
// so these are faults rather than returned errors.
package assert

import (
	"github.com/pkg/errors"
)

// ContractError describes a violated precondition. It is the value passed to
// panic, so a recover() site can inspect it with errors.As.
type ContractError struct {
	Op  string
	Err error
}

func (e *ContractError) Error() string {
	return "ringbuffer: " + e.Op + ": " + e.Err.Error()
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// That panics with a *ContractError when cond is false.
func That(cond bool, op string, format string, args ...any) {
	if cond {
		return
	}

	panic(&ContractError{Op: op, Err: errors.Errorf(format, args...)})
}

// AtMost panics when n exceeds limit or is negative.
func AtMost(n, limit int, op string, what string) {
	if n < 0 {
		panic(&ContractError{Op: op, Err: errors.Errorf("negative %s length %d", what, n)})
	}

	if n > limit {
		panic(&ContractError{Op: op, Err: errors.Errorf("%s length %d exceeds %d", what, n, limit)})
	}
}

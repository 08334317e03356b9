package arrnd

import (
	"errors"
	"fmt"
)

// Error kinds reported by array operations. Match them with errors.Is.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidCast     = errors.New("invalid cast")
	ErrEmptyOperation  = errors.New("operation on empty array")
	ErrFilterConsumed  = errors.New("filter already consumed")
)

// Error describes a failed array operation.
type Error struct {
	Op     string // Operation that failed (e.g., "slice", "broadcast")
	Kind   error  // One of the Err* kinds above
	Detail string // Additional details
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Detail)
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(op string, kind error, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

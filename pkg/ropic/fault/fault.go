package fault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tag classifies faults by the most general and prominent criteria:
// boundary crossed, owning subsystem, or recovery strategy. Tags are not
// added casually; a new tag needs a class of failures that none of the
// existing ones covers.
type Tag uint8

const (
	// Database marks failures of database operations.
	Database Tag = iota
	// Validation marks input validation failures.
	Validation
)

func (t Tag) String() string {
	switch t {
	case Database:
		return "DATABASE"
	case Validation:
		return "VALIDATION"
	default:
		return "UNKNOWN"
	}
}

// NoCode is the code of faults whose callers need no per-fault handling
// strategy, which is the common case.
const NoCode = ^uint(0)

// Fault is a failure payload with identity. The code distinguishes faults
// only when the caller handles specific failures of one operation with
// different strategies; prefer an enum over bare numbers when using it.
type Fault struct {
	id        uuid.UUID
	createdAt time.Time
	tag       Tag
	message   string
	code      uint
}

// New builds a Fault with NoCode.
func New(tag Tag, message string) Fault {
	return WithCode(tag, message, NoCode)
}

// Newf builds a Fault with a formatted message and NoCode.
func Newf(tag Tag, format string, args ...any) Fault {
	return New(tag, fmt.Sprintf(format, args...))
}

// WithCode builds a Fault carrying a handling-strategy code.
func WithCode(tag Tag, message string, code uint) Fault {
	return Fault{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		tag:       tag,
		message:   message,
		code:      code,
	}
}

// From wraps a plain Go error into a Fault.
func From(tag Tag, err error) Fault {
	return New(tag, err.Error())
}

func (f Fault) Tag() Tag {
	return f.tag
}

func (f Fault) Message() string {
	return f.message
}

func (f Fault) Code() uint {
	return f.code
}

func (f Fault) Id() uuid.UUID {
	return f.id
}

// CreatedAt returns the fault creation time (UTC).
func (f Fault) CreatedAt() time.Time {
	return f.createdAt
}

// Error implements error.
func (f Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.tag, f.message)
}

// Errors flattens a possibly joined error into its parts.
func Errors(err error) []error {
	if err == nil {
		return []error{}
	}
	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap()
	}
	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation or
// an expired deadline.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

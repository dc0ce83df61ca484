// Package pizzeria holds the shared kernel used by every bounded context of
// the ordering system: command errors, guard helpers, identifiers and the
// gRPC server bootstrap.
package pizzeria

import (
	"errors"
	"fmt"
)

// StatusCode represents the category of a rejected operation.
type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusFailedPrecondition
	StatusNotFound
	StatusUnauthenticated
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusUnauthenticated:
		return "UNAUTHENTICATED"
	default:
		return "UNKNOWN"
	}
}

// CommandError is returned when an operation is rejected by business logic.
// State is never mutated when a CommandError is returned.
type CommandError struct {
	Code    StatusCode
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// NewInvalidArgument creates a CommandError for invalid input.
func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

// NewInvalidArgumentf creates an invalid argument error with a formatted message.
func NewInvalidArgumentf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewFailedPrecondition creates a CommandError for violated preconditions.
func NewFailedPrecondition(message string) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: message}
}

// NewFailedPreconditionf creates a CommandError with a formatted message.
func NewFailedPreconditionf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound creates a CommandError for a lookup that matched nothing.
func NewNotFound(message string) *CommandError {
	return &CommandError{Code: StatusNotFound, Message: message}
}

// NewUnauthenticated creates a CommandError for flows gated behind login.
func NewUnauthenticated(message string) *CommandError {
	return &CommandError{Code: StatusUnauthenticated, Message: message}
}

// CodeOf extracts the status code of err. ok is false when err is not a
// CommandError anywhere in its chain.
func CodeOf(err error) (code StatusCode, ok bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code, true
	}
	return 0, false
}

// IsCode reports whether err carries the given status code.
func IsCode(err error, code StatusCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

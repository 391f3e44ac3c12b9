package outcome

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the capability every failure kind must provide: a regular Go
// error with a human-readable message. The set of kinds is open; callers
// add domain-specific kinds by implementing this interface.
type Error interface {
	error
	// Message returns the rendered failure message
	Message() string
}

// GenericError is an ad hoc failure identified only by its message.
// Two GenericError values are equal iff their messages are equal.
type GenericError struct {
	msg string
}

// Generic constructs a GenericError from a message.
func Generic(message string) GenericError {
	return GenericError{msg: message}
}

func (e GenericError) Message() string {
	return e.msg
}

func (e GenericError) Error() string {
	return e.msg
}

// Exceptional wraps a fault caught at the library's single recovery
// boundary (see Catch and friends). The original fault stays reachable
// for diagnostics; the library itself never re-raises it.
type Exceptional struct {
	cause      error
	diagnostic error
}

// FromFault wraps a caught error into an Exceptional, capturing the
// stack at the wrap site.
func FromFault(cause error) Exceptional {
	if cause == nil {
		cause = errs.New("outcome: nil fault")
	}
	return Exceptional{
		cause:      cause,
		diagnostic: errs.Wrap(cause),
	}
}

// FromPanic wraps a recovered panic value into an Exceptional.
func FromPanic(recovered any) Exceptional {
	if err, ok := recovered.(error); ok {
		return FromFault(err)
	}
	return FromFault(fmt.Errorf("panic: %v", recovered))
}

func (e Exceptional) Message() string {
	return e.cause.Error()
}

func (e Exceptional) Error() string {
	return e.cause.Error()
}

// Cause returns the original fault.
func (e Exceptional) Cause() error {
	return e.cause
}

// Unwrap lets errors.Is and errors.As see through to the original fault.
func (e Exceptional) Unwrap() error {
	return e.cause
}

// Diagnostic returns the fault annotated with the stack captured at
// wrap time.
func (e Exceptional) Diagnostic() error {
	return e.diagnostic
}

// AsError adapts an arbitrary error into the Error hierarchy. Errors
// that already implement Error pass through unchanged, anything else is
// wrapped as Exceptional.
func AsError(err error) Error {
	if err == nil {
		return Generic("outcome: nil error")
	}
	if e, ok := err.(Error); ok {
		return e
	}
	return FromFault(err)
}

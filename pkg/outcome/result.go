package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is a frozen two-state union: a success carrying a value of
// type T, or a failure carrying an Error. Combinators never mutate a
// Result, they build new ones. Each Result additionally carries an id
// and a UTC creation time for diagnostics; both are excluded from Equal.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       Error
	success   bool
}

func Success[T any](value T) Result[T] {
	return Result[T]{
		value:     value,
		success:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err Error) Result[T] {
	if err == nil {
		err = Generic("outcome: nil error")
	}
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail is a convenience for Failure(Generic(msg)).
func Fail[T any](msg string) Result[T] {
	return Failure[T](Generic(msg))
}

// Of adapts an idiomatic (value, error) pair: a nil error lifts the
// value into a success, anything else becomes a failure.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Failure[T](AsError(err))
	}
	return Success(value)
}

// FailureFrom retypes a failed Result, keeping the error and the
// identity metadata. The input must be a failure.
func FailureFrom[In, Out any](from Result[In]) Result[Out] {
	if from.success {
		panic("outcome: FailureFrom called on success")
	}
	return Result[Out]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.success
}

func (r Result[T]) IsFailure() bool {
	return !r.success
}

// Value returns the success payload. Calling it on a failure is a bug
// in the caller and panics immediately.
func (r Result[T]) Value() T {
	if !r.success {
		panic(fmt.Sprintf("outcome: Value called on failure: %s", r.err.Message()))
	}
	return r.value
}

// Err returns the failure error. Calling it on a success is a bug in
// the caller and panics immediately.
func (r Result[T]) Err() Error {
	if r.success {
		panic("outcome: Err called on success")
	}
	return r.err
}

// Get returns both sides without panicking; exactly one is meaningful.
func (r Result[T]) Get() (T, Error) {
	return r.value, r.err
}

// ValueOr returns the payload on success, fallback otherwise.
func (r Result[T]) ValueOr(fallback T) T {
	if r.success {
		return r.value
	}
	return fallback
}

// Discard narrows to Result[Unit], keeping state, error and identity.
func (r Result[T]) Discard() Result[Unit] {
	return Result[Unit]{
		err:       r.err,
		success:   r.success,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) String() string {
	if r.success {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%s)", r.err.Message())
}

// Equal reports structural equality over payload and error only; the
// identity metadata does not participate.
func Equal[T comparable](a, b Result[T]) bool {
	if a.success != b.success {
		return false
	}
	if a.success {
		return a.value == b.value
	}
	return a.err == b.err
}

package outcome

import "context"

// Catch runs action and converts a returned error or a panic into a
// failed Result[Unit]. This file is the only place the library
// recovers; everywhere else a panic raised by caller code propagates
// untouched.
func Catch(action func() error) Result[Unit] {
	return CatchValue(func() (Unit, error) {
		return Unit{}, action()
	})
}

// CatchValue runs fn and returns its value as a success, or the
// returned error / recovered panic as a Failure(Exceptional).
func CatchValue[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Failure[T](FromPanic(rec))
		}
	}()

	v, err := fn()
	if err != nil {
		return Failure[T](FromFault(err))
	}
	return Success(v)
}

// CatchCtx is the cancellation-aware variant of Catch. The context is
// handed to the action verbatim; the library does not interpret it.
func CatchCtx(ctx context.Context, action func(ctx context.Context) error) Result[Unit] {
	return Catch(func() error {
		return action(ctx)
	})
}

// CatchValueCtx is the cancellation-aware variant of CatchValue.
func CatchValueCtx[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Result[T] {
	return CatchValue(func() (T, error) {
		return fn(ctx)
	})
}

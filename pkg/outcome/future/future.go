package future

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/lazy"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Future is a single-assignment completion token for a Result[T]. It is
// completed exactly once and may be awaited any number of times, from
// any goroutine.
type Future[T any] struct {
	done chan struct{}
	res  outcome.Result[T]
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Go runs fn in its own goroutine and returns the future of its result.
func Go[T any](fn func() outcome.Result[T]) *Future[T] {
	f := newFuture[T]()
	go func() {
		f.res = fn()
		close(f.done)
	}()
	return f
}

// GoCtx runs a context-taking computation in its own goroutine.
func GoCtx[T any](ctx context.Context, fn func(ctx context.Context) outcome.Result[T]) *Future[T] {
	return pump(ctx, lazy.Lazy[T](fn))
}

// New returns an incomplete future and its resolve function. Resolving
// twice is a contract violation and panics.
func New[T any]() (*Future[T], func(outcome.Result[T])) {
	f := newFuture[T]()
	resolve := func(r outcome.Result[T]) {
		f.res = r
		close(f.done)
	}
	return f, resolve
}

// Resolved wraps an already known result; no goroutine is involved.
func Resolved[T any](r outcome.Result[T]) *Future[T] {
	f := newFuture[T]()
	f.res = r
	close(f.done)
	return f
}

// Of is a completed successful future.
func Of[T any](value T) *Future[T] {
	return Resolved(outcome.Success(value))
}

// Err is a completed failed future.
func Err[T any](err outcome.Error) *Future[T] {
	return Resolved(outcome.Failure[T](err))
}

// Await blocks until the future completes or ctx is done. A context
// error is surfaced as a failed result.
func (f *Future[T]) Await(ctx context.Context) outcome.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return outcome.Failure[T](outcome.AsError(ctx.Err()))
	}
}

// pump drives a lazy computation to completion in its own goroutine.
func pump[T any](ctx context.Context, l lazy.Lazy[T]) *Future[T] {
	f := newFuture[T]()
	go func() {
		f.res = l.Await(ctx)
		close(f.done)
	}()
	return f
}

// Map applies a synchronous continuation once the input resolves.
func Map[In, Out any](ctx context.Context, input outcome.Awaitable[In], onSuccess func(In) Out) *Future[Out] {
	return pump(ctx, lazy.Map(input, onSuccess))
}

// MapCtx applies a context-taking continuation once the input resolves.
func MapCtx[In, Out any](ctx context.Context, input outcome.Awaitable[In], onSuccess func(ctx context.Context, v In) Out) *Future[Out] {
	return pump(ctx, lazy.MapCtx(input, onSuccess))
}

// Bind chains a synchronous result-producing continuation.
func Bind[In, Out any](ctx context.Context, input outcome.Awaitable[In], onSuccess func(In) outcome.Result[Out]) *Future[Out] {
	return pump(ctx, lazy.Bind(input, onSuccess))
}

// BindAwait chains a pending continuation: the input resolves first and
// a failure skips the continuation entirely.
func BindAwait[In, Out any](ctx context.Context, input outcome.Awaitable[In], onSuccess func(In) outcome.Awaitable[Out]) *Future[Out] {
	return pump(ctx, lazy.BindAwait(input, onSuccess))
}

// Tap runs a success side effect once the input resolves.
func Tap[T any](ctx context.Context, input outcome.Awaitable[T], onSuccess func(T)) *Future[T] {
	return pump(ctx, lazy.Tap(input, onSuccess))
}

// TapErr runs a failure side effect once the input resolves.
func TapErr[T any](ctx context.Context, input outcome.Awaitable[T], onFailure func(outcome.Error)) *Future[T] {
	return pump(ctx, lazy.TapErr(input, onFailure))
}

// OrElse replaces a resolved failure with a success carrying alt.
func OrElse[T any](ctx context.Context, input outcome.Awaitable[T], alt T) *Future[T] {
	return pump(ctx, lazy.OrElse(input, alt))
}

// Recover turns a resolved failure into a success computed from its error.
func Recover[T any](ctx context.Context, input outcome.Awaitable[T], onFailure func(outcome.Error) T) *Future[T] {
	return pump(ctx, lazy.Recover(input, onFailure))
}

// RecoverWith turns a resolved failure into the handler's result.
func RecoverWith[T any](ctx context.Context, input outcome.Awaitable[T], onFailure func(outcome.Error) outcome.Result[T]) *Future[T] {
	return pump(ctx, lazy.RecoverWith(input, onFailure))
}

// FailWhen converts a resolved success into a failure when the
// predicate holds.
func FailWhen[T any](ctx context.Context, input outcome.Awaitable[T], predicate func(T) bool, err outcome.Error) *Future[T] {
	return pump(ctx, lazy.FailWhen(input, predicate, err))
}

// Switch runs the matching side effect once the input resolves and
// passes the result through unchanged.
func Switch[T any](ctx context.Context, input outcome.Awaitable[T], onSuccess func(T), onFailure func(outcome.Error)) *Future[T] {
	return pump(ctx, lazy.Switch(input, onSuccess, onFailure))
}

// Bind2 chains two dependent pending steps and projects both payloads.
func Bind2[In, Mid, Out any](ctx context.Context, input outcome.Awaitable[In],
	bind func(In) outcome.Awaitable[Mid],
	project func(In, Mid) Out) *Future[Out] {
	return pump(ctx, lazy.Bind2(input, bind, project))
}

// Try bridges a tuple-style continuation over a pending result.
func Try[In, Out any](ctx context.Context, input outcome.Awaitable[In], onTry func(In) (Out, error)) *Future[Out] {
	return pump(ctx, lazy.Try(input, onTry))
}

// Catch runs a fallible, context-taking computation in its own
// goroutine; errors and panics become failed results.
func Catch[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	return pump(ctx, lazy.Catch(fn))
}

// Match reduces a pending result to a plain value delivered on the
// returned channel once the input resolves.
func Match[In, Out any](ctx context.Context, input outcome.Awaitable[In],
	onSuccess func(In) Out,
	onFailure func(outcome.Error) Out) <-chan Out {

	out := make(chan Out, 1)
	go func() {
		defer close(out)
		out <- solo.Match(input.Await(ctx), onSuccess, onFailure)
	}()
	return out
}

// All awaits every input in order and collects the payloads, failing
// fast on the first failure.
func All[T any](ctx context.Context, inputs ...outcome.Awaitable[T]) *Future[[]T] {
	f := newFuture[[]T]()
	go func() {
		defer close(f.done)

		values := make([]T, 0, len(inputs))
		for _, in := range inputs {
			r := in.Await(ctx)
			if r.IsFailure() {
				f.res = outcome.FailureFrom[T, []T](r)
				return
			}
			values = append(values, r.Value())
		}
		f.res = outcome.Success(values)
	}()
	return f
}

// Race resolves to the first input to complete, success or failure.
func Race[T any](ctx context.Context, inputs ...outcome.Awaitable[T]) *Future[T] {
	if len(inputs) == 0 {
		return Err[T](outcome.Generic("future: race without inputs"))
	}

	winner := make(chan outcome.Result[T], len(inputs))
	for _, in := range inputs {
		go func(a outcome.Awaitable[T]) {
			winner <- a.Await(ctx)
		}(in)
	}

	f := newFuture[T]()
	go func() {
		f.res = <-winner
		close(f.done)
	}()
	return f
}

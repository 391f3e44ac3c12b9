package lazy

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/option"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Lazy is a deferred Result[T]: a computation resolved on demand, every
// time it is awaited.
type Lazy[T any] func(ctx context.Context) outcome.Result[T]

// Await resolves the computation. Lazy satisfies outcome.Awaitable.
func (l Lazy[T]) Await(ctx context.Context) outcome.Result[T] {
	return l(ctx)
}

// Pure lifts a plain value into an already-successful Lazy.
func Pure[T any](value T) Lazy[T] {
	return FromResult(outcome.Success(value))
}

// Raise lifts an error into an already-failed Lazy.
func Raise[T any](err outcome.Error) Lazy[T] {
	return FromResult(outcome.Failure[T](err))
}

// Fail is a convenience for Raise(Generic(msg)).
func Fail[T any](msg string) Lazy[T] {
	return FromResult(outcome.Fail[T](msg))
}

// FromResult lifts a ready Result.
func FromResult[T any](r outcome.Result[T]) Lazy[T] {
	return func(context.Context) outcome.Result[T] {
		return r
	}
}

// FromOption lifts an option, turning absence into a failure with err.
func FromOption[T any](o option.Option[T], err outcome.Error) Lazy[T] {
	return FromResult(o.ToResult(err))
}

// From adapts any awaitable into the Lazy shape.
func From[T any](a outcome.Awaitable[T]) Lazy[T] {
	return a.Await
}

// Map applies a synchronous continuation to a pending result.
func Map[In, Out any](input outcome.Awaitable[In], onSuccess func(In) Out) Lazy[Out] {
	return func(ctx context.Context) outcome.Result[Out] {
		return solo.Map(input.Await(ctx), onSuccess)
	}
}

// MapCtx applies an asynchronous (context-taking) continuation.
func MapCtx[In, Out any](input outcome.Awaitable[In], onSuccess func(ctx context.Context, v In) Out) Lazy[Out] {
	return func(ctx context.Context) outcome.Result[Out] {
		return solo.Map(input.Await(ctx), func(v In) Out {
			return onSuccess(ctx, v)
		})
	}
}

// Bind chains a synchronous result-producing continuation.
func Bind[In, Out any](input outcome.Awaitable[In], onSuccess func(In) outcome.Result[Out]) Lazy[Out] {
	return func(ctx context.Context) outcome.Result[Out] {
		return solo.Bind(input.Await(ctx), onSuccess)
	}
}

// BindAwait chains a continuation that is itself pending. The input is
// resolved first; only on success is the continuation resolved.
func BindAwait[In, Out any](input outcome.Awaitable[In], onSuccess func(In) outcome.Awaitable[Out]) Lazy[Out] {
	return func(ctx context.Context) outcome.Result[Out] {
		return solo.Bind(input.Await(ctx), func(v In) outcome.Result[Out] {
			return onSuccess(v).Await(ctx)
		})
	}
}

// Bind2 chains two dependent pending steps and projects both payloads.
func Bind2[In, Mid, Out any](input outcome.Awaitable[In],
	bind func(In) outcome.Awaitable[Mid],
	project func(In, Mid) Out) Lazy[Out] {

	return func(ctx context.Context) outcome.Result[Out] {
		return solo.Bind2(input.Await(ctx),
			func(v In) outcome.Result[Mid] {
				return bind(v).Await(ctx)
			},
			project)
	}
}

// Tap runs a success side effect once the input resolves.
func Tap[T any](input outcome.Awaitable[T], onSuccess func(T)) Lazy[T] {
	return func(ctx context.Context) outcome.Result[T] {
		return solo.Tap(input.Await(ctx), onSuccess)
	}
}

// TapCtx is Tap with a context-taking side effect.
func TapCtx[T any](input outcome.Awaitable[T], onSuccess func(ctx context.Context, v T)) Lazy[T] {
	return func(ctx context.Context) outcome.Result[T] {
		return solo.Tap(input.Await(ctx), func(v T) {
			onSuccess(ctx, v)
		})
	}
}

// TapErr runs a failure side effect once the input resolves.
func TapErr[T any](input outcome.Awaitable[T], onFailure func(outcome.Error)) Lazy[T] {
	return func(ctx context.Context) outcome.Result[T] {
		return solo.TapErr(input.Await(ctx), onFailure)
	}
}

// OrElse replaces a resolved failure with a success carrying alt.
func OrElse[T any](input outcome.Awaitable[T], alt T) Lazy[T] {
	return func(ctx context.Context) outcome.Result[T] {
		return solo.OrElse(input.Await(ctx), alt)
	}
}

// Recover turns a resolved failure into a success computed from its error.
func Recover[T any](input outcome.Awaitable[T], onFailure func(outcome.Error) T) Lazy[T] {
	return func(ctx context.Context) outcome.Result[T] {
		return solo.Recover(input.Await(ctx), onFailure)
	}
}

// RecoverWith turns a resolved failure into whatever result the handler
// produces.
func RecoverWith[T any](input outcome.Awaitable[T], onFailure func(outcome.Error) outcome.Result[T]) Lazy[T] {
	return func(ctx context.Context) outcome.Result[T] {
		return solo.RecoverWith(input.Await(ctx), onFailure)
	}
}

// RecoverWithAwait is RecoverWith for a pending recovery path.
func RecoverWithAwait[T any](input outcome.Awaitable[T], onFailure func(outcome.Error) outcome.Awaitable[T]) Lazy[T] {
	return func(ctx context.Context) outcome.Result[T] {
		return solo.RecoverWith(input.Await(ctx), func(err outcome.Error) outcome.Result[T] {
			return onFailure(err).Await(ctx)
		})
	}
}

// Match reduces a pending result to a deferred plain value.
func Match[In, Out any](input outcome.Awaitable[In],
	onSuccess func(In) Out,
	onFailure func(outcome.Error) Out) func(ctx context.Context) Out {

	return func(ctx context.Context) Out {
		return solo.Match(input.Await(ctx), onSuccess, onFailure)
	}
}

// Switch runs the matching side effect once the input resolves and
// passes the result through unchanged.
func Switch[T any](input outcome.Awaitable[T], onSuccess func(T), onFailure func(outcome.Error)) Lazy[T] {
	return func(ctx context.Context) outcome.Result[T] {
		return solo.Switch(input.Await(ctx), onSuccess, onFailure)
	}
}

// FailWhen converts a resolved success into a failure when the
// predicate holds.
func FailWhen[T any](input outcome.Awaitable[T], predicate func(T) bool, err outcome.Error) Lazy[T] {
	return func(ctx context.Context) outcome.Result[T] {
		return solo.FailWhen(input.Await(ctx), predicate, err)
	}
}

// Try bridges a tuple-style continuation over a pending result.
func Try[In, Out any](input outcome.Awaitable[In], onTry func(In) (Out, error)) Lazy[Out] {
	return func(ctx context.Context) outcome.Result[Out] {
		return solo.Try(input.Await(ctx), onTry)
	}
}

// Catch is the asynchronous exception adapter: fn runs with the await
// context, and a returned error or panic becomes a failed result.
func Catch[T any](fn func(ctx context.Context) (T, error)) Lazy[T] {
	return func(ctx context.Context) outcome.Result[T] {
		return outcome.CatchValueCtx(ctx, fn)
	}
}

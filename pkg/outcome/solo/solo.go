package solo

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Map applies onSuccess to the payload; a failure is retyped unchanged.
func Map[In, Out any](input outcome.Result[In], onSuccess func(In) Out) outcome.Result[Out] {
	if input.IsFailure() {
		return outcome.FailureFrom[In, Out](input)
	}
	return outcome.Success(onSuccess(input.Value()))
}

// Bind chains a result-producing step; a failure short-circuits.
func Bind[In, Out any](input outcome.Result[In], onSuccess func(In) outcome.Result[Out]) outcome.Result[Out] {
	if input.IsFailure() {
		return outcome.FailureFrom[In, Out](input)
	}
	return onSuccess(input.Value())
}

// Bind2 chains two dependent steps and projects both payloads. The
// first failure encountered wins.
func Bind2[In, Mid, Out any](input outcome.Result[In],
	bind func(In) outcome.Result[Mid],
	project func(In, Mid) Out) outcome.Result[Out] {

	return Bind(input, func(v In) outcome.Result[Out] {
		return Map(bind(v), func(m Mid) Out {
			return project(v, m)
		})
	})
}

// Tap runs a success side effect and returns the input unchanged.
func Tap[T any](input outcome.Result[T], onSuccess func(T)) outcome.Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

// TapErr runs a failure side effect and returns the input unchanged.
func TapErr[T any](input outcome.Result[T], onFailure func(outcome.Error)) outcome.Result[T] {
	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

// OrElse replaces a failure with a success carrying alt.
func OrElse[T any](input outcome.Result[T], alt T) outcome.Result[T] {
	if input.IsFailure() {
		return outcome.Success(alt)
	}
	return input
}

// OrElseWith is OrElse with a lazily evaluated alternative.
func OrElseWith[T any](input outcome.Result[T], factory func() T) outcome.Result[T] {
	if input.IsFailure() {
		return outcome.Success(factory())
	}
	return input
}

// Recover turns a failure into a success computed from its error.
func Recover[T any](input outcome.Result[T], onFailure func(outcome.Error) T) outcome.Result[T] {
	if input.IsFailure() {
		return outcome.Success(onFailure(input.Err()))
	}
	return input
}

// RecoverWith turns a failure into whatever result onFailure produces.
func RecoverWith[T any](input outcome.Result[T], onFailure func(outcome.Error) outcome.Result[T]) outcome.Result[T] {
	if input.IsFailure() {
		return onFailure(input.Err())
	}
	return input
}

// Match reduces the result to a concrete value via the matching handler.
func Match[In, Out any](input outcome.Result[In],
	onSuccess func(In) Out,
	onFailure func(outcome.Error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Err())
}

// Switch runs the matching side effect and returns the input unchanged.
// Nil handlers are skipped.
func Switch[T any](input outcome.Result[T], onSuccess func(T), onFailure func(outcome.Error)) outcome.Result[T] {
	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Value())
		}
	} else if onFailure != nil {
		onFailure(input.Err())
	}
	return input
}

// FailWhen converts a success into a failure carrying err when the
// predicate holds. The predicate is never evaluated for failures.
func FailWhen[T any](input outcome.Result[T], predicate func(T) bool, err outcome.Error) outcome.Result[T] {
	return FailWhenWith(input, predicate, func(T) outcome.Error {
		return err
	})
}

// FailWhenWith is FailWhen with a lazily built error.
func FailWhenWith[T any](input outcome.Result[T], predicate func(T) bool, errFactory func(T) outcome.Error) outcome.Result[T] {
	if input.IsSuccess() && predicate(input.Value()) {
		return outcome.Failure[T](errFactory(input.Value()))
	}
	return input
}

// Try calls a (value, error) function on the payload and converts a
// returned error into a failure. Unlike Catch it does not recover
// panics; it only bridges tuple-style code into the result algebra.
func Try[In, Out any](input outcome.Result[In], onTry func(In) (Out, error)) outcome.Result[Out] {
	if input.IsFailure() {
		return outcome.FailureFrom[In, Out](input)
	}

	out, err := onTry(input.Value())
	if err != nil {
		return outcome.Failure[Out](outcome.AsError(err))
	}
	return outcome.Success(out)
}

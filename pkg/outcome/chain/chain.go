package chain

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps a Result[T] to enable fluent same-type pipelines.
type Chain[T any] struct {
	res outcome.Result[T]
}

// Start creates a chain from an existing result.
func Start[T any](r outcome.Result[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a chain from a successful value.
func FromValue[T any](value T) Chain[T] {
	return Start(outcome.Success(value))
}

// Result returns the underlying result.
func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then composes a function that already returns a Result[T].
func (c Chain[T]) Then(onSuccess func(T) outcome.Result[T]) Chain[T] {
	return Chain[T]{res: solo.Bind(c.res, onSuccess)}
}

// ThenTry composes a (T, error) function, converting the error to failure.
func (c Chain[T]) ThenTry(try func(T) (T, error)) Chain[T] {
	return Chain[T]{res: solo.Try(c.res, try)}
}

// Map transforms the successful value.
func (c Chain[T]) Map(onSuccess func(T) T) Chain[T] {
	return Chain[T]{res: solo.Map(c.res, onSuccess)}
}

// Ensure triggers side effects for success/failure without changing the
// result. Nil callbacks are safe.
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(outcome.Error)) Chain[T] {
	return Chain[T]{res: solo.Switch(c.res, onSuccess, onFailure)}
}

// Recover turns a failure back into a success computed from its error.
func (c Chain[T]) Recover(onFailure func(outcome.Error) T) Chain[T] {
	return Chain[T]{res: solo.Recover(c.res, onFailure)}
}

// OrElse replaces a failure with a success carrying alt.
func (c Chain[T]) OrElse(alt T) Chain[T] {
	return Chain[T]{res: solo.OrElse(c.res, alt)}
}

// FailWhen derails a success when the predicate holds.
func (c Chain[T]) FailWhen(predicate func(T) bool, err outcome.Error) Chain[T] {
	return Chain[T]{res: solo.FailWhen(c.res, predicate, err)}
}

// Finally collapses the chain into a value of the carried type.
func (c Chain[T]) Finally(onSuccess func(T) T, onFailure func(outcome.Error) T) T {
	return solo.Match(c.res, onSuccess, onFailure)
}

// To switches the chain to a new value type via a result-producing step.
func To[In, Out any](c Chain[In], onSuccess func(In) outcome.Result[Out]) Chain[Out] {
	return Chain[Out]{res: solo.Bind(c.res, onSuccess)}
}

// MapTo switches the chain to a new value type via a pure transformation.
func MapTo[In, Out any](c Chain[In], onSuccess func(In) Out) Chain[Out] {
	return Chain[Out]{res: solo.Map(c.res, onSuccess)}
}

// Fold collapses the chain into a value of an arbitrary type.
func Fold[In, Out any](c Chain[In], onSuccess func(In) Out, onFailure func(outcome.Error) Out) Out {
	return solo.Match(c.res, onSuccess, onFailure)
}

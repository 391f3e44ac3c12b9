package option

import (
	"fmt"
	"reflect"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Option represents presence or absence of a value of type T. A present
// option never wraps a nil value; absence is the only way to express
// "nothing here".
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value. Wrapping a nil value is a contract
// violation and panics; use FromPtr for nullable sources.
func Some[T any](value T) Option[T] {
	if isNil(value) {
		panic("option: Some called with nil value")
	}
	return Option[T]{value: value, ok: true}
}

// None constructs an empty Option for the given type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a nullable source: nil becomes None, anything else
// Some of the pointed-to value.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil || isNil(*ptr) {
		return None[T]()
	}
	return Some(*ptr)
}

// FromOk mirrors Go's comma-ok pattern (map lookups, type assertions).
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok || isNil(value) {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value together with a presence flag.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Value returns the present value. Calling it on None is a bug in the
// caller and panics immediately.
func (o Option[T]) Value() T {
	if !o.ok {
		panic("option: Value called on None")
	}
	return o.value
}

// ValueOr returns the value when present, fallback otherwise.
func (o Option[T]) ValueOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// ValueOrFunc lazily computes the fallback only when needed.
func (o Option[T]) ValueOrFunc(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// OrElse returns the option itself when present, otherwise other. The
// first present value wins.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// OrElseFunc lazily constructs the alternative only when needed.
func (o Option[T]) OrElseFunc(fn func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return fn()
}

// Filter keeps the value when predicate holds, otherwise becomes None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// ToResult converts presence into a success and absence into a failure
// carrying err.
func (o Option[T]) ToResult(err outcome.Error) outcome.Result[T] {
	if o.ok {
		return outcome.Success(o.value)
	}
	if err == nil {
		err = outcome.Generic("option: missing value")
	}
	return outcome.Failure[T](err)
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies fn to the present value; None propagates unchanged as
// None of the new type.
func Map[In, Out any](o Option[In], fn func(In) Out) Option[Out] {
	if !o.ok {
		return None[Out]()
	}
	return Some(fn(o.value))
}

// Bind chains an option-producing step; None short-circuits.
func Bind[In, Out any](o Option[In], fn func(In) Option[Out]) Option[Out] {
	if !o.ok {
		return None[Out]()
	}
	return fn(o.value)
}

// Bind2 chains two dependent optional steps and projects both values.
func Bind2[In, Mid, Out any](o Option[In], bind func(In) Option[Mid], project func(In, Mid) Out) Option[Out] {
	return Bind(o, func(v In) Option[Out] {
		return Map(bind(v), func(m Mid) Out {
			return project(v, m)
		})
	})
}

// Match eliminates the option into a single value.
func Match[In, Out any](o Option[In], ifSome func(In) Out, ifNone func() Out) Out {
	if o.ok {
		return ifSome(o.value)
	}
	return ifNone()
}

// MatchValue is Match with a plain fallback for the none branch.
func MatchValue[In, Out any](o Option[In], ifSome func(In) Out, fallback Out) Out {
	return Match(o, ifSome, func() Out { return fallback })
}

// Equal reports value equality: tags must match and, when present, the
// values themselves.
func Equal[T comparable](a, b Option[T]) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || a.value == b.value
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// Package future provides Future[T], the heap-backed asynchronous
// wrapper shape: a completion token filled exactly once and awaitable
// any number of times, from any goroutine.
//
// Combinators here are thin adapters: each one builds the matching lazy
// combinator and pumps it to completion in its own goroutine, so the
// short-circuit semantics are exactly those of package solo. Already
// completed futures (Resolved/Of/Err) allocate no goroutine.
//
// Aggregation helpers:
// - All: await every input, fail fast on the first failure
// - Race: the first input to complete wins
package future

// Package lazy provides Lazy[T], the lightweight asynchronous wrapper
// shape: a deferred Result that does nothing until awaited. Composing
// Lazy values allocates closures only; no goroutines or channels are
// involved, which makes it the cheap choice for results that are often
// already known.
//
// Every asynchronous combinator is implemented exactly once here,
// against outcome.Awaitable, and delegates to the synchronous solo
// semantics after resolving its input. The future package adapts the
// same combinators to its eager, channel-backed shape.
//
// Ordering is fixed: the incoming result is resolved first; on failure
// the continuation is skipped, otherwise the continuation is resolved.
// Faults raised by continuations propagate untouched; only Catch
// converts them into failures.
package lazy

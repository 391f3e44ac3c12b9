// Package solo contains the single-value, synchronous combinators that
// operate on Result[T]. Every combinator short-circuits: a failed input
// never invokes a success-path callback, and a successful input never
// invokes a failure-path callback.
//
// Highlights:
// - Map/Bind/Bind2: transform or chain result-producing steps
// - Tap/TapErr/Switch: side effects without changing the result
// - OrElse/Recover/RecoverWith: turn failures back into successes
// - FailWhen: turn a success into a failure when a predicate holds
// - Match: reduce to a concrete value via success/failure handlers
// - Try: call a (Out, error) function and convert the error to failure
package solo

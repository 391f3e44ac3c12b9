// Package option provides Option[T], a presence/absence union used to
// avoid nil-reference hazards.
//
// Key operations:
// - Some/None/FromPtr/FromOk: construct options
// - Map/Bind/Bind2: transform and chain optional computations
// - Match/MatchValue: total elimination into a plain value
// - OrElse: first present value wins
// - ToResult: convert absence into a failed Result
//
// The zero value of Option[T] is None, so options embed safely.
package option

// Package chain provides a minimal fluent wrapper for synchronous
// composition of Result[T] values via the solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a plain value
// - Then/ThenTry: compose result-returning or (T, error) functions
// - Map: transform the successful value in place
// - Ensure: trigger side effects without changing the result
// - Recover/OrElse/FailWhen: reroute between the two tracks
// - Finally/Fold: collapse the chain into a concrete value
//
// Steps that change the value type use the free functions To and MapTo,
// since Go methods cannot introduce new type parameters.
package chain

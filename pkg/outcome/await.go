package outcome

import "context"

// Awaitable is a pending Result: anything that can be resolved to a
// Result[T] given a context. The asynchronous combinators are written
// once against this interface; the lazy and future packages provide the
// two concrete wrapper shapes.
type Awaitable[T any] interface {
	Await(ctx context.Context) Result[T]
}

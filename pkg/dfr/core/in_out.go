package core

import (
	"github.com/ib-77/dfr/pkg/dfr"
)

// Settlement carries a settled outcome across a channel boundary: either
// Value with a nil Err, or a non-nil Err.
type Settlement[T any] struct {
	Value T
	Err   error
}

// ToChan bridges a deferred result into a buffered channel for consumers
// living outside the reactor goroutine. Exactly one Settlement is sent, then
// the channel is closed. The send never blocks the reactor.
func ToChan[T any](source dfr.Deferrable[T]) <-chan Settlement[T] {
	out := make(chan Settlement[T], 1)

	source.OnSuccess(func(v T) {
		out <- Settlement[T]{Value: v}
		close(out)
	})
	source.OnFailure(func(err error) {
		out <- Settlement[T]{Err: err}
		close(out)
	})

	return out
}

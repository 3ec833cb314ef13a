package chain

import (
	"context"

	"github.com/ib-77/dfr/pkg/dfr"
	"github.com/ib-77/dfr/pkg/dfr/solo"
)

// Action is one step of a sequential pipeline: it receives the previous
// step's value and returns the next deferred result.
type Action[T any] func(ctx context.Context, v T) dfr.Deferrable[T]

// Run folds Bind over the actions, starting from an already-succeeded seed
// carrying T's zero value. The resulting deferred result succeeds with the
// last action's value, or fails with the first error encountered; actions
// after a failure are never invoked. With no actions, Run yields the seed.
func Run[T any](ctx context.Context, actions ...Action[T]) dfr.Deferrable[T] {
	var seed T
	result := dfr.Deferrable[T](dfr.Const(seed))

	for _, action := range actions {
		result = solo.Bind[T, T](ctx, result, action)
	}

	return result
}

// All folds n deferred results into a single one that succeeds with all
// their values in argument order, or fails with the first error.
func All[T any](ctx context.Context, sources ...dfr.Deferrable[T]) dfr.Deferrable[[]T] {
	acc := dfr.Deferrable[[]T](dfr.Const(make([]T, 0, len(sources))))

	for _, source := range sources {
		source := source
		acc = solo.Bind(ctx, acc, func(ctx context.Context, vs []T) dfr.Deferrable[[]T] {
			return solo.Transform(ctx, source, func(_ context.Context, v T) []T {
				return append(vs, v)
			})
		})
	}

	return acc
}

// Chain wraps a dfr.Deferrable with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result dfr.Deferrable[T]
}

// Start creates a new chain from a dfr.Deferrable
func Start[T any](ctx context.Context, result dfr.Deferrable[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from an already-succeeded value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: dfr.Const(value),
	}
}

// Result returns the underlying dfr.Deferrable
func (c *Chain[T]) Result() dfr.Deferrable[T] {
	return c.result
}

// Then chains a continuation that returns dfr.Deferrable[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) dfr.Deferrable[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Bind[T, U](c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Transform[T, U](c.ctx, c.result, onSuccess),
	}
}

// MapError rewrites the eventual error, leaving success values untouched
func (c *Chain[T]) MapError(onFailure func(context.Context, error) error) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.TransformError[T](c.ctx, c.result, onFailure),
	}
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Tee[T](c.ctx, c.result, onSuccess),
	}
}

// Finally performs the caller's single end-of-pipeline subscription: exactly
// one of the handlers eventually fires, with the last stage's value or the
// first stage's error. If the pipeline already settled, the handler fires
// within this call.
func (c *Chain[T]) Finally(onSuccess func(context.Context, T), onFailure func(context.Context, error)) {
	c.result.OnSuccess(func(v T) {
		onSuccess(c.ctx, v)
	})
	c.result.OnFailure(func(err error) {
		onFailure(c.ctx, err)
	})
}

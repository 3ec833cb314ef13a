package solo

import (
	"context"

	"github.com/ib-77/dfr/pkg/dfr"
)

func Succeed[T any](v T) *dfr.Deferred[T] {
	return dfr.Const(v)
}

func Fail[T any](err error) *dfr.Deferred[T] {
	return dfr.Failed[T](err)
}

// Bind wires source and a continuation into one compound deferred result.
//
// The compound settles exactly once, through exactly one of: source failure
// (the continuation never runs), a panic inside the continuation, inner
// success, or inner failure. Bind never blocks and never lets a continuation
// panic escape to the caller; every failure origin arrives on the compound's
// failure channel, indistinguishable from the others.
//
// The returned value is the subscription side only. The compound is settled
// exclusively by Bind itself.
func Bind[In, Out any](ctx context.Context,
	source dfr.Deferrable[In],
	onSuccess func(ctx context.Context, v In) dfr.Deferrable[Out]) dfr.Deferrable[Out] {

	compound := dfr.New[Out]()

	source.OnFailure(func(err error) {
		compound.Reject(err)
	})

	source.OnSuccess(func(v In) {
		inner, err := invoke(ctx, v, onSuccess)
		if err != nil {
			compound.Reject(err)
			return
		}
		if dfr.IsNil(inner) {
			compound.Reject(dfr.ErrNoDeferred)
			return
		}

		inner.OnSuccess(func(w Out) {
			compound.Resolve(w)
		})
		inner.OnFailure(func(err error) {
			compound.Reject(err)
		})
	})

	return compound
}

// invoke runs the continuation, converting a panic into an error return.
func invoke[In, Out any](ctx context.Context, v In,
	onSuccess func(ctx context.Context, v In) dfr.Deferrable[Out]) (inner dfr.Deferrable[Out], err error) {

	defer func() {
		if r := recover(); r != nil {
			inner = nil
			err = dfr.AsError(r)
		}
	}()

	return onSuccess(ctx, v), nil
}

// Transform applies a pure mapping to the eventual success value. A panic in
// the mapping travels the same failure path as a panicking Bind continuation.
func Transform[In, Out any](ctx context.Context,
	source dfr.Deferrable[In],
	onSuccess func(ctx context.Context, v In) Out) dfr.Deferrable[Out] {

	return Bind(ctx, source, func(ctx context.Context, v In) dfr.Deferrable[Out] {
		return dfr.Const(onSuccess(ctx, v))
	})
}

// TransformError maps the eventual error while passing success values
// through unchanged. It builds a fresh compound; the source is never
// re-settled. The mapping returns the replacement error directly; if it
// panics instead, the recovered value becomes the replacement.
func TransformError[T any](ctx context.Context,
	source dfr.Deferrable[T],
	onFailure func(ctx context.Context, err error) error) dfr.Deferrable[T] {

	compound := dfr.New[T]()

	source.OnSuccess(func(v T) {
		compound.Resolve(v)
	})
	source.OnFailure(func(err error) {
		compound.Reject(mapError(ctx, err, onFailure))
	})

	return compound
}

func mapError(ctx context.Context, err error,
	onFailure func(ctx context.Context, err error) error) (mapped error) {

	defer func() {
		if r := recover(); r != nil {
			mapped = dfr.AsError(r)
		}
	}()

	return onFailure(ctx, err)
}

// Try binds a continuation in Go's (value, error) shape: a nil error
// resolves the compound, a non-nil error rejects it.
func Try[In, Out any](ctx context.Context,
	source dfr.Deferrable[In],
	onTryExecute func(ctx context.Context, v In) (Out, error)) dfr.Deferrable[Out] {

	return Bind(ctx, source, func(ctx context.Context, v In) dfr.Deferrable[Out] {
		out, err := onTryExecute(ctx, v)
		if err != nil {
			return dfr.Failed[Out](err)
		}
		return dfr.Const(out)
	})
}

// Tee runs a side effect on success and passes the outcome through on a
// fresh compound. The effect is never invoked on failure.
func Tee[T any](ctx context.Context,
	source dfr.Deferrable[T],
	onSuccess func(ctx context.Context, v T)) dfr.Deferrable[T] {

	return Bind(ctx, source, func(ctx context.Context, v T) dfr.Deferrable[T] {
		onSuccess(ctx, v)
		return dfr.Const(v)
	})
}

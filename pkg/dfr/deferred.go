package dfr

import (
	"time"

	"github.com/google/uuid"
)

type state int

const (
	pending state = iota
	succeeded
	failed
)

// Deferred represents the eventual outcome of one asynchronous operation.
// It starts pending, is settled exactly once by its producer via Resolve or
// Reject, and delivers the outcome to subscribed handlers.
//
// A Deferred is meant to live on a single reactor goroutine; it is not safe
// for concurrent use.
type Deferred[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	st        state
	value     T
	err       error
	onSuccess []func(T)
	onFailure []func(error)
}

// New creates a pending Deferred.
func New[T any]() *Deferred[T] {
	return &Deferred[T]{
		st:        pending,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Const creates a Deferred already settled with value v.
func Const[T any](v T) *Deferred[T] {
	return &Deferred[T]{
		st:        succeeded,
		value:     v,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failed creates a Deferred already settled with err.
func Failed[T any](err error) *Deferred[T] {
	return &Deferred[T]{
		st:        failed,
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Resolve settles the Deferred with v and fires the registered success
// handlers in subscription order. It panics with ErrAlreadySettled if the
// Deferred is not pending.
func (d *Deferred[T]) Resolve(v T) {
	if d.st != pending {
		panic(ErrAlreadySettled)
	}
	d.st = succeeded
	d.value = v

	handlers := d.onSuccess
	d.onSuccess = nil
	d.onFailure = nil

	for _, h := range handlers {
		h(v)
	}
}

// Reject settles the Deferred with err and fires the registered failure
// handlers in subscription order. It panics with ErrAlreadySettled if the
// Deferred is not pending.
func (d *Deferred[T]) Reject(err error) {
	if d.st != pending {
		panic(ErrAlreadySettled)
	}
	d.st = failed
	d.err = err

	handlers := d.onFailure
	d.onSuccess = nil
	d.onFailure = nil

	for _, h := range handlers {
		h(err)
	}
}

// OnSuccess registers h to be called with the settled value. If the Deferred
// already succeeded, h fires immediately within this call. Subscriptions are
// append-only; there is no unsubscribe.
func (d *Deferred[T]) OnSuccess(h func(T)) {
	switch d.st {
	case succeeded:
		h(d.value)
	case pending:
		d.onSuccess = append(d.onSuccess, h)
	}
}

// OnFailure registers h to be called with the settled error. If the Deferred
// already failed, h fires immediately within this call.
func (d *Deferred[T]) OnFailure(h func(error)) {
	switch d.st {
	case failed:
		h(d.err)
	case pending:
		d.onFailure = append(d.onFailure, h)
	}
}

func (d *Deferred[T]) IsPending() bool {
	return d.st == pending
}

func (d *Deferred[T]) IsSucceeded() bool {
	return d.st == succeeded
}

func (d *Deferred[T]) IsFailed() bool {
	return d.st == failed
}

// Value returns the success value; valid only after the Deferred succeeded.
func (d *Deferred[T]) Value() T {
	return d.value
}

// Err returns the failure error, or nil while pending or succeeded.
func (d *Deferred[T]) Err() error {
	return d.err
}

func (d *Deferred[T]) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Deferred[T]) Id() uuid.UUID {
	return d.id
}

package dfr

import (
	"time"

	"github.com/google/uuid"
)

// Deferrable is the subscription side of a deferred result. Combinators
// accept and return this interface, and every continuation must declare it
// as its result type, so "the next step yields a deferred" is checked at
// compile time rather than assumed at run time.
type Deferrable[T any] interface {
	// OnSuccess registers a handler for the eventual success value.
	// Fires immediately if the result already succeeded.
	OnSuccess(h func(T))
	// OnFailure registers a handler for the eventual error.
	// Fires immediately if the result already failed.
	OnFailure(h func(error))
}

// Inspectable extends Deferrable with state probes and metadata.
type Inspectable[T any] interface {
	Deferrable[T]
	// IsPending reports whether the result has not settled yet.
	IsPending() bool
	// IsSucceeded reports whether the result settled with a value.
	IsSucceeded() bool
	// IsFailed reports whether the result settled with an error.
	IsFailed() bool
	// CreatedAt time of creation (UTC)
	CreatedAt() time.Time
	// Id identifies this result instance.
	Id() uuid.UUID
}

// Completable extends Inspectable with the producer-only settlement
// operations. Only the producer that created a deferred result may hold it
// as a Completable; consumers see Deferrable.
type Completable[T any] interface {
	Inspectable[T]
	// Resolve settles with a value. At most once, exclusive with Reject.
	Resolve(v T)
	// Reject settles with an error. At most once, exclusive with Resolve.
	Reject(err error)
}

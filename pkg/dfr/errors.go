package dfr

import (
	"errors"
	"fmt"
)

// ErrAlreadySettled is the panic value used when Resolve or Reject is called
// on a deferred result that has already settled.
var ErrAlreadySettled = errors.New("dfr: deferred result already settled")

// ErrNoDeferred reports a continuation that returned no deferred result to
// subscribe to.
var ErrNoDeferred = errors.New("dfr: continuation returned no deferred result")

// PanicError wraps a non-error value recovered from a panicking continuation
// or error-mapping function, so it can travel the failure channel like any
// other error.
type PanicError struct {
	V any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("dfr: recovered panic: %v", e.V)
}

// AsError converts a recovered panic value into an error. Error values pass
// through unchanged; everything else is wrapped in a PanicError.
func AsError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{V: v}
}

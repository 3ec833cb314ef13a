// Package solo contains the combinators that operate on a single deferred
// result. Bind is the core; everything else is a thin specialization of it.
//
// Highlights:
// - Succeed/Fail: construct already-settled deferred results
// - Bind: sequence a deferred result with a continuation into one compound
// - Transform: map the eventual success value (In -> Out)
// - TransformError: map the eventual error, passing success through
// - Try: bind a function in (Out, error) shape
// - Tee: side effect on success without changing the outcome
//
// All combinators return the subscription side of a freshly created compound
// deferred result; the compound is settled only by the combinator itself,
// exactly once, whichever stage fails.
package solo

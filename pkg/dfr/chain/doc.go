// Package chain composes whole pipelines out of the solo combinators.
//
// Run folds Bind over n same-typed actions, seeded with an already-succeeded
// zero value: the pipeline succeeds with the last action's value or fails
// with the first error, skipping every later action. All joins n independent
// deferred results into one carrying the values in order.
//
// The fluent Chain[T] type reads left to right instead of inside out, so
// deep pipelines avoid nested continuations and accidental variable capture.
//
// Key operations:
// - Run: left-fold of Bind over a list of actions
// - All: join n deferred results into a deferred slice
// - Start/FromValue: begin a chain from a deferred result or value
// - Then/ThenTry/Map: continue with a new stage (type may change)
// - MapError: rewrite the eventual error
// - Ensure: run side effects on success without changing the result
// - Finally: subscribe the single end-of-pipeline success/failure handlers
package chain

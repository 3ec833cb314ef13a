// Package core contains reactor plumbing: the cooperative task loop that
// drives callback execution, producer helpers that settle deferred results
// from posted tasks, channel bridging for code outside the loop, and drain
// configuration via context. It defines no combinators; packages solo and
// chain build pipelines, core runs them.
package core

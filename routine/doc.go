// Package routine provides panic-safe goroutine execution and recovery.
//
// RunSafe/GoSafe run a function with a deferred recover so a panic
// never crashes the calling goroutine (or, for GoSafe, any goroutine at
// all). RunWithTimeout bounds how long the caller waits for a function
// without cancelling it. Recovered/RecoveredError turn a recovered
// panic value into a stack-carrying error, for callers that need to
// report it rather than just swallow it.
package routine

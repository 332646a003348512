// Package retry provides a generic retry helper with pluggable backoff
// strategies.
//
// This repository only ever reaches for it from test files — see
// future.TestWaitForAcrossGoroutines, which polls Future.WaitFor with
// Do instead of sleeping a fixed duration — never from the core
// future/executor packages themselves, since a polling loop is exactly
// the kind of owned timer the core is scoped to not have.
//
// Basic usage:
//
//	result, err := retry.Do(ctx, func() (string, error) {
//	    return apiCall()
//	})
//
// Options:
//
//	result, err := retry.Do(ctx, f,
//	    retry.WithMaxAttempts(5),
//	    retry.WithRetryStrategy(retry.ExponentialBackoff(100*time.Millisecond, time.Second)),
//	    retry.WithShouldRetryFunc(func(err error) bool {
//	        return isTransientError(err)
//	    }),
//	)
package retry

// Package debounce collapses bursts of calls into a single trailing call.
//
// A Debouncer owns one timer. Every Call cancels whatever fire is pending and
// schedules a new one after the quiet interval, carrying the arguments of that
// call; earlier arguments in the burst are dropped, not queued. Once a fire has
// run, the next Call starts an independent cycle.
//
// Concurrency: all methods are safe for concurrent use. Cancelling and
// rescheduling happen under one lock, so at most one fire is pending per
// Debouncer. The wrapped function runs on a timer goroutine (or on the
// caller's goroutine for Flush) and may overlap a slow previous invocation.
package debounce

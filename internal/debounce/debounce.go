package debounce

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Debouncer delays fn until wait has passed without another Call.
type Debouncer[T any] struct {
	wait time.Duration
	fn   func(T)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending bool
	arg     T

	calls atomic.Int64
	fired atomic.Int64
}

// New returns a Debouncer that runs fn with the last argument of each burst.
// A negative wait is treated as zero.
func New[T any](wait time.Duration, fn func(T)) *Debouncer[T] {
	if wait < 0 {
		wait = 0
	}
	return &Debouncer[T]{wait: wait, fn: fn}
}

// Func wraps a zero-argument fn and returns the debounced trigger.
func Func(wait time.Duration, fn func()) func() {
	d := New(wait, func(struct{}) { fn() })
	return func() { d.Call(struct{}{}) }
}

// Call cancels the pending fire, if any, and schedules fn(arg) after the
// quiet interval.
func (d *Debouncer[T]) Call(arg T) {
	d.calls.Inc()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.arg = arg
	d.pending = true
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Func returns Call as a plain function value.
func (d *Debouncer[T]) Func() func(T) { return d.Call }

// fire runs fn if gen is still the latest schedule. A timer that expired
// while a newer Call held the lock finds a stale gen and does nothing.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	arg := d.take()
	d.mu.Unlock()

	d.fired.Inc()
	d.fn(arg)
}

// Stop drops the pending fire without running it.
// It reports whether a fire was pending.
func (d *Debouncer[T]) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.pending {
		return false
	}
	d.timer.Stop()
	d.gen++
	d.take()
	return true
}

// Flush runs the pending fire immediately on the caller's goroutine.
// It reports whether there was anything to run.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	d.timer.Stop()
	d.gen++
	arg := d.take()
	d.mu.Unlock()

	d.fired.Inc()
	d.fn(arg)
	return true
}

// take clears the pending state and returns its argument. d.mu must be held.
func (d *Debouncer[T]) take() T {
	arg := d.arg
	var zero T
	d.arg = zero
	d.pending = false
	d.timer = nil
	return arg
}

// Pending reports whether a fire is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Calls returns how many times Call has been invoked.
func (d *Debouncer[T]) Calls() int64 { return d.calls.Load() }

// Fired returns how many times fn has been run.
func (d *Debouncer[T]) Fired() int64 { return d.fired.Load() }

// Wait returns the quiet interval.
func (d *Debouncer[T]) Wait() time.Duration { return d.wait }

// Package debounce collapses bursts of calls into a single trailing
// call. Each Debounced is an independent instance with its own timer,
// so hover tracking and live validation never interfere.
package debounce

import (
	"sync"
	"time"
)

// Debounced wraps a single-argument action. Call schedules the action
// for window after the most recent call; an earlier pending call is
// superseded, so only the last call's argument is ever delivered.
type Debounced[T any] struct {
	mu      sync.Mutex
	window  time.Duration
	fn      func(T)
	timer   *time.Timer
	pending T
	// gen marks the latest Call; a timer scheduled by a superseded
	// call carries an older gen and delivers nothing, even when
	// Stop caught it after it had already fired.
	gen     uint64
	armed   bool
	stopped bool
}

// New wraps fn with a quiet window. A zero or negative window still
// defers delivery to a timer tick, keeping call ordering consistent.
func New[T any](fn func(T), window time.Duration) *Debounced[T] {
	return &Debounced[T]{window: window, fn: fn}
}

// Call supersedes any pending delivery and schedules fn(v) for one
// quiet window from now.
func (d *Debounced[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = v
	d.armed = true
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

func (d *Debounced[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || !d.armed || d.stopped {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.armed = false
	var zero T
	d.pending = zero
	fn := d.fn
	d.mu.Unlock()
	fn(v)
}

// Flush delivers a pending call immediately, if there is one. Used at
// teardown so a trailing call is not silently dropped.
func (d *Debounced[T]) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.mu.Unlock()
	d.fire(gen)
}

// Stop cancels any pending delivery and rejects further calls.
func (d *Debounced[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
	}
}

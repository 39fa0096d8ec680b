package search

import (
	"sync"
	"time"
)

// Debouncer delays a function until a quiet period has followed the last
// call to Trigger. Each Trigger cancels the previously scheduled function.
// There is no maximum wait: a steady stream of triggers defers execution
// indefinitely.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64 // incremented on every Trigger and Stop
}

// NewDebouncer creates a Debouncer with the given quiet delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet delay, cancelling any
// function scheduled by an earlier Trigger.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A timer that fired while a newer Trigger or Stop held the lock
		// must not run.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		fn()
	})
}

// Stop cancels the scheduled function, if any, without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Pending reports whether a function is scheduled and has not yet run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

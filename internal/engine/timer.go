package engine

import (
	"sync"
	"time"
)

// Timer is a single-shot delayed callback that can be canceled before it
// fires. Hosts use it for the badge-ceremony pause and the per-question
// countdown, and must Stop it on reset or teardown so a stale callback
// never lands on a session that has already moved on.
type Timer struct {
	mu       sync.Mutex
	timer    *time.Timer
	fired    bool
	canceled bool
}

// After schedules fn to run once after d.
func After(d time.Duration, fn func()) *Timer {
	t := &Timer{}
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.canceled {
			t.mu.Unlock()
			return
		}
		t.fired = true
		t.mu.Unlock()
		fn()
	})
	return t
}

// Stop cancels the callback. It reports whether the cancellation won the
// race; false means the callback already ran or was already canceled.
func (t *Timer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fired || t.canceled {
		return false
	}
	t.canceled = true
	t.timer.Stop()
	return true
}

// Fired reports whether the callback has run.
func (t *Timer) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

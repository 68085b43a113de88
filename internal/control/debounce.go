package control

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of requests into a single deferred fire.
// At most one callback is pending at a time; scheduling again replaces
// the pending fire, and Cancel discards it.
//
// Each Schedule hands the callback a token. A fire is only authoritative
// while its token is still Current: a callback that ran after being
// superseded (the timer won the race with Stop) sees a stale token and
// must drop its work.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// Schedule arms the debouncer to run fn after delay, replacing any
// pending fire. Returns the token fn will receive.
func (d *Debouncer) Schedule(delay time.Duration, fn func(token uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	token := d.seq
	d.timer = time.AfterFunc(delay, func() {
		fn(token)
	})
	return token
}

// Cancel stops any pending fire and invalidates outstanding tokens.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}

// Current reports whether token still identifies the live pending fire.
func (d *Debouncer) Current(token uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return token == d.seq
}

package search

import (
	"strings"
	"sync"
	"time"
)

// DefaultQuietPeriod is how long input must stay still before a lookup fires.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer coalesces keystroke-rate input into lookups.
//
// At most one evaluation is ever pending. Every Send resets the quiet period;
// an empty (or blank) input cancels the pending evaluation and clears
// synchronously instead.
type Debouncer struct {
	delay   time.Duration
	onQuery func(query string)
	onClear func()

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration, onQuery func(string), onClear func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	return &Debouncer{delay: delay, onQuery: onQuery, onClear: onClear}
}

// Send offers a new input state.
func (d *Debouncer) Send(raw string) {
	query := strings.TrimSpace(raw)

	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if query == "" {
		d.mu.Unlock()
		d.onClear()
		return
	}
	d.timer = time.AfterFunc(d.delay, func() { d.onQuery(query) })
	d.mu.Unlock()
}

// Stop cancels the pending evaluation, if any. Safe to call repeatedly.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

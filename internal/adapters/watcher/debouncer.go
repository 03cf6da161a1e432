package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid file system events into a single
// notification. Editors commonly emit several writes for one save;
// each sync cycle should run once per burst.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
	fn     func()
}

// NewDebouncer creates a Debouncer that invokes fn once the given
// quiet window has elapsed since the last Trigger call.
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		window: window,
		fn:     fn,
	}
}

// Trigger records an event and (re)starts the quiet window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fn)
}

// Stop cancels any pending notification.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// DefaultDebounceWindow is the default quiet window for feed list edits.
const DefaultDebounceWindow = 250 * time.Millisecond

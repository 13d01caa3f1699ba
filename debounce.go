package panelwatch

import (
	"sync/atomic"
	"time"

	"github.com/panelwatch/panelwatch/internal/tick"
)

// Debouncer converts raw edge signals from an input source into clean toggle
// decisions.
//
// RawEdge may be called from any goroutine at any rate; it only sets a
// single atomic flag. Poll consumes that flag from the tick loop and applies
// a minimum-interval policy: edges arriving within the debounce window of
// the last accepted toggle are dropped as bounce noise. The flag is a
// one-slot mailbox, so edges coalesce rather than queue.
type Debouncer struct {
	pending atomic.Bool
	window  time.Duration
	last    tick.Timestamp
}

// NewDebouncer creates a Debouncer with the given minimum interval between
// accepted toggles.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// RawEdge records that the input signal asserted. It performs no work beyond
// setting a flag, making it safe to call from an interrupt-style context.
func (d *Debouncer) RawEdge() {
	d.pending.Store(true)
}

// Poll consumes a pending edge, if any, and reports whether it survived
// debouncing. At most one toggle is emitted per surviving edge. Must be
// called from the tick loop only.
func (d *Debouncer) Poll(now tick.Timestamp) bool {
	if !d.pending.Swap(false) {
		return false
	}
	if tick.Elapsed(d.last, now) < tick.Milliseconds(d.window) {
		// bounce noise: discard without mutating state
		return false
	}
	d.last = now
	return true
}

// LastToggle returns the timestamp of the most recently accepted toggle.
func (d *Debouncer) LastToggle() tick.Timestamp {
	return d.last
}

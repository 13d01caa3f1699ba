// Package tick provides the agent's millisecond timebase.
//
// Timestamps are 32-bit millisecond counters that wrap at 2^32. All elapsed
// time math goes through [Elapsed], which relies on unsigned wraparound
// subtraction so intervals remain correct across the overflow boundary.
// [Clock] adapts a clockwork.Clock to this timebase, so production code runs
// on the wall clock and tests run on a fake.
package tick

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Timestamp is a millisecond counter since an arbitrary epoch. It wraps to
// zero after 2^32-1 (roughly every 49.7 days).
type Timestamp uint32

// Elapsed returns the milliseconds between start and now.
//
// The subtraction is performed in uint32 arithmetic, so the result is correct
// modulo 2^32 even when the counter has wrapped between the two readings.
// This is the only sanctioned way to compare timestamps.
func Elapsed(start, now Timestamp) Timestamp {
	return now - start
}

// Passed reports whether at least interval has elapsed between start and now.
func Passed(start, now Timestamp, interval time.Duration) bool {
	return Elapsed(start, now) >= Milliseconds(interval)
}

// Milliseconds converts a duration to the Timestamp timebase.
// Durations longer than the 2^32 ms modulus truncate; interval constants in
// this system are all well below that bound.
func Milliseconds(d time.Duration) Timestamp {
	return Timestamp(d.Milliseconds())
}

// Clock supplies wraparound [Timestamp] readings from an underlying
// clockwork.Clock.
type Clock struct {
	inner clockwork.Clock
	epoch time.Time
}

// NewClock creates a Clock whose epoch is the underlying clock's current
// time. Pass clockwork.NewRealClock() in production and
// clockwork.NewFakeClock() in tests.
func NewClock(inner clockwork.Clock) *Clock {
	return &Clock{inner: inner, epoch: inner.Now()}
}

// Now returns the milliseconds since the clock's epoch, truncated to 32 bits.
// Truncation is what produces the defined wraparound.
func (c *Clock) Now() Timestamp {
	return Timestamp(c.inner.Now().Sub(c.epoch).Milliseconds())
}

// Sleep pauses the calling goroutine for d on the underlying clock.
func (c *Clock) Sleep(d time.Duration) {
	c.inner.Sleep(d)
}

package panelwatch

import (
	"context"
	"fmt"
	"time"

	"github.com/panelwatch/panelwatch/internal/tick"
)

// LinkEvent is a connectivity transition observed during a tick.
type LinkEvent int

const (
	// LinkNone means no transition occurred.
	LinkNone LinkEvent = iota

	// LinkLost means the link went from connected to disconnected.
	LinkLost

	// LinkRegained means a reconnect attempt succeeded.
	LinkRegained
)

// Connectivity tracks the wireless link through two states, connected and
// disconnected.
//
// While connected it queries the link status each tick and reports a
// [LinkLost] transition when the link drops. While disconnected it attempts
// a bounded reconnect at a fixed cadence, with no backoff, reporting
// [LinkRegained] on success.
type Connectivity struct {
	link              Link
	reconnectInterval time.Duration
	linkTimeout       time.Duration

	connected   bool
	lastAttempt tick.Timestamp
}

// NewConnectivity creates a Connectivity monitor in the disconnected state.
func NewConnectivity(link Link, reconnectInterval, linkTimeout time.Duration) *Connectivity {
	return &Connectivity{
		link:              link,
		reconnectInterval: reconnectInterval,
		linkTimeout:       linkTimeout,
	}
}

// Connect performs the startup association attempt, blocking at most the
// link timeout. Failure leaves the monitor disconnected and is not fatal;
// the normal reconnect cadence takes over from lastAttempt = now.
func (c *Connectivity) Connect(ctx context.Context, now tick.Timestamp) error {
	c.lastAttempt = now
	if err := c.link.Connect(ctx, c.linkTimeout); err != nil {
		c.connected = false
		return fmt.Errorf("link connect: %w", err)
	}
	c.connected = true
	return nil
}

// Connected reports the last known link state.
func (c *Connectivity) Connected() bool {
	return c.connected
}

// Tick advances the machine one step.
//
// The returned event is [LinkLost] or [LinkRegained] on a transition and
// [LinkNone] otherwise. A failed reconnect attempt produces no event but
// returns the error so the caller can log it; the monitor stays
// disconnected until the next cadence point.
func (c *Connectivity) Tick(ctx context.Context, now tick.Timestamp) (LinkEvent, error) {
	if c.connected {
		if c.link.Status() {
			return LinkNone, nil
		}
		c.connected = false
		return LinkLost, nil
	}

	if !tick.Passed(c.lastAttempt, now, c.reconnectInterval) {
		return LinkNone, nil
	}
	c.lastAttempt = now
	if err := c.link.Reconnect(ctx, c.linkTimeout); err != nil {
		return LinkNone, fmt.Errorf("link reconnect: %w", err)
	}
	c.connected = true
	return LinkRegained, nil
}

package panelwatch

import (
	"context"
	"time"
)

// Effect selects how the display renders a message.
type Effect int

const (
	// EffectScroll scrolls the text across the panel and completes when a
	// full pass has been shown.
	EffectScroll Effect = iota

	// EffectHold shows the text statically and completes after the hold
	// duration passed to ShowText.
	EffectHold

	// EffectPrint shows the text statically and completes immediately.
	EffectPrint
)

// Link is the wireless link capability the agent monitors and drives.
//
// Network credentials belong to the implementation; the agent only decides
// when to connect and how long to wait. Connect and Reconnect must return
// within the given timeout; that bound is the agent's only suspension point
// on the connectivity path.
type Link interface {
	// Connect performs the initial association, blocking at most timeout.
	Connect(ctx context.Context, timeout time.Duration) error

	// Status reports whether the link is currently up. Called once per
	// tick; it must not block.
	Status() bool

	// Reconnect re-associates after a loss, blocking at most timeout.
	Reconnect(ctx context.Context, timeout time.Duration) error
}

// HealthProbe issues a single GET against the monitored URL and returns the
// HTTP status code, or an error for any transport-level failure. The probe
// must return within the given timeout.
type HealthProbe interface {
	Probe(ctx context.Context, url string, timeout time.Duration) (int, error)
}

// Display is the text panel capability.
//
// ShowText replaces whatever is currently showing. AnimateTick advances the
// animation by at most one frame and reports whether the current message's
// cycle has completed; the agent calls it once per tick and clears the panel
// when a transient message finishes.
type Display interface {
	ShowText(text string, effect Effect, hold time.Duration)
	Clear()
	AnimateTick() bool
}

// Sounder is the audible alert capability. Both calls are idempotent.
type Sounder interface {
	ToneOn(freqHz int)
	ToneOff()
}

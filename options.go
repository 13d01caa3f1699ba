package panelwatch

import (
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"
)

// agentConfig holds mutable state during Agent construction.
type agentConfig struct {
	url               string
	checkInterval     time.Duration
	reconnectInterval time.Duration
	debounceWindow    time.Duration
	linkTimeout       time.Duration
	probeTimeout      time.Duration
	toneFreqHz        int
	clock             clockwork.Clock
	logger            *slog.Logger
}

// Option is a function that configures an [Agent] during construction.
//
// Option implements the functional options pattern. Options return an error
// if validation fails.
type Option func(*agentConfig) error

// WithURL sets the monitored URL. Required; the URL must parse and carry an
// http or https scheme.
func WithURL(rawURL string) Option {
	return func(cfg *agentConfig) error {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			return errors.New("invalid URL: " + err.Error())
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return errors.New("URL must have an http:// or https:// scheme")
		}
		cfg.url = rawURL
		return nil
	}
}

// WithCheckInterval sets how often the site is probed while the link is up.
// Defaults to 30 seconds. Returns an error if the duration is not positive.
func WithCheckInterval(d time.Duration) Option {
	return func(cfg *agentConfig) error {
		if d <= 0 {
			return errors.New("check interval must be positive")
		}
		cfg.checkInterval = d
		return nil
	}
}

// WithReconnectInterval sets the cadence of reconnect attempts while the
// link is down. Defaults to 60 seconds. Returns an error if the duration is
// not positive.
func WithReconnectInterval(d time.Duration) Option {
	return func(cfg *agentConfig) error {
		if d <= 0 {
			return errors.New("reconnect interval must be positive")
		}
		cfg.reconnectInterval = d
		return nil
	}
}

// WithDebounceWindow sets the minimum interval between accepted input
// toggles. Defaults to 200 milliseconds. Returns an error if the duration
// is not positive.
func WithDebounceWindow(d time.Duration) Option {
	return func(cfg *agentConfig) error {
		if d <= 0 {
			return errors.New("debounce window must be positive")
		}
		cfg.debounceWindow = d
		return nil
	}
}

// WithLinkTimeout bounds how long a connect or reconnect attempt may block.
// Defaults to 15 seconds. Returns an error if the duration is not positive.
func WithLinkTimeout(d time.Duration) Option {
	return func(cfg *agentConfig) error {
		if d <= 0 {
			return errors.New("link timeout must be positive")
		}
		cfg.linkTimeout = d
		return nil
	}
}

// WithProbeTimeout bounds how long a health probe may block.
// Defaults to 5 seconds. Returns an error if the duration is not positive.
func WithProbeTimeout(d time.Duration) Option {
	return func(cfg *agentConfig) error {
		if d <= 0 {
			return errors.New("probe timeout must be positive")
		}
		cfg.probeTimeout = d
		return nil
	}
}

// WithToneFrequency sets the alert tone frequency in hertz.
// Defaults to 2000. Returns an error if the value is not positive.
func WithToneFrequency(freqHz int) Option {
	return func(cfg *agentConfig) error {
		if freqHz <= 0 {
			return errors.New("tone frequency must be positive")
		}
		cfg.toneFreqHz = freqHz
		return nil
	}
}

// WithClock sets the clock the agent times itself against. Defaults to the
// real clock; tests substitute clockwork.NewFakeClock().
func WithClock(clock clockwork.Clock) Option {
	return func(cfg *agentConfig) error {
		if clock == nil {
			return errors.New("clock cannot be nil")
		}
		cfg.clock = clock
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the agent. If not specified,
// [slog.Default] is used.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *agentConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

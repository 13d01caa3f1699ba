package panelwatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/panelwatch/panelwatch/internal/tick"
)

const (
	defaultCheckInterval     = 30 * time.Second
	defaultReconnectInterval = 60 * time.Second
	defaultDebounceWindow    = 200 * time.Millisecond
	defaultLinkTimeout       = 15 * time.Second
	defaultProbeTimeout      = 5 * time.Second
	defaultToneFrequency     = 2000

	// how long the startup link-failure beep holds before the loop starts
	startupAlertHold = 3 * time.Second

	// fixed yield between ticks; keeps animation smooth without spinning
	tickYield = 5 * time.Millisecond
)

// Panel messages, matching the deployed device.
const (
	msgConnecting = "Wifi..."
	msgLinkOK     = "Wifi ok"
	msgLinkErr    = "Wifi error"
	msgChecking   = "PING"
	msgUp         = "UP"
	msgDown       = "Error!!!"
	msgMuted      = "Mute"
	msgUnmuted    = "Sound"
)

// Agent is the monitoring loop: a single-threaded cooperative scheduler
// that ties the display, input debouncing, connectivity tracking, and the
// periodic health check together.
//
// Create an Agent with [New], then either call [Agent.Run] to let it drive
// itself on its clock, or call [Agent.Startup] once followed by
// [Agent.Tick] per step to drive it externally. All state lives in the
// agent and mutates only inside Startup and Tick, so the three event paths
// (input, connectivity, health check) are strictly serialized and never
// interleave.
type Agent struct {
	url           string
	checkInterval time.Duration
	probeTimeout  time.Duration

	probe   HealthProbe
	display Display
	logger  *slog.Logger
	clock   *tick.Clock

	debouncer    *Debouncer
	connectivity *Connectivity
	alerts       *AlertController

	// loop-owned state, mutated only inside Startup and Tick
	siteUp      bool
	displayBusy bool
	lastCheck   tick.Timestamp
}

// New creates an [Agent] from the four hardware capabilities and options.
//
// [WithURL] is required. Interval defaults: check 30s, reconnect 60s,
// debounce 200ms, link timeout 15s, probe timeout 5s, tone 2000Hz.
//
// Returns an error if any capability is nil, the URL is missing, or an
// option is invalid.
func New(link Link, probe HealthProbe, display Display, sounder Sounder, opts ...Option) (*Agent, error) {
	if link == nil {
		return nil, errors.New("link capability is required")
	}
	if probe == nil {
		return nil, errors.New("probe capability is required")
	}
	if display == nil {
		return nil, errors.New("display capability is required")
	}
	if sounder == nil {
		return nil, errors.New("sounder capability is required")
	}

	cfg := &agentConfig{
		checkInterval:     defaultCheckInterval,
		reconnectInterval: defaultReconnectInterval,
		debounceWindow:    defaultDebounceWindow,
		linkTimeout:       defaultLinkTimeout,
		probeTimeout:      defaultProbeTimeout,
		toneFreqHz:        defaultToneFrequency,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.url == "" {
		return nil, errors.New("a monitored URL is required")
	}
	if cfg.clock == nil {
		cfg.clock = clockwork.NewRealClock()
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Agent{
		url:           cfg.url,
		checkInterval: cfg.checkInterval,
		probeTimeout:  cfg.probeTimeout,
		probe:         probe,
		display:       display,
		logger:        logger,
		clock:         tick.NewClock(cfg.clock),
		debouncer:     NewDebouncer(cfg.debounceWindow),
		connectivity:  NewConnectivity(link, cfg.reconnectInterval, cfg.linkTimeout),
		alerts:        NewAlertController(sounder, cfg.toneFreqHz),
		siteUp:        true, // optimistic until the first probe
	}, nil
}

// InputEdge signals a raw edge from the input hardware. Safe to call from
// any goroutine; the next tick consumes it through the debouncer.
func (a *Agent) InputEdge() {
	a.debouncer.RawEdge()
}

// Muted reports the current mute flag.
func (a *Agent) Muted() bool {
	return a.alerts.Muted()
}

// SiteUp reports the last known health-check outcome.
func (a *Agent) SiteUp() bool {
	return a.siteUp
}

// LinkConnected reports the last known connectivity state.
func (a *Agent) LinkConnected() bool {
	return a.connectivity.Connected()
}

// Startup performs the initial link association, showing progress on the
// panel. A connect failure is returned but is not fatal: the agent stays
// disconnected, the failure is displayed, and the reconnect cadence takes
// over once the loop runs.
func (a *Agent) Startup(ctx context.Context) error {
	a.showTransient(msgConnecting, EffectScroll, 0)

	if err := a.connectivity.Connect(ctx, a.clock.Now()); err != nil {
		a.showTransient(msgLinkErr, EffectScroll, 0)
		a.logger.Warn("initial link connect failed", "error", err)
		return err
	}

	a.showTransient(msgLinkOK, EffectScroll, 0)
	a.logger.Info("link connected")
	return nil
}

// Run executes the agent until the context is cancelled.
//
// It performs [Agent.Startup], sounding a bounded alert if the initial
// connect fails, then ticks with a small fixed yield. On shutdown the
// display is cleared and the tone silenced. Run always returns nil on a
// clean context cancellation.
func (a *Agent) Run(ctx context.Context) error {
	if err := a.Startup(ctx); err != nil {
		a.alerts.LinkLost()
		a.clock.Sleep(startupAlertHold)
		a.alerts.Silence()
	}

	for {
		select {
		case <-ctx.Done():
			a.display.Clear()
			a.alerts.Silence()
			a.logger.Info("agent stopped")
			return nil
		default:
		}

		a.safeTick(ctx)
		a.clock.Sleep(tickYield)
	}
}

// safeTick runs one tick with panic recovery, so a misbehaving capability
// driver cannot crash the loop. The full stack trace is logged with a
// correlation ID.
func (a *Agent) safeTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			a.logger.Error("capability panic in tick",
				"correlation_id", correlationID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	a.Tick(ctx, a.clock.Now())
}

// Tick runs one step of the loop at the given timestamp:
//
//  1. Advance the display animation; retire a finished transient message.
//  2. Consume a debounced input toggle, flipping mute.
//  3. Advance connectivity; react to lost/regained transitions.
//  4. If connected and the check interval elapsed, probe the site,
//     classify, and update alert and display.
//
// The probe and a reconnect attempt are the only blocking calls, each
// bounded by its configured timeout.
func (a *Agent) Tick(ctx context.Context, now tick.Timestamp) {
	if a.display.AnimateTick() && a.displayBusy {
		a.display.Clear()
		a.displayBusy = false
	}

	if a.debouncer.Poll(now) {
		muted := !a.alerts.Muted()
		a.alerts.SetMuted(muted)
		msg := msgUnmuted
		if muted {
			msg = msgMuted
		}
		a.showTransient(msg, EffectScroll, 0)
		a.logger.Info("mute toggled", "muted", muted)
	}

	event, err := a.connectivity.Tick(ctx, now)
	switch {
	case event == LinkLost:
		a.alerts.LinkLost()
		a.showTransient(msgLinkErr, EffectScroll, 0)
		a.logger.Warn("link lost")
	case event == LinkRegained:
		a.alerts.LinkRegained()
		a.showTransient(msgLinkOK, EffectScroll, 0)
		a.logger.Info("link regained")
	case err != nil:
		a.logger.Warn("reconnect attempt failed", "error", err)
	}

	if !a.connectivity.Connected() {
		return
	}
	if !tick.Passed(a.lastCheck, now, a.checkInterval) {
		return
	}
	a.lastCheck = now
	a.checkSite(ctx)
}

// checkSite performs one scheduled health probe and applies the result.
func (a *Agent) checkSite(ctx context.Context) {
	a.showTransient(msgChecking, EffectPrint, 0)

	code, err := a.probe.Probe(ctx, a.url, a.probeTimeout)
	status := Classify(code, err)
	a.siteUp = status == StatusUp
	a.alerts.HealthResult(a.siteUp)

	if a.siteUp {
		a.showTransient(msgUp, EffectScroll, 0)
		a.logger.Info("site check",
			"status", status,
			"code", code,
			"class", Describe(code),
		)
		return
	}

	a.showTransient(msgDown, EffectScroll, 0)
	if err != nil {
		a.logger.Warn("site check failed", "status", status, "error", err)
	} else {
		a.logger.Warn("site check failed",
			"status", status,
			"code", code,
			"class", Describe(code),
		)
	}
}

// showTransient puts a message on the panel and marks the display busy so
// the tick loop clears it once its animation completes.
func (a *Agent) showTransient(text string, effect Effect, hold time.Duration) {
	a.display.ShowText(text, effect, hold)
	a.displayBusy = true
}

// Package panelwatch implements a single-endpoint monitoring agent for small
// display-panel devices: it polls one URL for reachability over a wireless
// link, drives a scrolling text display, and sounds an audible alert when the
// site or the link goes down. A physical control mutes health-check alerts.
//
// The package is SDK-first: hardware is supplied as capability interfaces
// ([Link], [HealthProbe], [Display], [Sounder]) and the [Agent] contains only
// the portable logic: the cooperative tick loop, wraparound-safe interval
// timing, input debouncing, connectivity tracking, and alert policy.
//
// # Quick start
//
//	agent, _ := panelwatch.New(link, probe, display, sounder,
//	    panelwatch.WithURL("https://example.com"),
//	)
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	agent.Run(ctx) // blocks until context is cancelled
//
// # Configuration
//
// Construction uses the functional options pattern:
//
//	agent, err := panelwatch.New(link, probe, display, sounder,
//	    panelwatch.WithURL("https://example.com"),
//	    panelwatch.WithCheckInterval(30 * time.Second),
//	    panelwatch.WithReconnectInterval(time.Minute),
//	    panelwatch.WithClock(clockwork.NewRealClock()),
//	)
//
// # Execution model
//
// The agent is single-threaded: [Agent.Run] executes [Agent.Tick] repeatedly
// with a small fixed yield, and every state mutation happens inside one tick,
// strictly serialized. The only concurrent entry point is [Agent.InputEdge],
// which an input driver may call from any goroutine; it sets a single atomic
// flag that the next tick consumes.
//
// All timing uses a 32-bit millisecond counter with unsigned wraparound
// subtraction, so intervals stay correct when the counter overflows.
//
// # Architecture
//
// Reference drivers for running on a workstation live under internal/ and
// are wired up by cmd/panelwatch:
//
//   - internal/probe: HTTP prober implementing [HealthProbe]
//   - internal/netlink: ICMP-reachability implementation of [Link]
//   - internal/console: terminal [Display] marquee and [Sounder]
//   - internal/tick: the wraparound timebase shared by core and drivers
//
// The internal packages are not part of the public API and may change
// without notice.
package panelwatch

// Package netlink implements the agent's link capability for workstation
// use: instead of driving a wireless radio it measures reachability of a
// nearby host (typically the gateway) with ICMP echo. Association with the
// network itself is the operating system's job.
package netlink

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	ping "github.com/prometheus-community/pro-bing"
)

// statusRefresh is the minimum interval between background reachability
// rounds triggered by Status.
const statusRefresh = time.Second

// statusTimeout bounds a background reachability round.
const statusTimeout = time.Second

// Pinger reports link state from ICMP reachability of a single host.
//
// Connect and Reconnect run a blocking echo round bounded by the caller's
// timeout. Status never blocks: it returns the cached result of the most
// recent round and, when that result is stale, kicks off a bounded refresh
// in the background.
type Pinger struct {
	host   string
	ssid   string
	logger *slog.Logger

	up         atomic.Bool
	refreshing atomic.Bool
	lastRound  atomic.Int64 // unix nanos of the last completed round
}

// New creates a Pinger probing host. The ssid is carried for log context
// only; the OS owns the actual association.
func New(host, ssid string, logger *slog.Logger) *Pinger {
	return &Pinger{host: host, ssid: ssid, logger: logger}
}

// Connect verifies the host is reachable, blocking at most timeout.
func (p *Pinger) Connect(ctx context.Context, timeout time.Duration) error {
	err := p.round(ctx, timeout)
	if err == nil {
		p.logger.Info("link reachable", "host", p.host, "ssid", p.ssid)
	}
	return err
}

// Reconnect re-verifies reachability, blocking at most timeout.
func (p *Pinger) Reconnect(ctx context.Context, timeout time.Duration) error {
	return p.round(ctx, timeout)
}

// Status returns the cached reachability result without blocking. A stale
// cache triggers at most one concurrent background refresh.
func (p *Pinger) Status() bool {
	last := time.Unix(0, p.lastRound.Load())
	if time.Since(last) >= statusRefresh && p.refreshing.CompareAndSwap(false, true) {
		go func() {
			defer p.refreshing.Store(false)
			ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
			defer cancel()
			if err := p.round(ctx, statusTimeout); err != nil {
				p.logger.Debug("background reachability round failed", "host", p.host, "error", err)
			}
		}()
	}
	return p.up.Load()
}

// round performs one echo round against the host and updates the cache.
func (p *Pinger) round(ctx context.Context, timeout time.Duration) error {
	pinger, err := ping.NewPinger(p.host)
	if err != nil {
		p.record(false)
		return fmt.Errorf("pinger for %s: %w", p.host, err)
	}

	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(false)

	if err := pinger.RunWithContext(ctx); err != nil {
		p.record(false)
		return fmt.Errorf("ping %s: %w", p.host, err)
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		p.record(false)
		return fmt.Errorf("no echo reply from %s within %v", p.host, timeout)
	}

	p.record(true)
	return nil
}

func (p *Pinger) record(up bool) {
	p.up.Store(up)
	p.lastRound.Store(time.Now().UnixNano())
}

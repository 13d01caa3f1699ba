package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/panelwatch/panelwatch"
	"github.com/panelwatch/panelwatch/config"
	"github.com/panelwatch/panelwatch/internal/console"
	"github.com/panelwatch/panelwatch/internal/netlink"
	"github.com/panelwatch/panelwatch/internal/probe"
)

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// runCmd starts the monitor with terminal drivers.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the monitor",
	Long: `Start the panelwatch monitor.

The monitor will:
  - Load configuration from the specified YAML file
  - Verify link reachability, then probe the target on the check interval
  - Render panel messages as a terminal marquee and alerts as terminal output

Press Enter to toggle mute. The monitor runs until interrupted (Ctrl+C)
or it receives SIGTERM.

Example:
  panelwatch run -c config.yaml
  panelwatch run --config /etc/panelwatch/config.yaml`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	for _, warning := range cfg.Warnings() {
		logger.Warn("config sanity check", "warning", warning)
	}

	logger.Info("config loaded",
		"target", cfg.Target.URL,
		"check_interval", cfg.Intervals.Check.Duration().String(),
		"probe_host", cfg.Network.ProbeHost,
	)

	clock := clockwork.NewRealClock()

	// Display construction is the startup-failure path: a bad panel
	// geometry halts before the loop ever starts.
	display, err := console.NewDisplay(clock, os.Stdout, cfg.Display.Width, cfg.Display.Frame.Duration())
	if err != nil {
		return fmt.Errorf("display init: %w", err)
	}
	sounder := console.NewSounder(os.Stdout)
	link := netlink.New(cfg.Network.ProbeHost, cfg.Network.SSID, logger)
	prober := probe.New(cfg.Target.Insecure)
	defer prober.Close()

	agent, err := panelwatch.New(link, prober, display, sounder,
		panelwatch.WithURL(cfg.Target.URL),
		panelwatch.WithCheckInterval(cfg.Intervals.Check.Duration()),
		panelwatch.WithReconnectInterval(cfg.Intervals.Reconnect.Duration()),
		panelwatch.WithDebounceWindow(cfg.Intervals.Debounce.Duration()),
		panelwatch.WithLinkTimeout(cfg.Intervals.LinkTimeout.Duration()),
		panelwatch.WithProbeTimeout(cfg.Target.Timeout.Duration()),
		panelwatch.WithToneFrequency(cfg.Alert.ToneHz),
		panelwatch.WithClock(clock),
		panelwatch.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}

	// set up context with signal handling - cancel on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Terminal stand-in for the mute switch: every Enter press delivers
	// one raw edge to the agent.
	go readMuteToggles(ctx, agent)

	return agent.Run(ctx)
}

// readMuteToggles forwards Enter presses on stdin as raw input edges until
// the context is cancelled.
func readMuteToggles(ctx context.Context, agent *panelwatch.Agent) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		agent.InputEdge()
	}
}

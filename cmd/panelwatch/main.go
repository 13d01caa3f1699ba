// Package main is the entry point for the panelwatch CLI.
//
// panelwatch can be embedded as a library or run as a standalone binary
// with YAML configuration. This CLI provides the standalone approach,
// using terminal drivers in place of the panel hardware.
//
// Usage:
//
//	panelwatch run -c config.yaml      # Start the monitor
//	panelwatch validate -c config.yaml # Validate configuration
//	panelwatch version                 # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "panelwatch",
	Short: "A single-endpoint uptime monitor with a scrolling panel display",
	Long: `panelwatch polls one URL for reachability over the local network link,
shows the result on a scrolling text display, and sounds an alert when
the site or the link goes down. A toggle input mutes site alerts.

Quick start:
  1. Create a config file (panelwatch.yaml)
  2. Run: panelwatch run -c panelwatch.yaml
  3. Press Enter in the terminal to toggle mute

Example config:
  target:
    url: https://example.com
  intervals:
    check: 30s
    reconnect: 60s`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this panelwatch binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("panelwatch %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}

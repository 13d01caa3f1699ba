package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panelwatch/panelwatch/config"
)

// validateCmd validates a config file without starting the monitor.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a panelwatch configuration file without starting the monitor.

This command parses the YAML, expands environment variables, and validates
all fields. Sanity warnings (such as a reconnect interval shorter than the
check interval) are printed but do not fail validation.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  panelwatch validate -c config.yaml
  panelwatch validate --config /etc/panelwatch/config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Target:             %s\n", cfg.Target.URL)
	fmt.Printf("  Check interval:     %s\n", cfg.Intervals.Check.Duration())
	fmt.Printf("  Reconnect interval: %s\n", cfg.Intervals.Reconnect.Duration())
	fmt.Printf("  Debounce window:    %s\n", cfg.Intervals.Debounce.Duration())
	fmt.Printf("  Link timeout:       %s\n", cfg.Intervals.LinkTimeout.Duration())

	for _, warning := range cfg.Warnings() {
		fmt.Printf("  warning: %s\n", warning)
	}

	return nil
}

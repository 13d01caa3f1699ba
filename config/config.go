// Package config provides YAML configuration parsing for panelwatch.
//
// Configuration is loaded once at startup and treated as immutable for the
// process lifetime.
//
// Example configuration:
//
//	network:
//	  ssid: home-iot
//	  credential: ${WIFI_PASS}
//	  probe_host: 192.168.1.1
//
//	target:
//	  url: https://example.com
//	  timeout: 5s
//
//	intervals:
//	  check: 30s
//	  reconnect: 60s
//	  debounce: 200ms
//	  link_timeout: 15s
//
//	alert:
//	  tone_hz: 2000
package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Parse when a field is unset.
const (
	DefaultCheckInterval     = 30 * time.Second
	DefaultReconnectInterval = 60 * time.Second
	DefaultDebounceWindow    = 200 * time.Millisecond
	DefaultLinkTimeout       = 15 * time.Second
	DefaultProbeTimeout      = 5 * time.Second
	DefaultToneFrequency     = 2000
	DefaultDisplayWidth      = 32
	DefaultDisplayFrame      = 40 * time.Millisecond
	DefaultProbeHost         = "1.1.1.1"
)

// Config is the root configuration structure for panelwatch.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Network identifies the wireless network and the host used for link
	// reachability checks.
	Network NetworkConfig `yaml:"network"`

	// Target is the monitored endpoint.
	Target TargetConfig `yaml:"target"`

	// Intervals holds all timing constants of the loop.
	Intervals IntervalsConfig `yaml:"intervals"`

	// Alert configures the audible alert.
	Alert AlertConfig `yaml:"alert"`

	// Display configures the panel geometry and animation speed.
	Display DisplayConfig `yaml:"display"`
}

// NetworkConfig identifies the wireless link.
type NetworkConfig struct {
	// SSID is the network name, for drivers that associate and for logs.
	SSID string `yaml:"ssid"`

	// Credential is the network secret. Supports environment variable
	// substitution: ${VAR} or ${VAR:-default}.
	Credential string `yaml:"credential"`

	// ProbeHost is the host whose ICMP reachability stands in for link
	// state on platforms without a radio driver. Defaults to 1.1.1.1.
	ProbeHost string `yaml:"probe_host"`
}

// TargetConfig is the monitored endpoint.
type TargetConfig struct {
	// URL is the monitored URL. Supports environment variable
	// substitution. Required, http or https.
	URL string `yaml:"url"`

	// Timeout bounds each health probe. Defaults to 5s.
	Timeout Duration `yaml:"timeout"`

	// Insecure disables TLS certificate verification for probes.
	Insecure bool `yaml:"insecure"`
}

// IntervalsConfig holds the loop's timing constants.
type IntervalsConfig struct {
	// Check is the health-check cadence while the link is up. Defaults
	// to 30s.
	Check Duration `yaml:"check"`

	// Reconnect is the reconnect cadence while the link is down.
	// Defaults to 60s.
	Reconnect Duration `yaml:"reconnect"`

	// Debounce is the minimum interval between accepted input toggles.
	// Defaults to 200ms.
	Debounce Duration `yaml:"debounce"`

	// LinkTimeout bounds connect and reconnect attempts. Defaults to 15s.
	LinkTimeout Duration `yaml:"link_timeout"`
}

// AlertConfig configures the audible alert.
type AlertConfig struct {
	// ToneHz is the alert tone frequency. Defaults to 2000.
	ToneHz int `yaml:"tone_hz"`
}

// DisplayConfig configures the panel.
type DisplayConfig struct {
	// Width is the panel width in characters. Defaults to 32.
	Width int `yaml:"width"`

	// Frame is the animation frame interval. Defaults to 40ms.
	Frame Duration `yaml:"frame"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration, applies defaults, expands environment
// variables, and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Intervals.Check == 0 {
		c.Intervals.Check = Duration(DefaultCheckInterval)
	}
	if c.Intervals.Reconnect == 0 {
		c.Intervals.Reconnect = Duration(DefaultReconnectInterval)
	}
	if c.Intervals.Debounce == 0 {
		c.Intervals.Debounce = Duration(DefaultDebounceWindow)
	}
	if c.Intervals.LinkTimeout == 0 {
		c.Intervals.LinkTimeout = Duration(DefaultLinkTimeout)
	}
	if c.Target.Timeout == 0 {
		c.Target.Timeout = Duration(DefaultProbeTimeout)
	}
	if c.Alert.ToneHz == 0 {
		c.Alert.ToneHz = DefaultToneFrequency
	}
	if c.Display.Width == 0 {
		c.Display.Width = DefaultDisplayWidth
	}
	if c.Display.Frame == 0 {
		c.Display.Frame = Duration(DefaultDisplayFrame)
	}
	if c.Network.ProbeHost == "" {
		c.Network.ProbeHost = DefaultProbeHost
	}
}

// expandAndValidate expands environment variables and checks hard
// constraints. Soft constraints are reported by [Config.Warnings] instead.
func (c *Config) expandAndValidate() error {
	expanded, err := expandEnvVars(c.Target.URL)
	if err != nil {
		return fmt.Errorf("target url: %w", err)
	}
	c.Target.URL = expanded

	expanded, err = expandEnvVars(c.Network.Credential)
	if err != nil {
		return fmt.Errorf("network credential: %w", err)
	}
	c.Network.Credential = expanded

	if c.Target.URL == "" {
		return fmt.Errorf("target url is required")
	}
	parsed, err := url.Parse(c.Target.URL)
	if err != nil {
		return fmt.Errorf("target url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("target url must have an http:// or https:// scheme")
	}

	for name, d := range map[string]Duration{
		"intervals.check":        c.Intervals.Check,
		"intervals.reconnect":    c.Intervals.Reconnect,
		"intervals.debounce":     c.Intervals.Debounce,
		"intervals.link_timeout": c.Intervals.LinkTimeout,
		"target.timeout":         c.Target.Timeout,
		"display.frame":          c.Display.Frame,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if c.Alert.ToneHz < 0 {
		return fmt.Errorf("alert.tone_hz must be positive")
	}
	if c.Display.Width < 0 {
		return fmt.Errorf("display.width must be positive")
	}

	return nil
}

// Warnings reports configuration sanity issues that are legal but probably
// unintended. They do not fail validation.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.Intervals.Reconnect.Duration() <= c.Intervals.Check.Duration() {
		warnings = append(warnings,
			fmt.Sprintf("intervals.reconnect (%s) should be longer than intervals.check (%s)",
				c.Intervals.Reconnect.Duration(), c.Intervals.Check.Duration()))
	}
	if c.Target.Timeout.Duration() >= c.Intervals.Check.Duration() {
		warnings = append(warnings,
			fmt.Sprintf("target.timeout (%s) should be shorter than intervals.check (%s)",
				c.Target.Timeout.Duration(), c.Intervals.Check.Duration()))
	}

	return warnings
}

// envVarPattern matches ${VAR} and ${VAR:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with
// environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

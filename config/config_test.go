package config

import (
	"strings"
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`
target:
  url: https://example.com
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := cfg.Intervals.Check.Duration(); got != 30*time.Second {
		t.Errorf("Intervals.Check = %v, want 30s", got)
	}
	if got := cfg.Intervals.Reconnect.Duration(); got != 60*time.Second {
		t.Errorf("Intervals.Reconnect = %v, want 60s", got)
	}
	if got := cfg.Intervals.Debounce.Duration(); got != 200*time.Millisecond {
		t.Errorf("Intervals.Debounce = %v, want 200ms", got)
	}
	if got := cfg.Intervals.LinkTimeout.Duration(); got != 15*time.Second {
		t.Errorf("Intervals.LinkTimeout = %v, want 15s", got)
	}
	if got := cfg.Target.Timeout.Duration(); got != 5*time.Second {
		t.Errorf("Target.Timeout = %v, want 5s", got)
	}
	if cfg.Alert.ToneHz != 2000 {
		t.Errorf("Alert.ToneHz = %d, want 2000", cfg.Alert.ToneHz)
	}
	if cfg.Display.Width != 32 {
		t.Errorf("Display.Width = %d, want 32", cfg.Display.Width)
	}
	if cfg.Network.ProbeHost != "1.1.1.1" {
		t.Errorf("Network.ProbeHost = %q, want 1.1.1.1", cfg.Network.ProbeHost)
	}
}

func TestParse_FullConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
network:
  ssid: home-iot
  credential: hunter2
  probe_host: 192.168.1.1

target:
  url: https://example.com/health
  timeout: 3s
  insecure: true

intervals:
  check: 10s
  reconnect: 45s
  debounce: 150ms
  link_timeout: 8s

alert:
  tone_hz: 1500

display:
  width: 16
  frame: 25ms
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Network.SSID != "home-iot" {
		t.Errorf("Network.SSID = %q, want home-iot", cfg.Network.SSID)
	}
	if cfg.Network.ProbeHost != "192.168.1.1" {
		t.Errorf("Network.ProbeHost = %q, want 192.168.1.1", cfg.Network.ProbeHost)
	}
	if !cfg.Target.Insecure {
		t.Error("Target.Insecure = false, want true")
	}
	if got := cfg.Intervals.Check.Duration(); got != 10*time.Second {
		t.Errorf("Intervals.Check = %v, want 10s", got)
	}
	if got := cfg.Display.Frame.Duration(); got != 25*time.Millisecond {
		t.Errorf("Display.Frame = %v, want 25ms", got)
	}
	if cfg.Alert.ToneHz != 1500 {
		t.Errorf("Alert.ToneHz = %d, want 1500", cfg.Alert.ToneHz)
	}
}

func TestParse_EnvExpansion(t *testing.T) {
	t.Setenv("PW_TEST_PASS", "s3cret")

	cfg, err := Parse([]byte(`
network:
  credential: ${PW_TEST_PASS}
target:
  url: https://${PW_TEST_HOST:-example.com}/health
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Network.Credential != "s3cret" {
		t.Errorf("Network.Credential = %q, want s3cret", cfg.Network.Credential)
	}
	if cfg.Target.URL != "https://example.com/health" {
		t.Errorf("Target.URL = %q, want default-expanded host", cfg.Target.URL)
	}
}

func TestParse_MissingEnvVar(t *testing.T) {
	_, err := Parse([]byte(`
network:
  credential: ${PW_TEST_DEFINITELY_UNSET}
target:
  url: https://example.com
`))
	if err == nil {
		t.Fatal("Parse() with unset env var expected error, got nil")
	}
	if !strings.Contains(err.Error(), "PW_TEST_DEFINITELY_UNSET") {
		t.Errorf("error %q does not name the missing variable", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing url", `
intervals:
  check: 30s
`},
		{"url without scheme", `
target:
  url: example.com
`},
		{"non-http scheme", `
target:
  url: ftp://example.com
`},
		{"negative interval", `
target:
  url: https://example.com
intervals:
  check: -5s
`},
		{"bad duration", `
target:
  url: https://example.com
intervals:
  check: thirty
`},
		{"malformed yaml", `target: [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("Parse() expected error, got nil")
			}
		})
	}
}

// TestWarnings_ReconnectNotLongerThanCheck verifies the recommended (but not
// enforced) interval relationship surfaces as a warning, not an error.
func TestWarnings_ReconnectNotLongerThanCheck(t *testing.T) {
	cfg, err := Parse([]byte(`
target:
  url: https://example.com
intervals:
  check: 60s
  reconnect: 30s
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	warnings := cfg.Warnings()
	if len(warnings) == 0 {
		t.Fatal("Warnings() = none, want reconnect/check warning")
	}
	if !strings.Contains(warnings[0], "reconnect") {
		t.Errorf("Warnings()[0] = %q, want mention of reconnect", warnings[0])
	}
}

func TestWarnings_CleanConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
target:
  url: https://example.com
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if warnings := cfg.Warnings(); len(warnings) != 0 {
		t.Errorf("Warnings() = %v, want none for default config", warnings)
	}
}

func TestWarnings_ProbeTimeoutVsCheck(t *testing.T) {
	cfg, err := Parse([]byte(`
target:
  url: https://example.com
  timeout: 10s
intervals:
  check: 10s
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	warnings := cfg.Warnings()
	if len(warnings) == 0 {
		t.Fatal("Warnings() = none, want timeout/check warning")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/panelwatch.yaml"); err == nil {
		t.Error("Load() with missing file expected error, got nil")
	}
}

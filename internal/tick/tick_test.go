package tick

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestElapsed(t *testing.T) {
	tests := []struct {
		name  string
		start Timestamp
		now   Timestamp
		want  Timestamp
	}{
		{"zero", 1000, 1000, 0},
		{"simple", 1000, 1500, 500},
		{"large values", 0, 1000000, 1000000},
		{"just before wrap", 0xFFFFFFFE, 0xFFFFFFFF, 1},
		{"across wrap boundary", 0xFFFFFFFF - 100, 100, 201},
		{"across wrap large delta", 0xFFFFFFFF - 10000, 20000, 30001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Elapsed(tt.start, tt.now); got != tt.want {
				t.Errorf("Elapsed(%d, %d) = %d, want %d", tt.start, tt.now, got, tt.want)
			}
		})
	}
}

// TestElapsedWrapExample pins the canonical overflow example: a reading
// 100ms before the wrap compared against a reading 100ms after it.
func TestElapsedWrapExample(t *testing.T) {
	start := Timestamp(1<<32 - 100)
	now := Timestamp(100)

	if got := Elapsed(start, now); got != 200 {
		t.Errorf("Elapsed(2^32-100, 100) = %d, want 200", got)
	}
}

func TestPassed(t *testing.T) {
	const interval = 30 * time.Second

	tests := []struct {
		name  string
		start Timestamp
		now   Timestamp
		want  bool
	}{
		{"immediately", 1000, 1000, false},
		{"just before", 0, 29999, false},
		{"exactly", 0, 30000, true},
		{"after", 0, 31000, true},
		{"across wrap", 0xFFFFFFFF - 15000, 15001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Passed(tt.start, tt.now, interval); got != tt.want {
				t.Errorf("Passed(%d, %d, %v) = %v, want %v", tt.start, tt.now, interval, got, tt.want)
			}
		})
	}
}

func TestMilliseconds(t *testing.T) {
	if got := Milliseconds(200 * time.Millisecond); got != 200 {
		t.Errorf("Milliseconds(200ms) = %d, want 200", got)
	}
	if got := Milliseconds(30 * time.Second); got != 30000 {
		t.Errorf("Milliseconds(30s) = %d, want 30000", got)
	}
}

// TestClockNow verifies that Clock readings track the underlying clock
// relative to the construction-time epoch.
func TestClockNow(t *testing.T) {
	fake := clockwork.NewFakeClock()
	clk := NewClock(fake)

	if got := clk.Now(); got != 0 {
		t.Fatalf("Now() at epoch = %d, want 0", got)
	}

	fake.Advance(1500 * time.Millisecond)
	if got := clk.Now(); got != 1500 {
		t.Errorf("Now() after 1500ms = %d, want 1500", got)
	}

	fake.Advance(30 * time.Second)
	if got := clk.Now(); got != 31500 {
		t.Errorf("Now() after 31.5s = %d, want 31500", got)
	}
}

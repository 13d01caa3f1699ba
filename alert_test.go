package panelwatch

import "testing"

// fakeSounder records tone transitions for the package tests.
type fakeSounder struct {
	on      bool
	lastHz  int
	onCalls int
}

func (f *fakeSounder) ToneOn(freqHz int) {
	f.on = true
	f.lastHz = freqHz
	f.onCalls++
}

func (f *fakeSounder) ToneOff() {
	f.on = false
}

func TestAlert_HealthDownSounds(t *testing.T) {
	snd := &fakeSounder{}
	a := NewAlertController(snd, 2000)

	a.HealthResult(false)
	if !snd.on {
		t.Fatal("tone off after unmuted health failure, want on")
	}
	if snd.lastHz != 2000 {
		t.Errorf("tone frequency = %d, want 2000", snd.lastHz)
	}
}

func TestAlert_HealthUpSilences(t *testing.T) {
	snd := &fakeSounder{}
	a := NewAlertController(snd, 2000)

	a.HealthResult(false)
	a.HealthResult(true)
	if snd.on {
		t.Error("tone on after recovery, want off")
	}
}

// TestAlert_MutedHealthFailureStaysSilent verifies the mute flag suppresses
// the health-failure tone.
func TestAlert_MutedHealthFailureStaysSilent(t *testing.T) {
	snd := &fakeSounder{}
	a := NewAlertController(snd, 2000)

	a.SetMuted(true)
	a.HealthResult(false)
	if snd.on {
		t.Error("tone on despite mute, want off")
	}
}

// TestAlert_MutingSilencesActiveTone verifies entering mute stops a tone
// that is already sounding.
func TestAlert_MutingSilencesActiveTone(t *testing.T) {
	snd := &fakeSounder{}
	a := NewAlertController(snd, 2000)

	a.HealthResult(false)
	a.SetMuted(true)
	if snd.on {
		t.Error("tone still on after muting, want off")
	}
}

// TestAlert_SetMutedIdempotent verifies repeating SetMuted(true) leaves
// state identical to calling it once.
func TestAlert_SetMutedIdempotent(t *testing.T) {
	snd := &fakeSounder{}
	a := NewAlertController(snd, 2000)

	a.SetMuted(true)
	if !a.Muted() || snd.on {
		t.Fatalf("after first SetMuted(true): muted=%v tone=%v", a.Muted(), snd.on)
	}

	a.SetMuted(true)
	if !a.Muted() || snd.on {
		t.Errorf("after second SetMuted(true): muted=%v tone=%v, want unchanged", a.Muted(), snd.on)
	}
}

// TestAlert_LinkLossIgnoresMute verifies link loss sounds even while muted;
// mute only covers health-check failures.
func TestAlert_LinkLossIgnoresMute(t *testing.T) {
	snd := &fakeSounder{}
	a := NewAlertController(snd, 2000)

	a.SetMuted(true)
	a.LinkLost()
	if !snd.on {
		t.Error("tone off after link loss while muted, want on")
	}

	a.LinkRegained()
	if snd.on {
		t.Error("tone on after link regained, want off")
	}
}

func TestAlert_UnmutingDoesNotResound(t *testing.T) {
	snd := &fakeSounder{}
	a := NewAlertController(snd, 2000)

	a.SetMuted(true)
	a.HealthResult(false)
	a.SetMuted(false)

	// tone state only changes on the next result
	if snd.on {
		t.Error("unmuting alone started the tone, want silent until next result")
	}

	a.HealthResult(false)
	if !snd.on {
		t.Error("tone off after unmuted failure, want on")
	}
}

package panelwatch

// AlertController owns the mute flag and drives the sounder from health and
// connectivity results.
//
// Mute covers health-check failures only; link loss always sounds.
type AlertController struct {
	sounder Sounder
	freqHz  int
	muted   bool
}

// NewAlertController creates an unmuted controller sounding at freqHz.
func NewAlertController(sounder Sounder, freqHz int) *AlertController {
	return &AlertController{sounder: sounder, freqHz: freqHz}
}

// SetMuted sets the mute flag. Entering mute silences any currently
// sounding tone. Idempotent: repeating a value leaves state unchanged.
func (a *AlertController) SetMuted(muted bool) {
	a.muted = muted
	if muted {
		a.sounder.ToneOff()
	}
}

// Muted reports the current mute flag.
func (a *AlertController) Muted() bool {
	return a.muted
}

// HealthResult drives the tone from a health-check outcome: up stops the
// tone, down starts it unless muted.
func (a *AlertController) HealthResult(up bool) {
	if up {
		a.sounder.ToneOff()
		return
	}
	if !a.muted {
		a.sounder.ToneOn(a.freqHz)
	}
}

// LinkLost sounds the tone regardless of the mute flag.
func (a *AlertController) LinkLost() {
	a.sounder.ToneOn(a.freqHz)
}

// LinkRegained stops the tone.
func (a *AlertController) LinkRegained() {
	a.sounder.ToneOff()
}

// Silence stops the tone without touching the mute flag.
func (a *AlertController) Silence() {
	a.sounder.ToneOff()
}

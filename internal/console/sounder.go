package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Sounder renders alert tone state changes as terminal lines, with a bell
// character when the tone starts. Repeated ToneOn/ToneOff calls are
// deduplicated so a failing check on every interval prints once.
type Sounder struct {
	out     io.Writer
	on      bool
	onStyle lipgloss.Style
	offSty  lipgloss.Style
}

// NewSounder creates a Sounder writing to out.
func NewSounder(out io.Writer) *Sounder {
	return &Sounder{
		out:     out,
		onStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		offSty:  lipgloss.NewStyle().Faint(true),
	}
}

// ToneOn starts the alarm indication.
func (s *Sounder) ToneOn(freqHz int) {
	if s.on {
		return
	}
	s.on = true
	fmt.Fprintf(s.out, "\n%s\a\n", s.onStyle.Render(fmt.Sprintf("ALARM %d Hz", freqHz)))
}

// ToneOff stops the alarm indication.
func (s *Sounder) ToneOff() {
	if !s.on {
		return
	}
	s.on = false
	fmt.Fprintf(s.out, "\n%s\n", s.offSty.Render("alarm off"))
}

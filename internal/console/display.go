// Package console provides terminal implementations of the agent's display
// and sounder capabilities, so the agent can run on a workstation with the
// same loop semantics it has on device hardware.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/panelwatch/panelwatch"
)

// Display renders panel messages as a fixed-width terminal marquee.
//
// Frames are paced on the provided clock: AnimateTick only advances when a
// frame interval has elapsed, mirroring the non-blocking animate call of a
// hardware panel driver. The zero-width and zero-frame cases are rejected
// at construction, which is the process's startup-failure path.
type Display struct {
	clock clockwork.Clock
	out   io.Writer
	width int
	frame time.Duration
	style lipgloss.Style

	text      []rune
	effect    panelwatch.Effect
	hold      time.Duration
	offset    int
	done      bool
	lastFrame time.Time
	shownAt   time.Time
}

// NewDisplay creates a Display of the given character width that advances
// one animation frame per frame interval.
func NewDisplay(clock clockwork.Clock, out io.Writer, width int, frame time.Duration) (*Display, error) {
	if width <= 0 {
		return nil, errors.New("display width must be positive")
	}
	if frame <= 0 {
		return nil, errors.New("display frame interval must be positive")
	}
	return &Display{
		clock: clock,
		out:   out,
		width: width,
		frame: frame,
		style: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		done:  true, // nothing to animate yet
	}, nil
}

// ShowText replaces the current message. Scroll messages complete after one
// full pass, hold messages after the hold duration, print messages
// immediately.
func (d *Display) ShowText(text string, effect panelwatch.Effect, hold time.Duration) {
	now := d.clock.Now()
	d.text = []rune(text)
	d.effect = effect
	d.hold = hold
	d.offset = 0
	d.shownAt = now
	d.lastFrame = now
	d.done = false

	switch effect {
	case panelwatch.EffectPrint:
		d.renderStatic()
		d.done = true
	case panelwatch.EffectHold:
		d.renderStatic()
	default:
		d.renderScroll()
	}
}

// Clear blanks the panel.
func (d *Display) Clear() {
	d.text = nil
	d.done = true
	fmt.Fprintf(d.out, "\r%s\r", strings.Repeat(" ", d.width))
}

// AnimateTick advances the animation by at most one frame and reports
// whether the current message's cycle has completed. It never blocks.
func (d *Display) AnimateTick() bool {
	if d.done {
		return true
	}

	now := d.clock.Now()
	switch d.effect {
	case panelwatch.EffectHold:
		hold := d.hold
		if hold <= 0 {
			hold = d.frame
		}
		if now.Sub(d.shownAt) >= hold {
			d.done = true
		}
	default: // scroll
		if now.Sub(d.lastFrame) < d.frame {
			return false
		}
		d.lastFrame = now
		d.offset++
		d.renderScroll()
		if d.offset >= len(d.text)+d.width {
			d.done = true
		}
	}
	return d.done
}

// renderScroll draws the visible window of the padded message.
func (d *Display) renderScroll() {
	pad := make([]rune, d.width)
	for i := range pad {
		pad[i] = ' '
	}
	padded := append(append(append([]rune{}, pad...), d.text...), pad...)

	end := d.offset + d.width
	if end > len(padded) {
		end = len(padded)
	}
	window := string(padded[d.offset:end])
	fmt.Fprintf(d.out, "\r%s", d.style.Render(window))
}

// renderStatic draws the message centered on the panel.
func (d *Display) renderStatic() {
	text := d.text
	if len(text) > d.width {
		text = text[:d.width]
	}
	left := (d.width - len(text)) / 2
	line := strings.Repeat(" ", left) + string(text) + strings.Repeat(" ", d.width-left-len(text))
	fmt.Fprintf(d.out, "\r%s", d.style.Render(line))
}

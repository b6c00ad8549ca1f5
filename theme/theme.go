// Package theme maps engine colors onto the terminal: kit colors, the
// status LED swatch and the grid symbols used by the front panel.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color triple, matching the engine's LED format.
type RGB [3]uint8

// Symbols are the grid glyphs.
type Symbols struct {
	StepEmpty    rune // · no hit
	StepActive   rune // ● hit
	StepPlayhead rune // ▶ current step
	StepDone     rune // - already played, stopped
	LED          rune // ● status LED swatch
}

func DefaultSymbols() Symbols {
	return Symbols{
		StepEmpty:    '·',
		StepActive:   '●',
		StepPlayhead: '▶',
		StepDone:     '-',
		LED:          '●',
	}
}

// Color converts an RGB triple to a lipgloss color.
func Color(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}

// Swatch renders the status LED glyph in the given color.
func Swatch(c RGB) string {
	return lipgloss.NewStyle().Foreground(Color(c)).Render(string(DefaultSymbols().LED))
}

// Blend mixes two colors in a perceptual space; t=0 yields a, t=1
// yields b. Used for the playhead pulse on the LED swatch.
func Blend(a, b RGB, t float64) RGB {
	ca := colorful.Color{R: float64(a[0]) / 255, G: float64(a[1]) / 255, B: float64(a[2]) / 255}
	cb := colorful.Color{R: float64(b[0]) / 255, G: float64(b[1]) / 255, B: float64(b[2]) / 255}
	m := ca.BlendLuv(cb, t).Clamped()
	return RGB{uint8(m.R * 255), uint8(m.G * 255), uint8(m.B * 255)}
}

// Dim scales a color toward black; f=1 keeps it, f=0 blacks it out.
func Dim(c RGB, f float64) RGB {
	return Blend(RGB{0, 0, 0}, c, f)
}

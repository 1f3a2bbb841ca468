package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/JPM1118/spookshow/internal/display"
)

const (
	ledOn  = "●"
	ledOff = "·"
)

var (
	// Colors
	colorHeader = lipgloss.Color("208") // orange
	colorMuted  = lipgloss.Color("8")   // dim
	colorError  = lipgloss.Color("1")   // red
	colorFrame  = lipgloss.Color("237") // dark gray

	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader)

	subheaderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	matrixStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFrame)

	ledOffStyle = lipgloss.NewStyle().
			Foreground(colorFrame)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	sceneBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(colorHeader).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

// ledStyles caches one style per lit colour.
type ledStyles map[display.Colour]lipgloss.Style

// led renders a single LED in colour c.
func (s ledStyles) led(c display.Colour) string {
	if c == display.Black {
		return ledOffStyle.Render(ledOff)
	}
	st, ok := s[c]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		s[c] = st
	}
	return st.Render(ledOn)
}

package render

import "github.com/charmbracelet/lipgloss"

var (
	colorTitle = lipgloss.Color("#2CD7C7")
	colorLabel = lipgloss.Color("#20B9B4")
	colorMuted = lipgloss.Color("#2C4A54")
	colorGate  = lipgloss.Color("#F4D03F")
	colorBoss  = lipgloss.Color("#E74C3C")
)

// Styles holds the lipgloss styles used by Text.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
	Gate  lipgloss.Style
	Boss  lipgloss.Style
}

// DefaultStyles returns the colored terminal styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
		Label: lipgloss.NewStyle().Bold(true).Foreground(colorLabel),
		Muted: lipgloss.NewStyle().Foreground(colorMuted),
		Gate:  lipgloss.NewStyle().Foreground(colorGate),
		Boss:  lipgloss.NewStyle().Bold(true).Foreground(colorBoss),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Title: plain, Label: plain, Muted: plain, Gate: plain, Boss: plain}
}

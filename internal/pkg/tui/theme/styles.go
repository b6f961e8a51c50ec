package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains the shared terminal styles
type Styles struct {
	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Key/value rows
	Label lipgloss.Style
	Value lipgloss.Style

	// Layout
	Card lipgloss.Style

	// Bars
	BarFilled lipgloss.Style
	BarEmpty  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the singleton default Styles instance
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Red).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(White).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(LightGray),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Label: lipgloss.NewStyle().
			Foreground(DimGray).
			Width(18),

		Value: lipgloss.NewStyle().
			Foreground(White),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGray).
			Padding(0, 2).
			MarginBottom(1),

		BarFilled: lipgloss.NewStyle().
			Foreground(Red),

		BarEmpty: lipgloss.NewStyle().
			Foreground(DarkGray),

		Success: lipgloss.NewStyle().
			Foreground(Success),

		Error: lipgloss.NewStyle().
			Foreground(Error),
	}
}

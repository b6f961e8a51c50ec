package components

import (
	"math"
	"strings"

	"github.com/emiliopalmerini/streamstats/internal/pkg/tui/theme"
)

// Bar is a horizontal text bar showing value relative to max.
type Bar struct {
	Value  float64
	Max    float64
	Width  int
	styles *theme.Styles
}

// NewBar creates a bar of the given width in cells
func NewBar(value, max float64, width int) Bar {
	return Bar{
		Value:  value,
		Max:    max,
		Width:  width,
		styles: theme.Default(),
	}
}

// Filled returns the number of filled cells.
func (b Bar) Filled() int {
	if b.Max <= 0 || b.Value <= 0 || b.Width <= 0 {
		return 0
	}
	n := int(math.Round(b.Value / b.Max * float64(b.Width)))
	if n > b.Width {
		return b.Width
	}
	return n
}

// View renders the bar
func (b Bar) View() string {
	filled := b.Filled()
	return b.styles.BarFilled.Render(strings.Repeat("█", filled)) +
		b.styles.BarEmpty.Render(strings.Repeat("░", max(b.Width-filled, 0)))
}

package components

import (
	"github.com/emiliopalmerini/streamstats/internal/pkg/tui/theme"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline draws one block per value, scaled from zero to the largest
// value. Used for week-by-week hours where gaps matter.
type Sparkline struct {
	Values []float64
	styles *theme.Styles
}

// NewSparkline creates a sparkline over values
func NewSparkline(values []float64) Sparkline {
	return Sparkline{Values: values, styles: theme.Default()}
}

// Runes returns the unstyled blocks.
func (s Sparkline) Runes() []rune {
	var top float64
	for _, v := range s.Values {
		top = max(top, v)
	}

	out := make([]rune, len(s.Values))
	last := len(sparkBlocks) - 1
	for i, v := range s.Values {
		idx := 0
		if top > 0 && v > 0 {
			idx = int(v / top * float64(last))
		}
		out[i] = sparkBlocks[min(idx, last)]
	}
	return out
}

// View renders the sparkline
func (s Sparkline) View() string {
	return s.styles.BarFilled.Render(string(s.Runes()))
}

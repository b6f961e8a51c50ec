package theme

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Primary colors
	Red       = lipgloss.Color("#E50914")
	BrightRed = lipgloss.Color("#F6121D")
	DarkRed   = lipgloss.Color("#B20710")

	// Neutrals
	White     = lipgloss.Color("#FFFFFF")
	LightGray = lipgloss.Color("#9CA3AF")
	DimGray   = lipgloss.Color("#6B7280")
	DarkGray  = lipgloss.Color("#374151")

	// Semantic colors
	Success = lipgloss.Color("#22C55E")
	Error   = lipgloss.Color("#EF4444")

	// Accent colors
	Cyan = lipgloss.Color("#06B6D4")
)

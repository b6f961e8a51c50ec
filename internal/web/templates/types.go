package templates

import "github.com/emiliopalmerini/streamstats/internal/analytics"

// IndexPage is the landing page with the upload form.
type IndexPage struct {
	Error       string
	MaxUploadMB int64
}

// ChartView is one rendered chart. SVG is empty when there was nothing to draw.
type ChartView struct {
	Title  string
	XLabel string
	YLabel string
	SVG    string
}

// ProfileView groups the three per-profile charts with the headline numbers.
type ProfileView struct {
	Summary analytics.ProfileSummary
	Charts  []ChartView
}

// ReportPage is the rendered dashboard for one upload.
type ReportPage struct {
	ID         string
	Source     string
	Records    int
	Preview    []analytics.PreviewRow
	Profiles   []ProfileView
	Comparison ChartView
	Notice     string
}

package web

import (
	"bytes"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/emiliopalmerini/streamstats/internal/analytics"
	"github.com/emiliopalmerini/streamstats/internal/chart"
	"github.com/emiliopalmerini/streamstats/internal/web/templates"
)

func buildReportPage(report *analytics.Report, notice string) templates.ReportPage {
	page := templates.ReportPage{
		ID:       report.ID,
		Source:   report.Source,
		Records:  report.Records,
		Preview:  report.Preview,
		Notice:   notice,
		Profiles: make([]templates.ProfileView, 0, len(report.Profiles)),
	}

	for _, p := range report.Profiles {
		view := templates.ProfileView{Summary: p.Summary}
		for _, s := range chartsFor(p) {
			view.Charts = append(view.Charts, seriesView(report.ID, s))
		}
		page.Profiles = append(page.Profiles, view)
	}

	c := report.Comparison
	page.Comparison = templates.ChartView{Title: c.Title, XLabel: c.XLabel, YLabel: c.YLabel}
	var buf bytes.Buffer
	if err := chart.Lines(&buf, c, chart.SVG); err == nil {
		page.Comparison.SVG = buf.String()
	} else {
		logChartError(report.ID, c.Title, err)
	}

	return page
}

func seriesView(renderID string, s analytics.Series) templates.ChartView {
	view := templates.ChartView{Title: s.Title, XLabel: s.XLabel, YLabel: s.YLabel}
	var buf bytes.Buffer
	if err := chart.Bar(&buf, s, chart.SVG); err != nil {
		logChartError(renderID, s.Title, err)
		return view
	}
	view.SVG = buf.String()
	return view
}

func logChartError(renderID, title string, err error) {
	if errors.Is(err, chart.ErrEmptySeries) {
		return
	}
	log.Warn().Err(err).Str("render_id", renderID).Str("chart", title).Msg("Chart render failed")
}

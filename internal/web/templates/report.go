package templates

import (
	"context"
	"encoding/base64"
	"io"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/streamstats/internal/analytics"
	"github.com/emiliopalmerini/streamstats/internal/util"
)

// Report renders the data preview, one section per profile and the
// monthly comparison.
func Report(p ReportPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &writer{w: w}
		hw.open(Title)
		hw.element("h1", "", Title)
		hw.raw(`<p class="muted">`)
		hw.printf("%s records from %s", util.FormatNumber(int64(p.Records)), p.Source)
		hw.raw(` &middot; <a href="/">Analyze another file</a></p>`)

		if p.Notice != "" {
			hw.element("div", "notice", p.Notice)
		}

		if len(p.Profiles) > 1 {
			hw.raw("<p>")
			for i, profile := range p.Profiles {
				if i > 0 {
					hw.raw(" &middot; ")
				}
				hw.raw(`<a href="#` + templ.EscapeString(anchor(profile.Summary.Profile)) + `">`)
				hw.text(profile.Summary.Profile)
				hw.raw("</a>")
			}
			hw.raw("</p>")
		}

		hw.element("h2", "", "Data Preview")
		previewTable(hw, p.Preview)

		for _, profile := range p.Profiles {
			hw.raw(`<section id="` + templ.EscapeString(anchor(profile.Summary.Profile)) + `">`)
			hw.element("h2", "", "Analysis for "+profile.Summary.Profile)
			summaryCard(hw, profile)
			for _, c := range profile.Charts {
				chartFigure(hw, c)
			}
			hw.raw("</section>")
		}

		hw.element("h2", "", p.Comparison.Title)
		chartFigure(hw, p.Comparison)

		hw.raw(`<p class="muted">`)
		hw.printf("Render %s", p.ID)
		hw.raw("</p>")
		hw.close()
		return hw.err
	})
}

func previewTable(hw *writer, rows []analytics.PreviewRow) {
	if len(rows) == 0 {
		hw.element("p", "empty", "No rows.")
		return
	}
	hw.raw("<table><thead><tr>")
	for _, h := range []string{"Profile Name", "Start Time", "Duration", "Duration (s)", "Month-Year", "Week", "Weekday"} {
		hw.element("th", "", h)
	}
	hw.raw("</tr></thead><tbody>")
	for _, r := range rows {
		hw.raw("<tr>")
		hw.element("td", "", r.Profile)
		hw.element("td", "", r.StartTime)
		hw.element("td", "", r.Duration)
		hw.element("td", "", util.FormatNumber(r.Seconds))
		hw.element("td", "", r.Month)
		hw.element("td", "", r.Week)
		hw.element("td", "", r.Weekday)
		hw.raw("</tr>")
	}
	hw.raw("</tbody></table>")
}

func summaryCard(hw *writer, p ProfileView) {
	s := p.Summary
	hw.raw(`<div class="card stats">`)
	stat(hw, "Hours watched", formatHours(s.TotalHours))
	stat(hw, "Viewings", util.FormatNumber(int64(s.Records)))
	stat(hw, "Average session", util.FormatDuration(s.AverageSession))
	stat(hw, "Busiest weekday", s.BusiestWeekday.String())
	stat(hw, "Busiest month", s.BusiestMonth)
	stat(hw, "First watched", formatDate(s.FirstWatched))
	stat(hw, "Last watched", formatDate(s.LastWatched))
	hw.raw("</div>")
}

func stat(hw *writer, label, value string) {
	hw.raw("<div>")
	hw.element("div", "stat-label", label)
	hw.element("div", "stat-value", value)
	hw.raw("</div>")
}

// chartFigure embeds the chart as a data URI image. Profile names from the
// upload end up inside the SVG, so it is never inlined as markup.
func chartFigure(hw *writer, c ChartView) {
	hw.raw(`<figure class="chart">`)
	if c.SVG == "" {
		hw.element("p", "empty", c.Title+": no data to display.")
	} else {
		hw.raw(`<img alt="` + templ.EscapeString(c.Title) + `" src="data:image/svg+xml;base64,`)
		hw.raw(base64.StdEncoding.EncodeToString([]byte(c.SVG)))
		hw.raw(`">`)
	}
	hw.raw("<figcaption class=\"muted\">")
	hw.printf("%s (x: %s, y: %s)", c.Title, c.XLabel, c.YLabel)
	hw.raw("</figcaption></figure>")
}

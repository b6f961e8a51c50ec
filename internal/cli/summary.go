package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/streamstats/internal/analytics"
	"github.com/emiliopalmerini/streamstats/internal/pkg/tui/components"
	"github.com/emiliopalmerini/streamstats/internal/pkg/tui/theme"
	"github.com/emiliopalmerini/streamstats/internal/util"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print per-profile viewing statistics",
	Long: `Print headline numbers and the weekday split of every profile.

Examples:
  streamstats summary --example
  streamstats summary -f ViewingActivity.csv`,
	RunE: runSummary,
}

var summaryInput inputOptions

const weekdayBarWidth = 30

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryInput.register(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	if err := summaryInput.validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, closeMetrics := newService(ctx)
	defer closeMetrics()

	table, err := loadTable(ctx, svc, summaryInput)
	if err != nil {
		return err
	}

	report := analytics.Summarize(table, 0)
	report.Source = summaryInput.source()
	return renderSummary(cmd.OutOrStdout(), report)
}

func renderSummary(w io.Writer, report *analytics.Report) error {
	styles := theme.Default()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Netflix Streaming Behavior"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("%d records, %d profiles, from %s",
		report.Records, len(report.Profiles), report.Source)))
	b.WriteString("\n\n")

	for _, p := range report.Profiles {
		b.WriteString(profileCard(styles, p))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func profileCard(styles *theme.Styles, p analytics.ProfileReport) string {
	s := p.Summary
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, styles.Label.Render(label), styles.Value.Render(value))
	}

	lines := []string{
		styles.Subtitle.Render(s.Profile),
		row("Hours watched", util.FormatHours(s.TotalHours)),
		row("Viewings", fmt.Sprintf("%d", s.Records)),
		row("Average session", util.FormatDuration(s.AverageSession)),
		row("First watched", util.FormatDateHuman(s.FirstWatched)),
		row("Last watched", util.FormatDateHuman(s.LastWatched)),
		row("Busiest month", s.BusiestMonth),
		row("Busiest weekday", s.BusiestWeekday.String()),
		row("Weekly hours", components.NewSparkline(p.Weekly.Values()).View()),
		"",
		styles.Bold.Render("Share of hours per weekday"),
	}

	var top float64
	for _, pt := range p.Weekday.Points {
		top = max(top, pt.Value)
	}
	for _, pt := range p.Weekday.Points {
		bar := components.NewBar(pt.Value, top, weekdayBarWidth)
		lines = append(lines, fmt.Sprintf("%s %s %s",
			styles.Label.Render(pt.Label), bar.View(), styles.Body.Render(util.FormatPercent(pt.Value))))
	}

	return styles.Card.Render(strings.Join(lines, "\n"))
}

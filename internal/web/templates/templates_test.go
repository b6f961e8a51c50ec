package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/emiliopalmerini/streamstats/internal/analytics"
)

func TestIndex(t *testing.T) {
	var buf bytes.Buffer
	if err := Index(IndexPage{MaxUploadMB: 32}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		Title,
		`action="/upload"`,
		`name="file"`,
		`action="/example"`,
		"Load Example Data",
		"getmyinfo",
		"Files up to 32 MB.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if strings.Contains(out, `class="error"`) {
		t.Error("expected no error banner")
	}
}

func TestIndex_ErrorIsEscaped(t *testing.T) {
	var buf bytes.Buffer
	page := IndexPage{Error: `row 3: malformed duration "<b>1:2</b>"`}
	if err := Index(page).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `class="error"`) {
		t.Error("expected error banner")
	}
	if strings.Contains(out, "<b>1:2</b>") {
		t.Error("error message must be escaped")
	}
	if !strings.Contains(out, "&lt;b&gt;1:2&lt;/b&gt;") {
		t.Errorf("expected escaped message in %q", out)
	}
}

func TestReport(t *testing.T) {
	page := ReportPage{
		ID:      "render-1",
		Source:  "example",
		Records: 2,
		Preview: []analytics.PreviewRow{
			{Profile: "Alice", StartTime: "2023-01-15 20:14:00", Duration: "01:00:00", Seconds: 3600, Month: "2023-01", Week: "2023-01-09/2023-01-15", Weekday: "Sunday"},
		},
		Profiles: []ProfileView{
			{
				Summary: analytics.ProfileSummary{Profile: "Alice", Records: 1, TotalHours: 1, BusiestWeekday: time.Sunday, BusiestMonth: "2023-01"},
				Charts: []ChartView{
					{Title: "Total Hours Watched per Month by Alice", XLabel: "Month-Year", YLabel: "Hours", SVG: "<svg></svg>"},
					{Title: "Total Hours Watched per Week by Alice", XLabel: "Week", YLabel: "Hours"},
				},
			},
			{Summary: analytics.ProfileSummary{Profile: "<Bob>"}},
		},
		Comparison: ChartView{Title: "Monthly Hours Watched Comparison", SVG: "<svg></svg>"},
	}

	var buf bytes.Buffer
	if err := Report(page).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Data Preview",
		"Analysis for Alice",
		"2023-01-09/2023-01-15",
		"Monthly Hours Watched Comparison",
		"data:image/svg+xml;base64,",
		"no data to display",
		`href="#profile-alice"`,
		"Analysis for &lt;Bob&gt;",
		"render-1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(out, "<svg") {
		t.Error("charts must not be inlined as markup")
	}
}

func TestReport_EmptyPreview(t *testing.T) {
	var buf bytes.Buffer
	if err := Report(ReportPage{Source: "upload"}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No rows.") {
		t.Error("expected empty preview notice")
	}
}

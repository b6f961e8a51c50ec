package analytics

import (
	"time"

	"github.com/emiliopalmerini/streamstats/internal/domain"
	"github.com/emiliopalmerini/streamstats/internal/util"
)

// Point is one labelled value of a chart series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is an ordered list of points with the text needed to draw it.
type Series struct {
	Title  string  `json:"title"`
	XLabel string  `json:"x_label"`
	YLabel string  `json:"y_label"`
	Points []Point `json:"points"`
}

// Labels returns the point labels in order.
func (s Series) Labels() []string {
	labels := make([]string, len(s.Points))
	for i, p := range s.Points {
		labels[i] = p.Label
	}
	return labels
}

// Values returns the point values in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Value
	}
	return values
}

// Total returns the sum of all point values.
func (s Series) Total() float64 {
	var total float64
	for _, p := range s.Points {
		total += p.Value
	}
	return total
}

// ProfileLine is one profile's values in a Comparison, aligned on its labels.
type ProfileLine struct {
	Profile string    `json:"profile"`
	Values  []float64 `json:"values"`
}

// Comparison holds one hours line per profile over a shared set of month labels.
type Comparison struct {
	Title  string        `json:"title"`
	XLabel string        `json:"x_label"`
	YLabel string        `json:"y_label"`
	Labels []string      `json:"labels"`
	Lines  []ProfileLine `json:"lines"`
}

// Line returns the values for profile, or nil when the profile is unknown.
func (c Comparison) Line(profile string) []float64 {
	for _, l := range c.Lines {
		if l.Profile == profile {
			return l.Values
		}
	}
	return nil
}

// ProfileSummary holds headline numbers for one profile.
type ProfileSummary struct {
	Profile        string        `json:"profile"`
	Records        int           `json:"records"`
	TotalSeconds   int64         `json:"total_seconds"`
	TotalHours     float64       `json:"total_hours"`
	FirstWatched   time.Time     `json:"first_watched"`
	LastWatched    time.Time     `json:"last_watched"`
	BusiestWeekday time.Weekday  `json:"busiest_weekday"`
	BusiestMonth   string        `json:"busiest_month"`
	AverageSession time.Duration `json:"average_session"`
}

// ProfileReport bundles the charts computed for one profile.
type ProfileReport struct {
	Summary ProfileSummary `json:"summary"`
	Monthly Series         `json:"monthly"`
	Weekly  Series         `json:"weekly"`
	Weekday Series         `json:"weekday"`
}

// PreviewRow is a loaded record formatted for display.
type PreviewRow struct {
	Profile   string `json:"profile"`
	StartTime string `json:"start_time"`
	Duration  string `json:"duration"`
	Seconds   int64  `json:"seconds"`
	Month     string `json:"month"`
	Week      string `json:"week"`
	Weekday   string `json:"weekday"`
}

// NewPreviewRow formats r for display.
func NewPreviewRow(r domain.ViewingRecord) PreviewRow {
	return PreviewRow{
		Profile:   r.ProfileName,
		StartTime: r.StartTime.Format("2006-01-02 15:04:05"),
		Duration:  util.FormatClock(r.DurationSeconds),
		Seconds:   r.DurationSeconds,
		Month:     r.Month,
		Week:      r.Week,
		Weekday:   r.Weekday.String(),
	}
}

// Report is the output of a single render pass over one uploaded export.
type Report struct {
	ID         string          `json:"id"`
	Source     string          `json:"source"`
	Records    int             `json:"records"`
	Preview    []PreviewRow    `json:"preview"`
	Profiles   []ProfileReport `json:"profiles"`
	Comparison Comparison      `json:"comparison"`
}

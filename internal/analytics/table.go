package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/emiliopalmerini/streamstats/internal/domain"
)

const secondsPerHour = 3600

// Table is the loaded export for one render pass. It is never mutated after
// NewTable and can be read from several goroutines.
type Table struct {
	records  []domain.ViewingRecord
	profiles []string
}

// NewTable wraps records. Profiles keep their first-appearance order.
func NewTable(records []domain.ViewingRecord) *Table {
	seen := make(map[string]bool)
	var profiles []string
	for _, r := range records {
		if !seen[r.ProfileName] {
			seen[r.ProfileName] = true
			profiles = append(profiles, r.ProfileName)
		}
	}
	return &Table{records: records, profiles: profiles}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Profiles returns the distinct profile names in first-appearance order.
func (t *Table) Profiles() []string {
	return append([]string(nil), t.profiles...)
}

// Preview returns up to n leading records.
func (t *Table) Preview(n int) []domain.ViewingRecord {
	if n < 0 {
		n = 0
	}
	if n > len(t.records) {
		n = len(t.records)
	}
	return append([]domain.ViewingRecord(nil), t.records[:n]...)
}

// MonthlyHours sums the profile's viewing per calendar month.
func (t *Table) MonthlyHours(profile string) Series {
	return Series{
		Title:  "Total Hours Watched per Month by " + profile,
		XLabel: "Month-Year",
		YLabel: "Hours",
		Points: hoursPoints(t.sumBy(profile, monthKey)),
	}
}

// WeeklyHours sums the profile's viewing per Monday..Sunday week.
func (t *Table) WeeklyHours(profile string) Series {
	return Series{
		Title:  "Total Hours Watched per Week by " + profile,
		XLabel: "Week",
		YLabel: "Hours",
		Points: hoursPoints(t.sumBy(profile, weekKey)),
	}
}

// WeekdayPercent returns the share of the profile's hours per weekday,
// Monday first, rounded to two decimals. A profile with no watched time
// gets all zeros.
func (t *Table) WeekdayPercent(profile string) Series {
	var perDay [7]int64
	var total int64
	for _, r := range t.records {
		if r.ProfileName != profile {
			continue
		}
		perDay[r.Weekday] += r.DurationSeconds
		total += r.DurationSeconds
	}

	points := make([]Point, 0, len(domain.WeekdayOrder))
	for _, day := range domain.WeekdayOrder {
		points = append(points, Point{Label: day.String(), Value: percentOf(perDay[day], total)})
	}

	return Series{
		Title:  "Percent of Hours Watched per Weekday by " + profile,
		XLabel: "Weekday",
		YLabel: "% of hours Watched",
		Points: points,
	}
}

// MonthlyComparison returns one hours line per profile over every month
// present in the table. Months a profile did not watch in are zero.
func (t *Table) MonthlyComparison() Comparison {
	perProfile := make(map[string]map[string]int64, len(t.profiles))
	months := make(map[string]bool)
	for _, r := range t.records {
		buckets, ok := perProfile[r.ProfileName]
		if !ok {
			buckets = make(map[string]int64)
			perProfile[r.ProfileName] = buckets
		}
		buckets[r.Month] += r.DurationSeconds
		months[r.Month] = true
	}

	labels := sortedKeys(months)
	lines := make([]ProfileLine, 0, len(t.profiles))
	for _, profile := range t.profiles {
		values := make([]float64, len(labels))
		for i, month := range labels {
			values[i] = toHours(perProfile[profile][month])
		}
		lines = append(lines, ProfileLine{Profile: profile, Values: values})
	}

	return Comparison{
		Title:  "Monthly Hours Watched Comparison",
		XLabel: "Month-Year",
		YLabel: "Hours",
		Labels: labels,
		Lines:  lines,
	}
}

// Summary returns headline numbers for profile. Unknown profiles yield a
// zero summary carrying only the name.
func (t *Table) Summary(profile string) ProfileSummary {
	s := ProfileSummary{Profile: profile}
	var perDay [7]int64
	perMonth := make(map[string]int64)

	for _, r := range t.records {
		if r.ProfileName != profile {
			continue
		}
		if s.Records == 0 || r.StartTime.Before(s.FirstWatched) {
			s.FirstWatched = r.StartTime
		}
		if s.Records == 0 || r.StartTime.After(s.LastWatched) {
			s.LastWatched = r.StartTime
		}
		s.Records++
		s.TotalSeconds += r.DurationSeconds
		perDay[r.Weekday] += r.DurationSeconds
		perMonth[r.Month] += r.DurationSeconds
	}
	if s.Records == 0 {
		return s
	}

	s.TotalHours = toHours(s.TotalSeconds)
	s.AverageSession = time.Duration(s.TotalSeconds/int64(s.Records)) * time.Second

	s.BusiestWeekday = domain.WeekdayOrder[0]
	for _, day := range domain.WeekdayOrder {
		if perDay[day] > perDay[s.BusiestWeekday] {
			s.BusiestWeekday = day
		}
	}
	for _, month := range sortedKeys(perMonth) {
		if s.BusiestMonth == "" || perMonth[month] > perMonth[s.BusiestMonth] {
			s.BusiestMonth = month
		}
	}

	return s
}

func monthKey(r domain.ViewingRecord) string { return r.Month }

func weekKey(r domain.ViewingRecord) string { return r.Week }

// sumBy folds the profile's seconds into buckets keyed by key.
func (t *Table) sumBy(profile string, key func(domain.ViewingRecord) string) map[string]int64 {
	buckets := make(map[string]int64)
	for _, r := range t.records {
		if r.ProfileName == profile {
			buckets[key(r)] += r.DurationSeconds
		}
	}
	return buckets
}

// hoursPoints converts bucketed seconds to hours, ascending by label.
func hoursPoints(buckets map[string]int64) []Point {
	points := make([]Point, 0, len(buckets))
	for _, label := range sortedKeys(buckets) {
		points = append(points, Point{Label: label, Value: toHours(buckets[label])})
	}
	return points
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toHours(seconds int64) float64 {
	return float64(seconds) / secondsPerHour
}

// percentOf returns part/total*100 rounded half away from zero to two
// decimals, or 0 when total is 0.
func percentOf(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(part).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total)).
		Round(2).
		InexactFloat64()
}

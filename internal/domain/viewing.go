package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Load errors. Any of them aborts the whole load.
var (
	ErrMissingColumn        = errors.New("missing required column")
	ErrMalformedDuration    = errors.New("malformed duration")
	ErrUnparseableTimestamp = errors.New("unparseable timestamp")
	ErrMissingProfile       = errors.New("missing profile name")
)

const (
	MonthLayout = "2006-01"
	DayLayout   = "2006-01-02"
)

// WeekdayOrder is the display order for weekday series, independent of locale.
var WeekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// ViewingRecord is one row of a viewing activity export with its calendar
// buckets derived at load time.
type ViewingRecord struct {
	ProfileName     string
	StartTime       time.Time
	DurationSeconds int64

	Month   string // "2006-01"
	Week    string // "<monday>/<sunday>", both "2006-01-02"
	Weekday time.Weekday
}

// NewViewingRecord builds a record and derives its buckets from start.
func NewViewingRecord(profile string, start time.Time, durationSeconds int64) ViewingRecord {
	return ViewingRecord{
		ProfileName:     profile,
		StartTime:       start,
		DurationSeconds: durationSeconds,
		Month:           MonthBucket(start),
		Week:            WeekBucket(start),
		Weekday:         start.Weekday(),
	}
}

// Hours returns the record duration in hours.
func (r ViewingRecord) Hours() float64 {
	return float64(r.DurationSeconds) / 3600
}

// MonthBucket returns the year-month label of t.
func MonthBucket(t time.Time) string {
	return t.Format(MonthLayout)
}

// WeekBucket returns the Monday..Sunday week containing t, labelled
// "<monday>/<sunday>". Labels sort chronologically.
func WeekBucket(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // days since Monday
	monday := time.Date(t.Year(), t.Month(), t.Day()-offset, 0, 0, 0, 0, t.Location())
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(DayLayout) + "/" + sunday.Format(DayLayout)
}

// ParseDuration converts an "HH:MM:SS" string to seconds. Hours are unbounded.
func ParseDuration(s string) (int64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q has %d fields, want 3", ErrMalformedDuration, s, len(parts))
	}

	var fields [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
		}
		fields[i] = n
	}

	return fields[0]*3600 + fields[1]*60 + fields[2], nil
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	DayLayout,
}

// ParseStartTime parses the export's start time. Values without a zone are UTC.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTimestamp, s)
}

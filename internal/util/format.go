package util

import (
	"fmt"
	"time"
)

// FormatNumber formats an int64 with K/M suffix for readability.
// Examples: 500 -> "500", 1500 -> "1.5K", 1500000 -> "1.5M"
func FormatNumber(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

// FormatClock formats seconds as HH:MM:SS, the export's duration notation.
// Hours are not wrapped at 24.
func FormatClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// FormatHours formats an hour count with one decimal and an "h" suffix.
func FormatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

// FormatPercent formats a 0-100 percentage with two decimals.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// FormatDuration formats a duration as "1h 05m" or "12m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}

// FormatDateHuman formats a time to human-readable format (Jan 2, 2006).
// The zero time formats as "-".
func FormatDateHuman(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

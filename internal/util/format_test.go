package util

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1500, "1.5K"},
		{1500000, "1.5M"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name string
		in   int64
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"mixed", 5025, "01:23:45"},
		{"over a day", 90061, "25:01:01"},
		{"negative clamps", -5, "00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatClock(tt.in); got != tt.want {
				t.Errorf("FormatClock(%d) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatHoursAndPercent(t *testing.T) {
	if got := FormatHours(12.345); got != "12.3h" {
		t.Errorf("FormatHours = %s, want 12.3h", got)
	}
	if got := FormatPercent(14.29); got != "14.29%" {
		t.Errorf("FormatPercent = %s, want 14.29%%", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0m"},
		{12 * time.Minute, "12m"},
		{65 * time.Minute, "1h 05m"},
		{25*time.Hour + 30*time.Second, "25h 01m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateHuman(t *testing.T) {
	if got := FormatDateHuman(time.Time{}); got != "-" {
		t.Errorf("expected '-', got %s", got)
	}
	if got := FormatDateHuman(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)); got != "Jan 15, 2023" {
		t.Errorf("expected 'Jan 15, 2023', got %s", got)
	}
}

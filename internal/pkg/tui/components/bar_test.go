package components

import (
	"strings"
	"testing"
)

func TestBarFilled(t *testing.T) {
	tests := []struct {
		name       string
		value, max float64
		width      int
		want       int
	}{
		{"half", 50, 100, 20, 10},
		{"full", 100, 100, 20, 20},
		{"over", 150, 100, 20, 20},
		{"zero max", 10, 0, 20, 0},
		{"zero value", 0, 100, 20, 0},
		{"rounds", 14.29, 100, 10, 1},
		{"no width", 50, 100, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewBar(tt.value, tt.max, tt.width).Filled(); got != tt.want {
				t.Errorf("Filled() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBarView(t *testing.T) {
	view := NewBar(1, 2, 10).View()
	if strings.Count(view, "█") != 5 || strings.Count(view, "░") != 5 {
		t.Errorf("unexpected bar %q", view)
	}
}

package components

import "testing"

func TestSparklineRunes(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"all zero", []float64{0, 0, 0}, "▁▁▁"},
		{"ramp", []float64{0, 3.5, 7}, "▁▄█"},
		{"single", []float64{2}, "█"},
		{"negative clamps", []float64{-1, 1}, "▁█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(NewSparkline(tt.values).Runes()); got != tt.want {
				t.Errorf("Runes() = %q, want %q", got, tt.want)
			}
		})
	}
}

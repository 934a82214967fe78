package extract

import (
	"testing"
	"time"
)

func TestParseViewCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1.2M", 1_200_000},
		{"950K", 950_000},
		{"3B", 3_000_000_000},
		{"abc", 0},
		{"", 0},
		{"2.1M views", 2_100_000},
		{"1,234,567 views", 1_234_567},
		{"847 views", 847},
		{"1.5k", 1_500},
		{"12 watching", 12},
		{"-5", 0},
	}
	for _, tt := range tests {
		if got := ParseViewCount(tt.in); got != tt.want {
			t.Errorf("ParseViewCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12:34", 754},
		{"1:02:03", 3723},
		{"", 0},
		{"0:59", 59},
		{"15:42", 942},
		{"10:00:00", 36000},
		{"garbage", 0},
		{"1:2:3:4", 0},
		{"-1:30", 0},
	}
	for _, tt := range tests {
		if got := ParseDuration(tt.in); got != tt.want {
			t.Errorf("ParseDuration(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseAge(t *testing.T) {
	fixed := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	old := now
	now = func() time.Time { return fixed }
	defer func() { now = old }()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"3 weeks ago", fixed.Add(-3 * 7 * 24 * time.Hour)},
		{"1 day ago", fixed.Add(-24 * time.Hour)},
		{"2 months ago", fixed.Add(-2 * 30 * 24 * time.Hour)},
		{"1 year ago", fixed.Add(-365 * 24 * time.Hour)},
		{"Streamed 5 hours ago", fixed.Add(-5 * time.Hour)},
		{"", time.Time{}},
		{"N/A", time.Time{}},
	}
	for _, tt := range tests {
		if got := ParseAge(tt.in); !got.Equal(tt.want) {
			t.Errorf("ParseAge(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

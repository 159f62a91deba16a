package freeze

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeEndDate(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		days  int
		want  time.Time
	}{
		{
			name:  "30 days across a short month",
			start: date(2025, time.February, 1),
			days:  30,
			want:  date(2025, time.March, 3),
		},
		{
			name:  "30 days in a leap february",
			start: date(2024, time.February, 1),
			days:  30,
			want:  date(2024, time.March, 2),
		},
		{
			name:  "crosses a year boundary",
			start: date(2025, time.December, 20),
			days:  14,
			want:  date(2026, time.January, 3),
		},
		{
			name:  "single day",
			start: date(2025, time.June, 15),
			days:  1,
			want:  date(2025, time.June, 16),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeEndDate(tt.start, tt.days)
			if !got.Equal(tt.want) {
				t.Errorf("ComputeEndDate(%v, %d) = %v, want %v", tt.start, tt.days, got, tt.want)
			}
		})
	}
}

func TestShouldExtendExpiration(t *testing.T) {
	start := date(2025, time.March, 1)
	end := date(2025, time.March, 15)

	tests := []struct {
		name      string
		expiredAt time.Time
		want      bool
	}{
		{"expires before the window", date(2025, time.February, 28), false},
		{"expires exactly at window start", start, true},
		{"expires inside the window", date(2025, time.March, 10), true},
		{"expires exactly at window end", end, true},
		{"expires after the window", date(2025, time.March, 16), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldExtendExpiration(tt.expiredAt, start, end)
			if got != tt.want {
				t.Errorf("ShouldExtendExpiration(%v, %v, %v) = %v, want %v",
					tt.expiredAt, start, end, got, tt.want)
			}
		})
	}
}

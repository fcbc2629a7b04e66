package utils

import (
	"testing"
	"time"
)

func TestStartAndEndOfDay(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 45, 123, time.UTC)

	start := StartOfDay(now)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("expected midnight, got %v", start)
	}
	if start.Day() != 15 {
		t.Errorf("expected day 15, got %d", start.Day())
	}

	end := EndOfDay(now)
	if end.Day() != 15 || end.Hour() != 23 {
		t.Errorf("expected end of day 15, got %v", end)
	}
	if !end.Before(StartOfDay(now).AddDate(0, 0, 1)) {
		t.Error("end of day must precede the next midnight")
	}
}

func TestStartOfMonth(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	start := StartOfMonth(now)

	if start.Day() != 1 || start.Month() != time.June || start.Hour() != 0 {
		t.Errorf("expected June 1 midnight, got %v", start)
	}
}

func TestTrailingWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	from, to := TrailingWindow(now, 7)

	if !to.Equal(now) {
		t.Errorf("expected window to end at now, got %v", to)
	}
	// 7 days means today plus the six preceding calendar days.
	if from.Day() != 9 || from.Hour() != 0 {
		t.Errorf("expected June 9 midnight, got %v", from)
	}
}

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2025-06-15T14:30:00Z", time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)},
		{"no timezone", "2025-06-15T14:30:00", time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)},
		{"bare date", "2025-06-15", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISOTime(tt.input)
			if err != nil {
				t.Fatalf("ParseISOTime(%q) failed: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseISOTimeInvalid(t *testing.T) {
	if _, err := ParseISOTime("15/06/2025"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestParseDateRangeDefaults(t *testing.T) {
	defaultFrom := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	defaultTo := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	from, to, err := ParseDateRange("", "", defaultFrom, defaultTo)
	if err != nil {
		t.Fatalf("ParseDateRange failed: %v", err)
	}
	if !from.Equal(defaultFrom) || !to.Equal(defaultTo) {
		t.Errorf("expected defaults, got %v and %v", from, to)
	}
}

func TestParseDateRangeOverrides(t *testing.T) {
	defaultFrom := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	defaultTo := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	from, to, err := ParseDateRange("2025-05-01", "", defaultFrom, defaultTo)
	if err != nil {
		t.Fatalf("ParseDateRange failed: %v", err)
	}
	if from.Month() != time.May {
		t.Errorf("expected May start, got %v", from)
	}
	if !to.Equal(defaultTo) {
		t.Errorf("expected default end, got %v", to)
	}

	if _, _, err := ParseDateRange("bogus", "", defaultFrom, defaultTo); err == nil {
		t.Error("expected error for unparseable from")
	}
}

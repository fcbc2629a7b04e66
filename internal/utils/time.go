package utils

import "time"

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay is the last instant before the following midnight.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// StartOfMonth truncates t to the first instant of its calendar month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// TrailingWindow returns [now-days+1 @ midnight, now] so that a 7-day
// window covers today plus the six preceding calendar days.
func TrailingWindow(now time.Time, days int) (time.Time, time.Time) {
	start := StartOfDay(now.AddDate(0, 0, -(days - 1)))
	return start, now
}

// ParseDateRange resolves optional ISO date bounds against defaults.
// Bounds are inclusive of the given instants.
func ParseDateRange(fromStr, toStr string, defaultFrom, defaultTo time.Time) (time.Time, time.Time, error) {
	from, to := defaultFrom, defaultTo

	if fromStr != "" {
		parsed, err := ParseISOTime(fromStr)
		if err != nil {
			return from, to, err
		}
		from = parsed
	}

	if toStr != "" {
		parsed, err := ParseISOTime(toStr)
		if err != nil {
			return from, to, err
		}
		to = parsed
	}

	return from, to, nil
}

// ParseISOTime accepts RFC 3339 timestamps and bare dates.
func ParseISOTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

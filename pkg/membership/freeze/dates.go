package freeze

import "time"

// AddDays advances a date by whole calendar days. Adding 30 days to
// 2025-02-01 yields 2025-03-03: day arithmetic, not elapsed hours, so DST
// shifts and month lengths fall out of the calendar.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// ComputeEndDate returns the freeze end date for an approval window.
func ComputeEndDate(start time.Time, days int) time.Time {
	return AddDays(start, days)
}

// ShouldExtendExpiration reports whether a membership expiring at expiredAt
// loses paid time to the freeze window [start, end] (inclusive on both
// sides). Only then does approval push expiredAt out by the frozen days.
func ShouldExtendExpiration(expiredAt, start, end time.Time) bool {
	return !expiredAt.Before(start) && !expiredAt.After(end)
}

package model

import "time"

// DateOnly truncates a time to its calendar date in UTC. All temporal
// window arithmetic in the aggregate works on whole days, so every
// reference date is normalized through here before comparison.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two times fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// dateWithin reports whether d lies in [from, to] inclusive, comparing
// calendar dates only.
func dateWithin(d, from, to time.Time) bool {
	day := DateOnly(d)
	return !day.Before(DateOnly(from)) && !day.After(DateOnly(to))
}

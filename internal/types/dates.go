package types

import "time"

// DayOf truncates t to its UTC civil day.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey formats t as the canonical per-day map key.
func DayKey(t time.Time) string {
	return DayOf(t).Format("2006-01-02")
}

// SameDay reports whether a and b fall on the same UTC civil day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// WeekStart returns the Sunday that opens t's calendar week.
func WeekStart(t time.Time) time.Time {
	day := DayOf(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

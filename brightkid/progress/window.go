package progress

import "time"

// All day math in this package is anchored to UTC calendar days, never
// server-local time. This keeps streaks and today-windows stable across
// deployments in different time zones.

// DayUTC truncates a timestamp to its UTC calendar day (midnight UTC).
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// TodayWindowUTC returns [start of today UTC, start of tomorrow UTC).
func TodayWindowUTC(now time.Time) (time.Time, time.Time) {
	start := DayUTC(now)
	return start, start.AddDate(0, 0, 1)
}

// WeekStartUTC returns the Sunday that starts the UTC week containing t.
func WeekStartUTC(t time.Time) time.Time {
	day := DayUTC(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekWindowUTC returns [Sunday 00:00 UTC, next Sunday 00:00 UTC).
func WeekWindowUTC(now time.Time) (time.Time, time.Time) {
	start := WeekStartUTC(now)
	return start, start.AddDate(0, 0, 7)
}

// AccuracyPct is round(100 * correct / completed), or 0 when nothing was
// completed. Always within [0, 100].
func AccuracyPct(correct, completed int) int {
	if completed <= 0 {
		return 0
	}
	pct := (100*correct + completed/2) / completed
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

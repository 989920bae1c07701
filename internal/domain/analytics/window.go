package analytics

import "time"

// Two windowing policies live side by side and must not be unified:
// the rolling trailing-day window (category and trend aggregation) and
// calendar-month grouping (insights). They answer different questions.

const dayFormat = "2006-01-02"

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// inRollingWindow reports whether date falls within the trailing
// windowDays calendar days of now, inclusive. The window has no upper
// bound: a future-dated expense counts, matching the unbounded
// date >= cutoff query the aggregates were built on.
func inRollingWindow(date, now time.Time, windowDays int) bool {
	cutoff := dayOf(now).AddDate(0, 0, -windowDays)
	return !dayOf(date).Before(cutoff)
}

// monthKey is the calendar-month identifier (YYYY-MM) used for exact
// month-boundary grouping.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// previousMonthKey shifts via the first of the month so that a late
// day-of-month cannot skip February and land two months back.
func previousMonthKey(now time.Time) string {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, -1, 0).Format("2006-01")
}

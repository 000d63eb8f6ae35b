package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"updatedAt"`
}

// DateRange is an inclusive calendar-date interval. Both bounds are
// day-granularity; time-of-day carries no meaning for aggregation.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on a day inside the range.
func (r DateRange) Contains(t time.Time) bool {
	day := DayOf(t)
	return !day.Before(DayOf(r.Start)) && !day.After(DayOf(r.End))
}

// DayOf truncates a timestamp to its calendar date at midnight UTC.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SingleDay builds a range collapsed to one calendar day.
func SingleDay(t time.Time) DateRange {
	day := DayOf(t)
	return DateRange{Start: day, End: day}
}

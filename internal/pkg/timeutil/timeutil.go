package timeutil

import (
	"math"
	"time"
)

// WorkDuration is the elapsed working time between a check-in and a
// check-out, broken down for display.
type WorkDuration struct {
	Hours      int
	Minutes    int
	TotalHours float64
}

// IsZero reports whether the duration is empty.
func (d WorkDuration) IsZero() bool {
	return d.Hours == 0 && d.Minutes == 0 && d.TotalHours == 0
}

// ParseTimestamp parses an ISO8601 timestamp. Accepts formats like
// "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00".
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}

// ComputeWorkDuration returns the elapsed duration between checkIn and
// checkOut. A missing or unparseable timestamp on either side yields a zero
// duration; a check-out before the check-in is clamped to zero. Invalid
// input never produces an error.
func ComputeWorkDuration(checkIn, checkOut string) WorkDuration {
	in, ok := ParseTimestamp(checkIn)
	if !ok {
		return WorkDuration{}
	}
	out, ok := ParseTimestamp(checkOut)
	if !ok {
		return WorkDuration{}
	}

	elapsed := out.Sub(in)
	if elapsed < 0 {
		return WorkDuration{}
	}

	totalHours := elapsed.Hours()
	hours := int(math.Floor(totalHours))
	minutes := int(math.Floor((totalHours - float64(hours)) * 60))

	return WorkDuration{
		Hours:      hours,
		Minutes:    minutes,
		TotalHours: totalHours,
	}
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the current calendar day.
func IsToday(t time.Time) bool {
	return SameDay(t, time.Now())
}

// WeekStart returns midnight on the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

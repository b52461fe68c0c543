package attendance

import "strings"

// Period is the query-time aggregation granularity for attendance.
type Period string

const (
	PeriodDay     Period = "Day"
	PeriodWeek    Period = "Week"
	PeriodMonth   Period = "Month"
	PeriodQuarter Period = "Quarter"
	PeriodYear    Period = "Year"
)

// Periods lists every recognized period value.
var Periods = []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}

// ParsePeriod matches s case-insensitively against the known periods and
// returns the canonical value. An empty string defaults to Day.
func ParsePeriod(s string) (Period, bool) {
	if s == "" {
		return PeriodDay, true
	}
	for _, p := range Periods {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return "", false
}

// Recognized attendance statuses. Anything else falls outside every counter.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
	StatusLeave   = "leave"
	StatusOnTime  = "ontime"
)

// Break is one pause within a working day.
type Break struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// RecordUser identifies the employee a record belongs to.
type RecordUser struct {
	ID string `json:"id"`
}

// Record is one employee's attendance on one day as returned by the office
// API. CheckIn and CheckOut are nullable ISO8601 timestamps; empty means the
// event has not happened.
type Record struct {
	Date         string     `json:"date"`
	CheckIn      string     `json:"checkIn"`
	CheckOut     string     `json:"checkOut"`
	Status       string     `json:"status"`
	IsSeated     bool       `json:"isSeated"`
	CurrentBreak *Break     `json:"currentBreak,omitempty"`
	Breaks       []Break    `json:"breaks,omitempty"`
	User         RecordUser `json:"user"`
}

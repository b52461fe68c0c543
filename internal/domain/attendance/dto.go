package attendance

import "github.com/officehub/insights-gateway-go/internal/pkg/validator"

// ========== QUERIES ==========

// SummaryQuery carries the query parameters of the period summary endpoint.
type SummaryQuery struct {
	Period string
	Date   string
}

func (q SummaryQuery) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := ParsePeriod(q.Period); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of Day, Week, Month, Quarter, Year",
		})
	}

	if q.Date != "" {
		if _, ok := validator.IsValidDate(q.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must follow YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeeklyQuery carries the query parameters of the weekly summary endpoint.
type WeeklyQuery struct {
	Date string
}

func (q WeeklyQuery) Validate() error {
	var errs validator.ValidationErrors

	if q.Date != "" {
		if _, ok := validator.IsValidDate(q.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must follow YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========== PERIOD SUMMARY ==========

// StatsResponse is the aggregated attendance summary for a period.
type StatsResponse struct {
	Present     int64  `json:"present"` // totalPresent + totalOnTime
	TotalAbsent int64  `json:"total_absent"`
	TotalLate   int64  `json:"total_late"`
	TotalLeave  int64  `json:"total_leave"`
	TotalOnTime int64  `json:"total_on_time"`
	TotalStaff  int64  `json:"total_staff"`
	Period      string `json:"period"`
	Date        string `json:"date"` // Format: "YYYY-MM-DD"
}

// ToResponse projects aggregated stats into the display shape.
func (s Stats) ToResponse(period Period, date string) StatsResponse {
	return StatsResponse{
		Present:     s.DisplayPresent(),
		TotalAbsent: s.TotalAbsent,
		TotalLate:   s.TotalLate,
		TotalLeave:  s.TotalLeave,
		TotalOnTime: s.TotalOnTime,
		TotalStaff:  s.TotalStaff,
		Period:      string(period),
		Date:        date,
	}
}

// ========== WEEKLY SUMMARY ==========

// DaySummary is one day's worked time within a weekly summary.
type DaySummary struct {
	Date       string  `json:"date"` // Format: "YYYY-MM-DD"
	Weekday    string  `json:"weekday"`
	Hours      int     `json:"hours"`
	Minutes    int     `json:"minutes"`
	TotalHours float64 `json:"total_hours"`
	Percent    int     `json:"percent"` // share of the 8-hour standard day
	Points     int     `json:"points"`
	Status     string  `json:"status,omitempty"`
	IsToday    bool    `json:"is_today,omitempty"`
}

// WeeklySummaryResponse is a per-day breakdown of worked time for one week.
type WeeklySummaryResponse struct {
	WeekStart   string       `json:"week_start"` // Monday, "YYYY-MM-DD"
	Days        []DaySummary `json:"days"`
	TotalHours  float64      `json:"total_hours"`
	TotalPoints int          `json:"total_points"`
}

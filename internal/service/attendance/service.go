package attendance

import (
	"context"
	"time"

	"github.com/officehub/insights-gateway-go/internal/client/officeapi"
	"github.com/officehub/insights-gateway-go/internal/domain/attendance"
	"github.com/officehub/insights-gateway-go/internal/domain/session"
	"github.com/officehub/insights-gateway-go/internal/pkg/timeutil"
)

// Upstream is the slice of the office API the attendance service needs.
type Upstream interface {
	ListAttendance(ctx context.Context, sess session.Session, period attendance.Period, date string) (officeapi.List[attendance.Record], error)
}

type AttendanceServiceImpl struct {
	upstream Upstream
}

func NewAttendanceService(upstream Upstream) attendance.Service {
	return &AttendanceServiceImpl{upstream: upstream}
}

// parseDate parses YYYY-MM-DD format, defaults to today
func parseDate(date string) time.Time {
	now := time.Now()
	if date == "" {
		return now
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return now
	}
	return parsed
}

// GetSummary fetches one period's records and aggregates the status counts.
func (s *AttendanceServiceImpl) GetSummary(ctx context.Context, sess session.Session, period, date string) (*attendance.StatsResponse, error) {
	p, ok := attendance.ParsePeriod(period)
	if !ok {
		p = attendance.PeriodDay
	}
	day := parseDate(date).Format("2006-01-02")

	list, err := s.upstream.ListAttendance(ctx, sess, p, day)
	if err != nil {
		return nil, err
	}

	stats := attendance.Aggregate(list.Items, p, list.PaginatedTotal())
	resp := stats.ToResponse(p, day)
	return &resp, nil
}

// GetWeeklySummary fetches the week's records and computes each day's worked
// duration, percentage of the standard day, and point score.
func (s *AttendanceServiceImpl) GetWeeklySummary(ctx context.Context, sess session.Session, date string) (*attendance.WeeklySummaryResponse, error) {
	weekStart := timeutil.WeekStart(parseDate(date))

	list, err := s.upstream.ListAttendance(ctx, sess, attendance.PeriodWeek, weekStart.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	// One record per day; index them by calendar day.
	byDay := make(map[string]attendance.Record, len(list.Items))
	for _, r := range list.Items {
		if day, ok := recordDay(r.Date); ok {
			if _, exists := byDay[day]; !exists {
				byDay[day] = r
			}
		}
	}

	resp := &attendance.WeeklySummaryResponse{
		WeekStart: weekStart.Format("2006-01-02"),
		Days:      make([]attendance.DaySummary, 0, 7),
	}

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		key := day.Format("2006-01-02")

		summary := attendance.DaySummary{
			Date:    key,
			Weekday: day.Weekday().String(),
			IsToday: timeutil.IsToday(day),
		}

		if r, ok := byDay[key]; ok {
			d := timeutil.ComputeWorkDuration(r.CheckIn, r.CheckOut)
			summary.Hours = d.Hours
			summary.Minutes = d.Minutes
			summary.TotalHours = d.TotalHours
			summary.Percent = attendance.WorkPercentage(d)
			summary.Points = attendance.WorkPoints(d)
			summary.Status = r.Status

			resp.TotalHours += d.TotalHours
			resp.TotalPoints += summary.Points
		}

		resp.Days = append(resp.Days, summary)
	}

	return resp, nil
}

// recordDay reduces a record's date field to a calendar day. The upstream
// serves either plain dates or full timestamps depending on the endpoint
// version.
func recordDay(s string) (string, bool) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02"), true
	}
	if t, ok := timeutil.ParseTimestamp(s); ok {
		return t.Format("2006-01-02"), true
	}
	return "", false
}

package http

import (
	"net/http"

	"github.com/officehub/insights-gateway-go/internal/domain/attendance"
	"github.com/officehub/insights-gateway-go/internal/domain/session"
	"github.com/officehub/insights-gateway-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	// GetSummary returns aggregated attendance counts for a period
	GetSummary(w http.ResponseWriter, r *http.Request)
	// GetWeeklySummary returns per-day worked durations for a week
	GetWeeklySummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// GetSummary handles GET /attendance/summary
func (h *attendanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	query := attendance.SummaryQuery{
		Period: r.URL.Query().Get("period"), // Day/Week/Month/Quarter/Year, default: Day
		Date:   r.URL.Query().Get("date"),   // format: YYYY-MM-DD, default: today
	}
	if err := query.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	sess := session.FromRequest(r)
	result, err := h.attendanceService.GetSummary(r.Context(), sess, query.Period, query.Date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWeeklySummary handles GET /attendance/weekly
func (h *attendanceHandlerImpl) GetWeeklySummary(w http.ResponseWriter, r *http.Request) {
	query := attendance.WeeklyQuery{
		Date: r.URL.Query().Get("date"), // any day inside the week, default: today
	}
	if err := query.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	sess := session.FromRequest(r)
	result, err := h.attendanceService.GetWeeklySummary(r.Context(), sess, query.Date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

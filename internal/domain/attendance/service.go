package attendance

import (
	"context"

	"github.com/officehub/insights-gateway-go/internal/domain/session"
)

// Service defines attendance summary operations.
type Service interface {
	// GetSummary returns aggregated attendance counts for a period.
	// period must be one of Day/Week/Month/Quarter/Year; date follows
	// "YYYY-MM-DD" and defaults to today.
	GetSummary(ctx context.Context, sess session.Session, period, date string) (*StatsResponse, error)

	// GetWeeklySummary returns per-day worked durations for the week
	// containing date (default: current week).
	GetWeeklySummary(ctx context.Context, sess session.Session, date string) (*WeeklySummaryResponse, error)
}

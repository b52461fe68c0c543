package dashboard

import (
	"context"

	"github.com/officehub/insights-gateway-go/internal/domain/session"
)

// Service defines the combined dashboard operation.
type Service interface {
	// GetDashboard fetches every dashboard resource concurrently and
	// aggregates them. A failed resource degrades to its zero section.
	GetDashboard(ctx context.Context, sess session.Session) (*DashboardResponse, error)
}

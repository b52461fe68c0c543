package task

import (
	"context"

	"github.com/officehub/insights-gateway-go/internal/domain/session"
)

// Service defines task statistics operations.
type Service interface {
	// GetSummary returns normalized task counts by status and priority.
	GetSummary(ctx context.Context, sess session.Session) (*Stats, error)
}

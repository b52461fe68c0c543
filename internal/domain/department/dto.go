package department

import (
	"context"

	"github.com/officehub/insights-gateway-go/internal/domain/session"
)

// NotApplicableName is rendered when no department can be selected.
const NotApplicableName = "N/A"

// BestResponse is the display shape of the best-performing department.
type BestResponse struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// ToResponse projects a score into its display shape.
func (s Score) ToResponse() BestResponse {
	return BestResponse{Name: s.Name, Points: s.Points}
}

// NotApplicable is the sentinel response used when there are no employees
// or no departments to rank.
func NotApplicable() BestResponse {
	return BestResponse{Name: NotApplicableName}
}

// Service defines the department performance operation.
type Service interface {
	// GetBest returns the department with the greatest summed monthly
	// points, falling back to headcount when no points exist anywhere.
	GetBest(ctx context.Context, sess session.Session) (*BestResponse, error)
}

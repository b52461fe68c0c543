package http

import (
	"net/http"

	"github.com/officehub/insights-gateway-go/internal/domain/dashboard"
	"github.com/officehub/insights-gateway-go/internal/domain/session"
	"github.com/officehub/insights-gateway-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns combined dashboard data
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sess := session.FromRequest(r)

	result, err := h.dashboardService.GetDashboard(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

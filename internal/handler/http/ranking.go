package http

import (
	"net/http"

	"github.com/officehub/insights-gateway-go/internal/domain/department"
	"github.com/officehub/insights-gateway-go/internal/domain/ranking"
	"github.com/officehub/insights-gateway-go/internal/domain/session"
	"github.com/officehub/insights-gateway-go/internal/handler/http/response"
	"github.com/officehub/insights-gateway-go/internal/pkg/validator"
)

type RankingHandler interface {
	// GetLeaderboard returns the top employees by monthly rank
	GetLeaderboard(w http.ResponseWriter, r *http.Request)
	// GetBestDepartment returns the top department by summed points
	GetBestDepartment(w http.ResponseWriter, r *http.Request)
}

type rankingHandlerImpl struct {
	rankingService    ranking.Service
	departmentService department.Service
}

func NewRankingHandler(rankingService ranking.Service, departmentService department.Service) RankingHandler {
	return &rankingHandlerImpl{
		rankingService:    rankingService,
		departmentService: departmentService,
	}
}

// GetLeaderboard handles GET /rankings/top
func (h *rankingHandlerImpl) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := validator.ParseLimit(r.URL.Query().Get("limit"), 5)
	if !ok {
		response.BadRequest(w, "limit must be a positive integer", nil)
		return
	}

	sess := session.FromRequest(r)
	result, err := h.rankingService.GetLeaderboard(r.Context(), sess, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetBestDepartment handles GET /rankings/best-department
func (h *rankingHandlerImpl) GetBestDepartment(w http.ResponseWriter, r *http.Request) {
	sess := session.FromRequest(r)
	result, err := h.departmentService.GetBest(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

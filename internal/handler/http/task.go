package http

import (
	"net/http"

	"github.com/officehub/insights-gateway-go/internal/domain/session"
	"github.com/officehub/insights-gateway-go/internal/domain/task"
	"github.com/officehub/insights-gateway-go/internal/handler/http/response"
)

type TaskHandler interface {
	// GetSummary returns normalized task counts by status and priority
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.Service
}

func NewTaskHandler(taskService task.Service) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

// GetSummary handles GET /tasks/summary
func (h *taskHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	sess := session.FromRequest(r)
	result, err := h.taskService.GetSummary(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package task

import (
	"context"

	"github.com/officehub/insights-gateway-go/internal/domain/session"
	"github.com/officehub/insights-gateway-go/internal/domain/task"
)

// Upstream is the slice of the office API the task service needs.
type Upstream interface {
	GetTaskStats(ctx context.Context, sess session.Session) (task.RawStats, error)
}

type TaskServiceImpl struct {
	upstream Upstream
}

func NewTaskService(upstream Upstream) task.Service {
	return &TaskServiceImpl{upstream: upstream}
}

// GetSummary fetches raw task statistics and zero-fills every bucket.
func (s *TaskServiceImpl) GetSummary(ctx context.Context, sess session.Session) (*task.Stats, error) {
	raw, err := s.upstream.GetTaskStats(ctx, sess)
	if err != nil {
		return nil, err
	}
	stats := task.Normalize(raw)
	return &stats, nil
}

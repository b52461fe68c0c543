package officeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/officehub/insights-gateway-go/internal/domain/attendance"
	"github.com/officehub/insights-gateway-go/internal/domain/department"
	"github.com/officehub/insights-gateway-go/internal/domain/ranking"
	"github.com/officehub/insights-gateway-go/internal/domain/session"
	"github.com/officehub/insights-gateway-go/internal/domain/task"
)

// ListAttendance fetches attendance records for a period. date follows
// "YYYY-MM-DD"; empty means the upstream default (today).
func (c *Client) ListAttendance(ctx context.Context, sess session.Session, period attendance.Period, date string) (List[attendance.Record], error) {
	query := url.Values{}
	query.Set("period", string(period))
	if date != "" {
		query.Set("date", date)
	}

	data, err := c.get(ctx, sess, "/api/v1/attendance", query)
	if err != nil {
		return List[attendance.Record]{}, err
	}
	return DecodeList[attendance.Record](data)
}

// ListRankings fetches the ranked-employee list.
func (c *Client) ListRankings(ctx context.Context, sess session.Session) (List[ranking.RankedEmployee], error) {
	data, err := c.get(ctx, sess, "/api/v1/employees/rankings", nil)
	if err != nil {
		return List[ranking.RankedEmployee]{}, err
	}
	return DecodeList[ranking.RankedEmployee](data)
}

// ListDepartments fetches the department master list.
func (c *Client) ListDepartments(ctx context.Context, sess session.Session) (List[department.Department], error) {
	data, err := c.get(ctx, sess, "/api/v1/departments", nil)
	if err != nil {
		return List[department.Department]{}, err
	}
	return DecodeList[department.Department](data)
}

// GetTaskStats fetches raw task statistics.
func (c *Client) GetTaskStats(ctx context.Context, sess session.Session) (task.RawStats, error) {
	data, err := c.get(ctx, sess, "/api/v1/tasks/stats", nil)
	if err != nil {
		return task.RawStats{}, err
	}

	var raw task.RawStats
	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return task.RawStats{}, fmt.Errorf("failed to decode task stats: %w", err)
		}
	}
	return raw, nil
}

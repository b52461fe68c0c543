package dashboard

import (
	"github.com/officehub/insights-gateway-go/internal/domain/attendance"
	"github.com/officehub/insights-gateway-go/internal/domain/department"
	"github.com/officehub/insights-gateway-go/internal/domain/ranking"
	"github.com/officehub/insights-gateway-go/internal/domain/task"
)

// DashboardResponse is the combined payload for the main dashboard page.
// Each section is computed independently; a section whose upstream fetch
// failed is present with zero values rather than blocking the page.
type DashboardResponse struct {
	Attendance     attendance.StatsResponse   `json:"attendance"`
	Leaderboard    []ranking.LeaderboardEntry `json:"leaderboard"`
	BestDepartment department.BestResponse    `json:"best_department"`
	Tasks          task.Stats                 `json:"tasks"`
}

package ranking

import (
	"context"
	"math"

	"github.com/officehub/insights-gateway-go/internal/domain/session"
)

// LeaderboardEntry is the display projection of a ranked employee.
type LeaderboardEntry struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Department   *string `json:"department,omitempty"`
	MonthlyPoint int     `json:"monthly_point"` // rounded to the nearest integer
	MonthlyRank  int     `json:"monthly_rank"`
	DailyPoint   int     `json:"daily_point"`
	DailyRank    int     `json:"daily_rank"`
	RankLabel    string  `json:"rank_label"` // "1st", "2nd", ...
	Badge        string  `json:"badge"`      // styling variant
}

// ToEntry projects a ranked employee into its leaderboard shape.
func (e RankedEmployee) ToEntry() LeaderboardEntry {
	return LeaderboardEntry{
		ID:           e.ID,
		Name:         e.FullName(),
		Department:   e.Department,
		MonthlyPoint: int(math.Round(e.MonthlyPoint)),
		MonthlyRank:  e.MonthlyRank,
		DailyPoint:   int(math.Round(e.DailyPoint)),
		DailyRank:    e.DailyRank,
		RankLabel:    OrdinalLabel(e.MonthlyRank),
		Badge:        BadgeVariant(e.MonthlyRank),
	}
}

// Service defines the leaderboard operation.
type Service interface {
	// GetLeaderboard returns the top employees by monthly rank. limit
	// defaults to 5 and is capped at 100.
	GetLeaderboard(ctx context.Context, sess session.Session, limit int) ([]LeaderboardEntry, error)
}

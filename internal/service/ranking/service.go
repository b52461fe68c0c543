package ranking

import (
	"context"

	"github.com/officehub/insights-gateway-go/internal/client/officeapi"
	"github.com/officehub/insights-gateway-go/internal/domain/ranking"
	"github.com/officehub/insights-gateway-go/internal/domain/session"
)

const (
	defaultLeaderboardSize = 5
	maxLeaderboardSize     = 100
)

// Upstream is the slice of the office API the ranking service needs.
type Upstream interface {
	ListRankings(ctx context.Context, sess session.Session) (officeapi.List[ranking.RankedEmployee], error)
}

type RankingServiceImpl struct {
	upstream Upstream
}

func NewRankingService(upstream Upstream) ranking.Service {
	return &RankingServiceImpl{upstream: upstream}
}

// GetLeaderboard returns the top employees ordered by monthly rank.
func (s *RankingServiceImpl) GetLeaderboard(ctx context.Context, sess session.Session, limit int) ([]ranking.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	list, err := s.upstream.ListRankings(ctx, sess)
	if err != nil {
		return nil, err
	}

	top := ranking.TopN(list.Items, limit)
	entries := make([]ranking.LeaderboardEntry, 0, len(top))
	for _, e := range top {
		entries = append(entries, e.ToEntry())
	}
	return entries, nil
}

package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/officehub/insights-gateway-go/internal/client/officeapi"
	"github.com/officehub/insights-gateway-go/internal/domain/attendance"
	"github.com/officehub/insights-gateway-go/internal/domain/dashboard"
	"github.com/officehub/insights-gateway-go/internal/domain/department"
	"github.com/officehub/insights-gateway-go/internal/domain/ranking"
	"github.com/officehub/insights-gateway-go/internal/domain/session"
	"github.com/officehub/insights-gateway-go/internal/domain/task"
)

const leaderboardSize = 5

// Upstream is the slice of the office API the dashboard needs.
type Upstream interface {
	ListAttendance(ctx context.Context, sess session.Session, period attendance.Period, date string) (officeapi.List[attendance.Record], error)
	ListRankings(ctx context.Context, sess session.Session) (officeapi.List[ranking.RankedEmployee], error)
	ListDepartments(ctx context.Context, sess session.Session) (officeapi.List[department.Department], error)
	GetTaskStats(ctx context.Context, sess session.Session) (task.RawStats, error)
}

type DashboardServiceImpl struct {
	upstream Upstream
	logger   *slog.Logger
}

func NewDashboardService(upstream Upstream, logger *slog.Logger) dashboard.Service {
	return &DashboardServiceImpl{
		upstream: upstream,
		logger:   logger,
	}
}

// userID pulls the caller's id from JWT claims for log attribution. The
// upstream enforces authorization, so a missing claim is not an error here.
func (s *DashboardServiceImpl) userID(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	id, _ := claims["user_id"].(string)
	return id
}

// GetDashboard fetches all four dashboard resources in parallel and
// aggregates them. The page never blocks on one failing resource: a failed
// fetch is logged and its section degrades to zero values. Only context
// cancellation aborts the whole fan-out.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, sess session.Session) (*dashboard.DashboardResponse, error) {
	today := time.Now().Format("2006-01-02")
	log := s.logger.With(slog.String("user_id", s.userID(ctx)))

	var (
		attendanceList  officeapi.List[attendance.Record]
		rankingList     officeapi.List[ranking.RankedEmployee]
		departmentList  officeapi.List[department.Department]
		rawTasks        task.RawStats
		rankingsFailed  bool
		departmentsDown bool
	)

	degrade := func(gCtx context.Context, resource string, err error) error {
		if gCtx.Err() != nil {
			return gCtx.Err()
		}
		log.WarnContext(gCtx, "dashboard resource unavailable, rendering empty section",
			slog.String("resource", resource),
			slog.Any("error", err),
		)
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.upstream.ListAttendance(gCtx, sess, attendance.PeriodDay, today)
		if err != nil {
			return degrade(gCtx, "attendance", err)
		}
		attendanceList = list
		return nil
	})

	g.Go(func() error {
		list, err := s.upstream.ListRankings(gCtx, sess)
		if err != nil {
			rankingsFailed = true
			return degrade(gCtx, "rankings", err)
		}
		rankingList = list
		return nil
	})

	g.Go(func() error {
		list, err := s.upstream.ListDepartments(gCtx, sess)
		if err != nil {
			departmentsDown = true
			return degrade(gCtx, "departments", err)
		}
		departmentList = list
		return nil
	})

	g.Go(func() error {
		raw, err := s.upstream.GetTaskStats(gCtx, sess)
		if err != nil {
			return degrade(gCtx, "tasks", err)
		}
		rawTasks = raw
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := attendance.Aggregate(attendanceList.Items, attendance.PeriodDay, attendanceList.PaginatedTotal())

	top := ranking.TopN(rankingList.Items, leaderboardSize)
	leaderboard := make([]ranking.LeaderboardEntry, 0, len(top))
	for _, e := range top {
		leaderboard = append(leaderboard, e.ToEntry())
	}

	best := department.NotApplicable()
	if !rankingsFailed && !departmentsDown {
		if score, ok := department.Best(rankingList.Items, departmentList.Items); ok {
			best = score.ToResponse()
		}
	}

	return &dashboard.DashboardResponse{
		Attendance:     stats.ToResponse(attendance.PeriodDay, today),
		Leaderboard:    leaderboard,
		BestDepartment: best,
		Tasks:          task.Normalize(rawTasks),
	}, nil
}

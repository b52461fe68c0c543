package department

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/officehub/insights-gateway-go/internal/client/officeapi"
	"github.com/officehub/insights-gateway-go/internal/domain/department"
	"github.com/officehub/insights-gateway-go/internal/domain/ranking"
	"github.com/officehub/insights-gateway-go/internal/domain/session"
)

// Upstream is the slice of the office API the department service needs.
type Upstream interface {
	ListRankings(ctx context.Context, sess session.Session) (officeapi.List[ranking.RankedEmployee], error)
	ListDepartments(ctx context.Context, sess session.Session) (officeapi.List[department.Department], error)
}

type DepartmentServiceImpl struct {
	upstream Upstream
}

func NewDepartmentService(upstream Upstream) department.Service {
	return &DepartmentServiceImpl{upstream: upstream}
}

// GetBest fetches rankings and departments in parallel and selects the top
// department. Unlike the combined dashboard, this endpoint serves nothing
// else, so a failed fetch propagates instead of degrading.
func (s *DepartmentServiceImpl) GetBest(ctx context.Context, sess session.Session) (*department.BestResponse, error) {
	var (
		employees   officeapi.List[ranking.RankedEmployee]
		departments officeapi.List[department.Department]
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.upstream.ListRankings(gCtx, sess)
		return err
	})
	g.Go(func() error {
		var err error
		departments, err = s.upstream.ListDepartments(gCtx, sess)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := department.NotApplicable()
	if score, ok := department.Best(employees.Items, departments.Items); ok {
		resp = score.ToResponse()
	}
	return &resp, nil
}

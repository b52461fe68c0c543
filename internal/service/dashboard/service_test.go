package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officehub/insights-gateway-go/internal/client/officeapi"
	"github.com/officehub/insights-gateway-go/internal/domain/attendance"
	"github.com/officehub/insights-gateway-go/internal/domain/department"
	"github.com/officehub/insights-gateway-go/internal/domain/ranking"
	"github.com/officehub/insights-gateway-go/internal/domain/session"
	"github.com/officehub/insights-gateway-go/internal/domain/task"
)

type fakeUpstream struct {
	attendance     officeapi.List[attendance.Record]
	attendanceErr  error
	rankings       officeapi.List[ranking.RankedEmployee]
	rankingsErr    error
	departments    officeapi.List[department.Department]
	departmentsErr error
	taskStats      task.RawStats
	taskStatsErr   error
}

func (f *fakeUpstream) ListAttendance(ctx context.Context, sess session.Session, period attendance.Period, date string) (officeapi.List[attendance.Record], error) {
	return f.attendance, f.attendanceErr
}

func (f *fakeUpstream) ListRankings(ctx context.Context, sess session.Session) (officeapi.List[ranking.RankedEmployee], error) {
	return f.rankings, f.rankingsErr
}

func (f *fakeUpstream) ListDepartments(ctx context.Context, sess session.Session) (officeapi.List[department.Department], error) {
	return f.departments, f.departmentsErr
}

func (f *fakeUpstream) GetTaskStats(ctx context.Context, sess session.Session) (task.RawStats, error) {
	return f.taskStats, f.taskStatsErr
}

func strptr(s string) *string { return &s }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fullFake() *fakeUpstream {
	raw := task.RawStats{Total: 3}
	raw.Stats.Status = map[string]int64{"Completed": 3}

	return &fakeUpstream{
		attendance: officeapi.List[attendance.Record]{
			Items: []attendance.Record{
				{Status: "present", User: attendance.RecordUser{ID: "e1"}},
				{Status: "ontime", User: attendance.RecordUser{ID: "e2"}},
				{Status: "late", User: attendance.RecordUser{ID: "e3"}},
			},
		},
		rankings: officeapi.List[ranking.RankedEmployee]{
			Items: []ranking.RankedEmployee{
				{ID: "e2", FirstName: "Bea", MonthlyRank: 2, MonthlyPoint: 200, Department: strptr("Sales")},
				{ID: "e1", FirstName: "Ada", MonthlyRank: 1, MonthlyPoint: 500, Department: strptr("Engineering")},
			},
		},
		departments: officeapi.List[department.Department]{
			Items: []department.Department{
				{ID: "d1", Name: "Engineering"},
				{ID: "d2", Name: "Sales"},
			},
		},
		taskStats: raw,
	}
}

func TestGetDashboard_CombinesAllSections(t *testing.T) {
	svc := NewDashboardService(fullFake(), discardLogger())

	got, err := svc.GetDashboard(context.Background(), session.Session{Token: "tok"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), got.Attendance.Present) // present + ontime
	assert.Equal(t, int64(1), got.Attendance.TotalLate)
	assert.Equal(t, int64(3), got.Attendance.TotalStaff)

	require.Len(t, got.Leaderboard, 2)
	assert.Equal(t, "Ada", got.Leaderboard[0].Name)
	assert.Equal(t, "1st", got.Leaderboard[0].RankLabel)

	assert.Equal(t, "Engineering", got.BestDepartment.Name)
	assert.Equal(t, 500, got.BestDepartment.Points)

	assert.Equal(t, int64(3), got.Tasks.Total)
	assert.Equal(t, int64(3), got.Tasks.Status.Completed)
}

func TestGetDashboard_FailedResourceDegradesToEmpty(t *testing.T) {
	fake := fullFake()
	fake.taskStatsErr = errors.New("boom")

	svc := NewDashboardService(fake, discardLogger())
	got, err := svc.GetDashboard(context.Background(), session.Session{Token: "tok"})
	require.NoError(t, err, "one failed resource must not fail the page")

	// tasks section is zero, everything else still populated
	assert.Equal(t, task.Stats{}, got.Tasks)
	assert.NotEmpty(t, got.Leaderboard)
	assert.Equal(t, "Engineering", got.BestDepartment.Name)
}

func TestGetDashboard_RankingsFailureDropsDependentSections(t *testing.T) {
	fake := fullFake()
	fake.rankingsErr = officeapi.ErrUnavailable

	svc := NewDashboardService(fake, discardLogger())
	got, err := svc.GetDashboard(context.Background(), session.Session{Token: "tok"})
	require.NoError(t, err)

	assert.Empty(t, got.Leaderboard)
	// best department depends on rankings: degrade to the sentinel
	assert.Equal(t, department.NotApplicableName, got.BestDepartment.Name)
	assert.Equal(t, 0, got.BestDepartment.Points)
	// independent sections survive
	assert.Equal(t, int64(2), got.Attendance.Present)
}

func TestGetDashboard_AllResourcesFailedStillRenders(t *testing.T) {
	fake := &fakeUpstream{
		attendanceErr:  errors.New("down"),
		rankingsErr:    errors.New("down"),
		departmentsErr: errors.New("down"),
		taskStatsErr:   errors.New("down"),
	}

	svc := NewDashboardService(fake, discardLogger())
	got, err := svc.GetDashboard(context.Background(), session.Session{Token: "tok"})
	require.NoError(t, err)

	assert.Equal(t, int64(0), got.Attendance.Present)
	assert.Empty(t, got.Leaderboard)
	assert.Equal(t, department.NotApplicableName, got.BestDepartment.Name)
	assert.Equal(t, task.Stats{}, got.Tasks)
}

func TestGetDashboard_ContextCancellationAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := fullFake()
	fake.attendanceErr = context.Canceled

	svc := NewDashboardService(fake, discardLogger())
	_, err := svc.GetDashboard(ctx, session.Session{Token: "tok"})
	assert.ErrorIs(t, err, context.Canceled)
}

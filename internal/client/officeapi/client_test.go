package officeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officehub/insights-gateway-go/internal/domain/attendance"
	"github.com/officehub/insights-gateway-go/internal/domain/session"
)

const testToken = "test-access-token"

func testSession() session.Session {
	return session.Session{Token: testToken}
}

func TestClient_ForwardsSessionAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID, gotPeriod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotPeriod = r.URL.Query().Get("period")
		w.Write([]byte(`{"ok": true, "data": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.ListAttendance(context.Background(), testSession(), attendance.PeriodDay, "")
	require.NoError(t, err)

	assert.Equal(t, "Bearer "+testToken, gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "Day", gotPeriod)
}

func TestClient_UnauthorizedUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok": false, "message": "token expired"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.ListRankings(context.Background(), testSession())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"ok": false, "code": "DB_DOWN", "message": "storage offline"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.ListDepartments(context.Background(), testSession())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "DB_DOWN")
}

func TestClient_RejectedEnvelope(t *testing.T) {
	// 200 with ok=false is still a failed resource.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "message": "nope"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.GetTaskStats(context.Background(), testSession())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client := NewClient(srv.URL, 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.ListRankings(ctx, testSession())
	assert.True(t, errors.Is(err, context.Canceled), "want context.Canceled, got %v", err)
}

func TestClient_GetTaskStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tasks/stats", r.URL.Path)
		w.Write([]byte(`{"ok": true, "data": {"total": 9, "stats": {"status": {"Completed": 4}, "priority": {"High": 2}}}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	raw, err := client.GetTaskStats(context.Background(), testSession())
	require.NoError(t, err)

	assert.Equal(t, int64(9), raw.Total)
	assert.Equal(t, int64(4), raw.Stats.Status["Completed"])
	assert.Equal(t, int64(2), raw.Stats.Priority["High"])
}

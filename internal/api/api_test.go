package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpetrucci/hackfest/internal/api"
	"github.com/dpetrucci/hackfest/internal/api/response"
	"github.com/dpetrucci/hackfest/internal/factory"
	"github.com/dpetrucci/hackfest/internal/metrics"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		AuthService:  app.AuthService,
		EventService: app.EventService,
		Clock:        app.MockClock,
		Metrics:      metrics.New(),
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// register creates an organizer account and returns a session token
func (ts *testServer) register(t *testing.T, name string) string {
	t.Helper()

	body := map[string]any{
		"id":       1,
		"name":     name,
		"surname":  "Rossi",
		"password": "hunter22",
	}
	rr := ts.request(http.MethodPost, "/api/v1/organizers/register", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionToken)
	return resp.SessionToken
}

// createEvent creates the standard test event starting 2025-05-15
func (ts *testServer) createEvent(t *testing.T, token string) {
	t.Helper()

	body := map[string]any{
		"title":         "Spring Hackfest",
		"venue":         "Milan Campus",
		"start_date":    "2025-05-15",
		"max_team_size": 4,
	}
	rr := ts.request(http.MethodPost, "/api/v1/event", body, token)
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	token := ts.register(t, "dana")

	// Login with the same credentials
	loginBody := map[string]string{
		"name":     "dana",
		"password": "hunter22",
	}
	rr := ts.request(http.MethodPost, "/api/v1/organizers/login", loginBody, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	assert.Equal(t, "dana", loginResp.Organizer.Name)
	assert.NotEqual(t, token, loginResp.SessionToken)
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)

	token := ts.register(t, "dana")

	rr := ts.request(http.MethodGet, "/api/v1/organizers/me", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var me response.Organizer
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	assert.Equal(t, "dana", me.Name)
}

func TestCreateEventRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"title":         "Spring Hackfest",
		"venue":         "Milan Campus",
		"start_date":    "2025-05-15",
		"max_team_size": 4,
	}
	rr := ts.request(http.MethodPost, "/api/v1/event", body, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestEventStatus(t *testing.T) {
	ts := newTestServer(t)

	token := ts.register(t, "dana")
	ts.createEvent(t, token)

	rr := ts.request(http.MethodGet, "/api/v1/event?date=2025-05-09", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var status response.EventStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, "Spring Hackfest", status.Title)
	assert.Equal(t, "2025-05-15", status.StartDate)
	assert.Equal(t, "2025-05-19", status.EndDate)
	assert.Equal(t, "before_registration", status.Phase)
}

func TestStatusWithoutEvent(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/event", nil, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "NO_EVENT")
}

func TestRegistrationFlow(t *testing.T) {
	ts := newTestServer(t)

	token := ts.register(t, "dana")
	ts.createEvent(t, token)

	for i := 1; i <= 3; i++ {
		body := map[string]any{
			"id":          100 + i,
			"given_name":  fmt.Sprintf("Judge%d", i),
			"family_name": fmt.Sprintf("Verdi%d", i),
			"email":       fmt.Sprintf("judge%d@example.com", i),
		}
		rr := ts.request(http.MethodPost, "/api/v1/event/judges", body, token)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	// Opening outside the window fails
	rr := ts.request(http.MethodPost, "/api/v1/event/registrations/open?date=2025-05-09", nil, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Opening inside the window succeeds
	rr = ts.request(http.MethodPost, "/api/v1/event/registrations/open?date=2025-05-11", nil, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	// A participant registers
	body := map[string]any{
		"id":          1,
		"given_name":  "Sam",
		"family_name": "Bianchi",
		"email":       "sam@example.com",
	}
	rr = ts.request(http.MethodPost, "/api/v1/event/participants?date=2025-05-11", body, token)
	assert.Equal(t, http.StatusCreated, rr.Code)

	// The dead zone rejects late registrations
	body["id"] = 2
	rr = ts.request(http.MethodPost, "/api/v1/event/participants?date=2025-05-13", body, token)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Listing shows the one who made it
	rr = ts.request(http.MethodGet, "/api/v1/event/participants", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var participants []response.Participant
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &participants))
	assert.Len(t, participants, 1)
}

func TestFullLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	token := ts.register(t, "dana")
	ts.createEvent(t, token)

	// Panel of three judges
	for i := 1; i <= 3; i++ {
		body := map[string]any{
			"id":          100 + i,
			"given_name":  fmt.Sprintf("Judge%d", i),
			"family_name": fmt.Sprintf("Verdi%d", i),
			"email":       fmt.Sprintf("judge%d@example.com", i),
		}
		rr := ts.request(http.MethodPost, "/api/v1/event/judges", body, token)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	// Registrations and three teams of three
	rr := ts.request(http.MethodPost, "/api/v1/event/registrations/open?date=2025-05-11", nil, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	for i := 1; i <= 9; i++ {
		body := map[string]any{
			"id":          i,
			"given_name":  fmt.Sprintf("Sam%d", i),
			"family_name": fmt.Sprintf("Bianchi%d", i),
			"email":       fmt.Sprintf("sam%d@example.com", i),
		}
		rr = ts.request(http.MethodPost, "/api/v1/event/participants?date=2025-05-11", body, token)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	for i, name := range []string{"Rocket", "Comet", "Nova"} {
		body := map[string]any{
			"name":       name,
			"member_ids": []int{i*3 + 1, i*3 + 2, i*3 + 3},
		}
		rr = ts.request(http.MethodPost, "/api/v1/event/teams?date=2025-05-11", body, token)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	// Publish problem and enable submissions on day one
	problem := map[string]string{"text": "Build a delivery drone scheduler"}
	rr = ts.request(http.MethodPut, "/api/v1/event/problem?date=2025-05-15", problem, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/event/submissions/enable?date=2025-05-15", nil, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	// Rocket submits a document and the panel grades it
	ts.app.MockRandom.QueueIntn(4, 5, 6) // scores 5, 6, 7
	doc := map[string]string{"content": "architecture sketch"}
	rr = ts.request(http.MethodPost, "/api/v1/event/teams/1/documents?date=2025-05-15", doc, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var review response.DocumentReview
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &review))
	assert.Equal(t, 6, review.Grade)
	assert.Len(t, review.Scores, 3)

	// One manual vote, simulate the rest on the last day
	vote := map[string]any{"judge_id": 101, "team_id": 1, "score": 9}
	rr = ts.request(http.MethodPost, "/api/v1/event/votes?date=2025-05-19", vote, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/event/votes/simulate?date=2025-05-19", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"filled":8`)

	// Ranking is public
	rr = ts.request(http.MethodGet, "/api/v1/event/ranking?date=2025-05-19", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var ranking []response.TeamScore
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ranking))
	require.Len(t, ranking, 3)
	assert.Equal(t, 1, ranking[0].Rank)

	// So is the text report
	rr = ts.request(http.MethodGet, "/api/v1/event/ranking/report?date=2025-05-19", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "FINAL RANKING")
}

func TestVoteBeforeLastDayRejected(t *testing.T) {
	ts := newTestServer(t)

	token := ts.register(t, "dana")
	ts.createEvent(t, token)

	vote := map[string]any{"judge_id": 101, "team_id": 1, "score": 9}
	rr := ts.request(http.MethodPost, "/api/v1/event/votes?date=2025-05-16", vote, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "PHASE_VIOLATION")
}

func TestBadDateParam(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/event?date=tomorrow", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpetrucci/hackfest/internal/api"
	"github.com/dpetrucci/hackfest/internal/factory"
	"github.com/dpetrucci/hackfest/internal/metrics"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "hackctl-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/hackctl")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		AuthService:  app.AuthService,
		EventService: app.EventService,
		Clock:        app.Clock,
		Metrics:      metrics.New(),
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type authResponse struct {
	Organizer struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Surname string `json:"surname"`
	} `json:"organizer"`
	SessionToken string `json:"session_token"`
}

type eventStatusResponse struct {
	Title              string `json:"title"`
	Venue              string `json:"venue"`
	Phase              string `json:"phase"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	RegistrationsOpen  bool   `json:"registrations_open"`
	SubmissionsEnabled bool   `json:"submissions_enabled"`
	JudgeCount         int    `json:"judge_count"`
	TeamCount          int    `json:"team_count"`
}

type teamResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Members []struct {
		ID int `json:"id"`
	} `json:"members"`
	Documents int `json:"documents"`
}

type reviewResponse struct {
	TeamID int `json:"team_id"`
	Grade  int `json:"grade"`
	Scores []struct {
		JudgeID int `json:"judge_id"`
		Score   int `json:"score"`
	} `json:"scores"`
}

type rankingRow struct {
	Rank   int     `json:"rank"`
	TeamID int     `json:"team_id"`
	Name   string  `json:"name"`
	Total  float64 `json:"composite"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_OrganizerCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Register
	output, err := cli.run("organizer", "register",
		"--id", "1", "--name", "dana", "--surname", "Rossi", "--pass", "hunter22")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "dana", authResp.Organizer.Name)
	assert.NotEmpty(t, authResp.SessionToken)

	// Get me (token should be saved in token file)
	output, err = cli.run("organizer", "me")
	require.NoError(t, err, "output: %s", output)

	var me struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, "dana", me.Name)

	// Login again
	output, err = cli.run("organizer", "login", "--name", "dana", "--pass", "hunter22")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.NotEmpty(t, authResp.SessionToken)
}

func TestCLI_FullEventFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Organizer registers and creates the event
	output, err := cli.run("organizer", "register",
		"--id", "1", "--name", "dana", "--surname", "Rossi", "--pass", "hunter22")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("event", "create",
		"--title", "Spring Hackfest", "--venue", "Milan Campus",
		"--start", "2025-05-15", "--max-team-size", "4")
	require.NoError(t, err, "output: %s", output)

	// Recruit the panel
	for i := 1; i <= 3; i++ {
		output, err = cli.run("judge", "add",
			"--id", fmt.Sprintf("%d", 100+i),
			"--given-name", fmt.Sprintf("Judge%d", i),
			"--family-name", fmt.Sprintf("Verdi%d", i),
			"--email", fmt.Sprintf("judge%d@example.com", i))
		require.NoError(t, err, "output: %s", output)
	}

	// Open registrations in the window
	output, err = cli.run("event", "registrations", "open", "--date", "2025-05-11")
	require.NoError(t, err, "output: %s", output)

	// Register nine participants and form three teams
	for i := 1; i <= 9; i++ {
		output, err = cli.run("participant", "register", "--date", "2025-05-11",
			"--id", fmt.Sprintf("%d", i),
			"--given-name", fmt.Sprintf("Sam%d", i),
			"--family-name", fmt.Sprintf("Bianchi%d", i),
			"--email", fmt.Sprintf("sam%d@example.com", i))
		require.NoError(t, err, "output: %s", output)
	}

	for i, name := range []string{"Rocket", "Comet", "Nova"} {
		members := fmt.Sprintf("%d,%d,%d", i*3+1, i*3+2, i*3+3)
		output, err = cli.run("team", "add", "--date", "2025-05-11",
			"--name", name, "--members", members)
		require.NoError(t, err, "output: %s", output)

		var team teamResponse
		require.NoError(t, json.Unmarshal([]byte(output), &team))
		assert.Equal(t, i+1, team.ID)
		assert.Len(t, team.Members, 3)
	}

	// Day one: publish the problem and enable submissions
	output, err = cli.run("event", "problem", "--date", "2025-05-15",
		"--text", "Build a delivery drone scheduler")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("event", "submissions", "enable", "--date", "2025-05-15")
	require.NoError(t, err, "output: %s", output)

	// Rocket submits a document and gets it graded
	output, err = cli.run("team", "submit", "1", "--date", "2025-05-15",
		"--content", "architecture sketch")
	require.NoError(t, err, "output: %s", output)

	var review reviewResponse
	require.NoError(t, json.Unmarshal([]byte(output), &review))
	assert.Equal(t, 1, review.TeamID)
	assert.Len(t, review.Scores, 3)
	assert.GreaterOrEqual(t, review.Grade, 1)
	assert.LessOrEqual(t, review.Grade, 10)

	// Last day: one manual vote, simulate the rest
	output, err = cli.run("vote", "cast", "--date", "2025-05-19",
		"--judge", "101", "--team", "1", "--score", "9")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("vote", "simulate", "--date", "2025-05-19")
	require.NoError(t, err, "output: %s", output)

	var msgResp messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msgResp))
	assert.Contains(t, msgResp.Message, "Filled 8")

	// Final ranking covers all three teams
	output, err = cli.run("ranking", "--date", "2025-05-19")
	require.NoError(t, err, "output: %s", output)

	var ranking []rankingRow
	require.NoError(t, json.Unmarshal([]byte(output), &ranking))
	require.Len(t, ranking, 3)
	assert.Equal(t, 1, ranking[0].Rank)

	// Status reflects the field
	output, err = cli.run("event", "status", "--date", "2025-05-16")
	require.NoError(t, err, "output: %s", output)

	var status eventStatusResponse
	require.NoError(t, json.Unmarshal([]byte(output), &status))
	assert.Equal(t, "during_event", status.Phase)
	assert.Equal(t, 3, status.JudgeCount)
	assert.Equal(t, 3, status.TeamCount)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Commands without auth are rejected
	output, err := cli.run("organizer", "me")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "unauthorized")

	// Status before any event exists
	output, err = cli.run("organizer", "register",
		"--id", "1", "--name", "dana", "--surname", "Rossi", "--pass", "hunter22")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("event", "status")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not been created")

	// Registrations cannot open before the panel is recruited
	output, err = cli.run("event", "create",
		"--title", "Spring Hackfest", "--venue", "Milan Campus",
		"--start", "2025-05-15", "--max-team-size", "4")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("event", "registrations", "open", "--date", "2025-05-09")
	assert.Error(t, err)
}

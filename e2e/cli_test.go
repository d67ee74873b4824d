package e2e_test

import (
	"context"
	"encoding/json"
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

	"github.com/mcoot/vocify/internal/api"
	"github.com/mcoot/vocify/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath  string
	serverURL   string
	sessionFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "vocify-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/vocify")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath:  binaryPath,
		serverURL:   serverURL,
		sessionFile: filepath.Join(t.TempDir(), "session"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--session-file", r.sessionFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) play(t *testing.T, input string) string {
	t.Helper()

	cmd := exec.Command(r.binaryPath, "play", "--ephemeral", "--no-color")
	cmd.Stdin = strings.NewReader(input)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", string(output))
	return string(output)
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

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Create application with the built-in word lists
	cfg := factory.Config{Logger: logger, SessionTTL: time.Hour}
	app, err := factory.New(cfg)
	require.NoError(t, err)
	require.NoError(t, app.Load(context.Background(), cfg))

	router := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Sessions:   app.Sessions,
		HighScores: app.HighScores,
	})
	server := api.NewServer(router, api.DefaultServerConfig(), logger)

	go func() {
		if err := server.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + listener.Addr().String()
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			_ = server.Shutdown(context.Background())
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
type sessionResponse struct {
	SessionID string `json:"session_id"`
	Round     struct {
		Root     string   `json:"root"`
		Accepted []string `json:"accepted"`
		Rejected []string `json:"rejected"`
		Score    int      `json:"score"`
	} `json:"round"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Title   string `json:"title"`
		Root    string `json:"root"`
	} `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
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

func TestCLI_RemoteRound(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("round", "start")
	require.NoError(t, err, "output: %s", output)

	var sess sessionResponse
	require.NoError(t, json.Unmarshal([]byte(output), &sess))
	require.NotEmpty(t, sess.SessionID)
	require.NotEmpty(t, sess.Round.Root)

	// The root word itself never counts
	output, err = cli.run("round", "submit", sess.Round.Root)
	require.Error(t, err)

	var rejection errorResponse
	require.NoError(t, json.Unmarshal([]byte(output), &rejection), "output: %s", output)
	assert.Equal(t, "UNRECOGNIZED_WORD", rejection.Error.Code)
	assert.Equal(t, "Word not recognized", rejection.Error.Title)
	assert.Equal(t, sess.Round.Root, rejection.Error.Root)

	output, err = cli.run("round", "show")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &sess))
	assert.Equal(t, []string{sess.Round.Root}, sess.Round.Rejected)
	assert.Equal(t, 0, sess.Round.Score)

	output, err = cli.run("round", "end")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("round", "show")
	require.Error(t, err, "output: %s", output)
}

func TestCLI_LocalPlay(t *testing.T) {
	cli := newCLIRunner(t, "http://127.0.0.1:0")

	output := cli.play(t, ":rules\nzzzzzzzzzz\n:missed\n:quit\n")

	assert.Contains(t, output, "Root word:")
	assert.Contains(t, output, "1. The game will show a root word.")
	assert.Contains(t, output, "Word not possible.")
	assert.Contains(t, output, "Missed words: zzzzzzzzzz")
	assert.Contains(t, output, "Final score: 0 (0 words)")
}

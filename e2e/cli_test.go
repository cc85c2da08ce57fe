package e2e_test

import (
	"context"
	"encoding/json"
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

	"github.com/mcoot/decklist-exporter/internal/api"
	"github.com/mcoot/decklist-exporter/internal/factory"
	"github.com/mcoot/decklist-exporter/internal/logger"
	"github.com/mcoot/decklist-exporter/internal/server"
	"github.com/mcoot/decklist-exporter/internal/services/decks"
	"github.com/mcoot/decklist-exporter/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	pinFile    string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	binaryPath := filepath.Join(t.TempDir(), "deckexport-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/deckexport")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		pinFile:    filepath.Join(t.TempDir(), "pin"),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--pin-file", r.pinFile,
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

// startTestServer runs the web front-end and development backend on one
// real listener, as cmd/server does
func startTestServer(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	serverURL := "http://" + listener.Addr().String()

	log := logger.New(os.Stderr, "error")
	app, err := factory.New(factory.Config{Logger: log, BackendURL: serverURL})
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(api.RouterConfig{Logger: log, DeckService: app.DeckService}))
	mux.Handle("/", web.NewRouter(web.RouterConfig{
		Logger:      log,
		NewExporter: app.NewExporter,
		NewAdmin:    app.NewAdmin,
		StaticDir:   filepath.Join(findProjectRoot(t), "internal/web/static"),
	}))

	srv := server.New(mux, server.DefaultConfig(), log)
	go func() {
		if err := srv.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	waitForServer(t, serverURL+"/api/health")
	return serverURL
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

type deckResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Cards []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	} `json:"cards"`
}

type playerResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	DeckCode *string `json:"deckCode"`
	DeckURL  *string `json:"deckUrl"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func listPlayers(t *testing.T, cli *cliRunner) []playerResponse {
	t.Helper()
	out, err := cli.run("players", "list")
	require.NoError(t, err, out)
	var players []playerResponse
	require.NoError(t, json.Unmarshal([]byte(out), &players), out)
	return players
}

func TestCLIWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	serverURL := startTestServer(t)
	cli := newCLIRunner(t, serverURL)

	// Submit a decklist
	out, err := cli.run("submit", "--name", "Ash", "--code", decks.SampleCode)
	require.NoError(t, err, out)
	var deck deckResponse
	require.NoError(t, json.Unmarshal([]byte(out), &deck), out)
	assert.Len(t, deck.ID, 6)
	assert.Equal(t, "Ash", deck.Name)
	assert.Equal(t, "/decks/"+deck.ID, deck.URL)
	assert.NotEmpty(t, deck.Cards)

	// The submission registered a player
	players := listPlayers(t, cli)
	require.Len(t, players, 1)
	require.NotNil(t, players[0].DeckCode)
	assert.Equal(t, decks.SampleCode, *players[0].DeckCode)
	id := players[0].ID

	// Rename
	out, err = cli.run("players", "edit", id, "--name", "Ash Ketchum")
	require.NoError(t, err, out)
	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(out), &msg))
	assert.Equal(t, "Player updated", msg.Message)

	// Clear the deck code
	out, err = cli.run("players", "register", id, "--deck-code", "")
	require.NoError(t, err, out)

	players = listPlayers(t, cli)
	require.Len(t, players, 1)
	assert.Equal(t, "Ash Ketchum", players[0].Name)
	assert.Nil(t, players[0].DeckCode)

	// Delete
	out, err = cli.run("players", "delete", id, "--yes")
	require.NoError(t, err, out)
	assert.Empty(t, listPlayers(t, cli))
}

func TestCLISubmitErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	serverURL := startTestServer(t)
	cli := newCLIRunner(t, serverURL)

	out, err := cli.run("submit", "--name", "Ash", "--code", "unknown")
	require.Error(t, err)
	assert.Contains(t, out, "Decklist not found")

	out, err = cli.run("submit", "--name", "  ", "--code", decks.SampleCode)
	require.Error(t, err)
	assert.Contains(t, out, "Please enter a trainer's name")

	// Validation happens before any network call
	assert.Empty(t, listPlayers(t, cli))
}

func TestCLIPin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	// The PIN commands never touch the network
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	out, err := cli.run("pin", "set", "8765 4321")
	require.NoError(t, err, out)
	assert.Contains(t, out, "ODc2NTo0MzIx")

	data, err := os.ReadFile(cli.pinFile)
	require.NoError(t, err)
	assert.Equal(t, "ODc2NTo0MzIx", strings.TrimSpace(string(data)))

	out, err = cli.run("pin", "show", "--decode")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"pin": "87654321"`)
}

func TestWebFrontEndAgainstDevBackend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	serverURL := startTestServer(t)

	resp, err := http.PostForm(serverURL+"/decks", map[string][]string{
		"trainer_name":  {"Misty"},
		"decklist_code": {decks.SampleCode},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(serverURL + "/static/app.css")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

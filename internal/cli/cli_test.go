package cli_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todolists/internal/cli"
	"todolists/internal/exitcode"
	"todolists/internal/handlers"
	"todolists/internal/web"
)

// testApp returns an App whose Run records the server instead of listening.
func testApp(t *testing.T, runErr error) (*cli.App, **web.Server) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var got *web.Server
	app := &cli.App{
		Registry: handlers.DefaultRegistry,
		Run: func(ctx context.Context, srv *web.Server) error {
			got = srv
			return runErr
		},
	}
	return app, &got
}

func TestExecute_UnknownCommand(t *testing.T) {
	app, _ := testApp(t, nil)

	var stdout, stderr bytes.Buffer
	code := app.Execute(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.HasPrefix(stderr.String(), "error: unknown command \"unknowncmd\"") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestExecute_UnknownFlag(t *testing.T) {
	app, _ := testApp(t, nil)

	var stdout, stderr bytes.Buffer
	code := app.Execute(context.Background(), []string{"serve", "--bogus"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr.String(), "unknown flag: --bogus") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestExecute_Version(t *testing.T) {
	app, _ := testApp(t, nil)

	var stdout, stderr bytes.Buffer
	code := app.Execute(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "todolists "+cli.Version+"\n" {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestExecute_Routes(t *testing.T) {
	app, _ := testApp(t, nil)

	var stdout, stderr bytes.Buffer
	code := app.Execute(context.Background(), []string{"routes"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d: %s", code, stderr.String())
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != len(handlers.DefaultRegistry.All())+1 {
		t.Errorf("expected header plus one line per route, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "METHOD") {
		t.Errorf("expected header, got %q", lines[0])
	}
	if !strings.Contains(stdout.String(), "/lists/{list_id}/todos/{todo_id}/destroy") {
		t.Error("expected todo delete route listed")
	}
}

func TestExecute_ServeBuildsServer(t *testing.T) {
	app, got := testApp(t, nil)

	var stdout, stderr bytes.Buffer
	code := app.Execute(context.Background(), []string{"serve", "--addr", "127.0.0.1:0"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d: %s", code, stderr.String())
	}
	if *got == nil {
		t.Fatal("expected server to be run")
	}

	rec := httptest.NewRecorder()
	(*got).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lists", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 from built server, got %d", rec.Code)
	}
	if rec.Header().Get("Set-Cookie") == "" {
		t.Error("expected session cookie from memory store")
	}
}

func TestExecute_ServeCookieStore(t *testing.T) {
	app, got := testApp(t, nil)
	t.Setenv("TODOLISTS_SESSION_STORE", "cookie")

	var stdout, stderr bytes.Buffer
	code := app.Execute(context.Background(), []string{"serve"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected success, got %d: %s", code, stderr.String())
	}
	if *got == nil {
		t.Fatal("expected server to be run")
	}
	if !strings.Contains(stderr.String(), "session.secret is not set") {
		t.Error("expected warning about generated secret")
	}
}

func TestExecute_InvalidConfig(t *testing.T) {
	app, got := testApp(t, nil)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("session:\n  store: redis\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := app.Execute(context.Background(), []string{"serve", "--config", path}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if *got != nil {
		t.Error("server must not run with invalid config")
	}
	if !strings.Contains(stderr.String(), "unknown store") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestExecute_ServerError(t *testing.T) {
	app, _ := testApp(t, errors.New("address already in use"))

	var stdout, stderr bytes.Buffer
	code := app.Execute(context.Background(), []string{"serve"}, &stdout, &stderr)

	if code != exitcode.ServerError {
		t.Errorf("expected exit code %d, got %d", exitcode.ServerError, code)
	}
	if !strings.Contains(stderr.String(), "error: address already in use") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

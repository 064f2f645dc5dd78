package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonwraymond/probekit/check"
	"github.com/jonwraymond/probekit/observe"
)

func passingCheck(name string) check.Check {
	return check.MustNew(name, func(ctx context.Context) bool { return true })
}

func failingCheck(name string) check.Check {
	return check.MustNew(name, func(ctx context.Context) bool { return false })
}

func mustProbe(t *testing.T, cfg Config) *Probe {
	t.Helper()
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return p
}

// get dispatches a GET through Handle and returns the recorder plus
// whether the probe claimed the request.
func get(p *Probe, path string) (*httptest.ResponseRecorder, bool) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handled := p.Handle(rec, req)
	return rec, handled
}

// TestNew_Defaults verifies default paths and codes.
func TestNew_Defaults(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if p.HealthPath() != "/health" {
		t.Errorf("expected health path '/health', got %q", p.HealthPath())
	}
	if p.ReadyPath() != "/ready" {
		t.Errorf("expected ready path '/ready', got %q", p.ReadyPath())
	}

	rec, handled := get(p, "/health")
	if !handled {
		t.Fatal("expected /health to be handled")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "{}" {
		t.Errorf("expected {}, got %s", rec.Body.String())
	}
}

// TestNormalizePath verifies path normalization and its error cases.
func TestNormalizePath(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"", "/default", false},
		{"ready", "/ready", false},
		{"/ready", "/ready", false},
		{"  custom  ", "/custom", false},
		{"//x", "/x", false},
		{"///deep/path", "/deep/path", false},
		{" /status", "/status", false},
		{" ", "", true},
		{"/", "", true},
		{"///", "", true},
		{" // ", "", true},
	}

	for _, tt := range tests {
		got, err := normalizePath(tt.raw, "/default")
		if tt.wantErr {
			if !errors.Is(err, ErrBlankPath) {
				t.Errorf("normalizePath(%q) error = %v, want ErrBlankPath", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("normalizePath(%q) returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

// TestNew_BlankPaths verifies blank paths are rejected at construction.
func TestNew_BlankPaths(t *testing.T) {
	if _, err := New(Config{HealthPath: " "}); !errors.Is(err, ErrBlankPath) {
		t.Errorf("expected ErrBlankPath for health path, got %v", err)
	}
	if _, err := New(Config{ReadyPath: "/"}); !errors.Is(err, ErrBlankPath) {
		t.Errorf("expected ErrBlankPath for ready path, got %v", err)
	}
}

// TestNew_StatusBounds verifies status codes outside the HTTP range are
// rejected at construction.
func TestNew_StatusBounds(t *testing.T) {
	if _, err := New(Config{SuccessStatus: 99}); !errors.Is(err, ErrStatusCode) {
		t.Errorf("expected ErrStatusCode for success status, got %v", err)
	}
	if _, err := New(Config{FailureStatus: 1000}); !errors.Is(err, ErrStatusCode) {
		t.Errorf("expected ErrStatusCode for failure status, got %v", err)
	}
}

// TestProbe_ReadyPassing verifies the passing readiness response.
func TestProbe_ReadyPassing(t *testing.T) {
	p := mustProbe(t, Config{
		ReadyChecks: check.NewSet(passingCheck("db")),
	})

	rec, handled := get(p, "/ready")
	if !handled {
		t.Fatal("expected /ready to be handled")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"db":true}` {
		t.Errorf(`expected {"db":true}, got %s`, got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
}

// TestProbe_HealthFailing verifies the failing liveness response.
func TestProbe_HealthFailing(t *testing.T) {
	p := mustProbe(t, Config{
		HealthChecks: check.NewSet(failingCheck("cache")),
	})

	rec, handled := get(p, "/health")
	if !handled {
		t.Fatal("expected /health to be handled")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"cache":false}` {
		t.Errorf(`expected {"cache":false}, got %s`, got)
	}
}

// TestProbe_ReportsEveryCheck verifies mixed outcomes are all present, in
// registration order.
func TestProbe_ReportsEveryCheck(t *testing.T) {
	p := mustProbe(t, Config{
		ReadyChecks: check.NewSet(
			passingCheck("db"),
			failingCheck("cache"),
			passingCheck("upstream"),
		),
	})

	rec, _ := get(p, "/ready")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	want := `{"db":true,"cache":false,"upstream":true}`
	if got := rec.Body.String(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

// TestProbe_CustomStatusCodes verifies configured codes replace the
// defaults.
func TestProbe_CustomStatusCodes(t *testing.T) {
	p := mustProbe(t, Config{
		SuccessStatus: http.StatusAccepted,
		FailureStatus: http.StatusExpectationFailed,
		ReadyChecks:   check.NewSet(passingCheck("db")),
		HealthChecks:  check.NewSet(failingCheck("cache")),
	})

	rec, _ := get(p, "/ready")
	if rec.Code != http.StatusAccepted {
		t.Errorf("expected 202, got %d", rec.Code)
	}

	rec, _ = get(p, "/health")
	if rec.Code != http.StatusExpectationFailed {
		t.Errorf("expected 417, got %d", rec.Code)
	}
}

// TestProbe_CustomPath verifies a custom path answers and the default
// stops matching.
func TestProbe_CustomPath(t *testing.T) {
	p := mustProbe(t, Config{
		ReadyPath:   "newready",
		ReadyChecks: check.NewSet(passingCheck("db")),
	})

	rec, handled := get(p, "/newready")
	if !handled {
		t.Fatal("expected /newready to be handled")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	if _, handled := get(p, "/ready"); handled {
		t.Error("expected /ready to fall through once the path moved")
	}
}

// TestProbe_Disabled verifies disabled endpoints fall through.
func TestProbe_Disabled(t *testing.T) {
	p := mustProbe(t, Config{
		DisableReady: true,
		ReadyChecks:  check.NewSet(passingCheck("db")),
	})

	rec, handled := get(p, "/ready")
	if handled {
		t.Error("expected disabled /ready to fall through")
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected no body on fall-through, got %s", rec.Body.String())
	}

	// Health is still live.
	if _, handled := get(p, "/health"); !handled {
		t.Error("expected /health to be handled")
	}
}

// TestProbe_NoMatch verifies unrelated paths fall through untouched.
func TestProbe_NoMatch(t *testing.T) {
	p := mustProbe(t, Config{})

	for _, path := range []string{"/", "/api/users", "/ready/", "/healthz"} {
		rec, handled := get(p, path)
		if handled {
			t.Errorf("expected %s to fall through", path)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("expected no body written for %s", path)
		}
	}
}

// TestProbe_QueryStringIgnored verifies matching is on the path alone.
func TestProbe_QueryStringIgnored(t *testing.T) {
	p := mustProbe(t, Config{ReadyChecks: check.NewSet(passingCheck("db"))})

	rec, handled := get(p, "/ready?verbose=1")
	if !handled {
		t.Fatal("expected /ready?verbose=1 to be handled")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

// TestProbe_MethodNotInspected verifies non-GET requests are answered too.
func TestProbe_MethodNotInspected(t *testing.T) {
	p := mustProbe(t, Config{ReadyChecks: check.NewSet(passingCheck("db"))})

	req := httptest.NewRequest(http.MethodPost, "/ready", nil)
	rec := httptest.NewRecorder()
	if !p.Handle(rec, req) {
		t.Fatal("expected POST /ready to be handled")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

// TestProbe_SharedPathReadyWins verifies ready takes precedence when both
// endpoints share a path.
func TestProbe_SharedPathReadyWins(t *testing.T) {
	p := mustProbe(t, Config{
		HealthPath:   "status",
		ReadyPath:    "/status",
		HealthChecks: check.NewSet(failingCheck("health_only")),
		ReadyChecks:  check.NewSet(passingCheck("ready_only")),
	})

	rec, handled := get(p, "/status")
	if !handled {
		t.Fatal("expected /status to be handled")
	}
	if got := rec.Body.String(); got != `{"ready_only":true}` {
		t.Errorf("expected the ready endpoint to answer, got %s", got)
	}
}

// TestProbe_SharedPathDisabledReady verifies health answers a shared path
// once ready is disabled.
func TestProbe_SharedPathDisabledReady(t *testing.T) {
	p := mustProbe(t, Config{
		HealthPath:   "/status",
		ReadyPath:    "/status",
		DisableReady: true,
		HealthChecks: check.NewSet(passingCheck("health_only")),
	})

	rec, handled := get(p, "/status")
	if !handled {
		t.Fatal("expected /status to be handled")
	}
	if got := rec.Body.String(); got != `{"health_only":true}` {
		t.Errorf("expected the health endpoint to answer, got %s", got)
	}
}

// TestProbe_Middleware verifies matching requests are answered and the
// rest reach the wrapped handler.
func TestProbe_Middleware(t *testing.T) {
	p := mustProbe(t, Config{ReadyChecks: check.NewSet(passingCheck("db"))})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := p.Middleware(next)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected probe to answer /ready with 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected /api/users to reach the wrapped handler, got %d", rec.Code)
	}
}

// TestProbe_StandaloneHandlers verifies HealthHandler and ReadyHandler
// answer regardless of path or disable flags.
func TestProbe_StandaloneHandlers(t *testing.T) {
	p := mustProbe(t, Config{
		DisableHealth: true,
		DisableReady:  true,
		HealthChecks:  check.NewSet(passingCheck("proc")),
		ReadyChecks:   check.NewSet(failingCheck("db")),
	})

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	rec := httptest.NewRecorder()
	p.HealthHandler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 from HealthHandler, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"proc":true}` {
		t.Errorf(`expected {"proc":true}, got %s`, got)
	}

	rec = httptest.NewRecorder()
	p.ReadyHandler().ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 from ReadyHandler, got %d", rec.Code)
	}
}

// TestProbe_RegisterMux verifies mux registration of both endpoints.
func TestProbe_RegisterMux(t *testing.T) {
	p := mustProbe(t, Config{
		ReadyChecks: check.NewSet(passingCheck("db")),
	})

	mux := http.NewServeMux()
	p.RegisterMux(mux)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 from /ready, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Body.String() != "{}" {
		t.Errorf("expected {} from /health, got %s", rec.Body.String())
	}
}

// TestProbe_RegisterMux_SharedPath verifies shared-path registration does
// not panic and ready answers.
func TestProbe_RegisterMux_SharedPath(t *testing.T) {
	p := mustProbe(t, Config{
		HealthPath:  "/status",
		ReadyPath:   "/status",
		ReadyChecks: check.NewSet(passingCheck("ready_only")),
	})

	mux := http.NewServeMux()
	p.RegisterMux(mux)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if got := rec.Body.String(); got != `{"ready_only":true}` {
		t.Errorf("expected the ready endpoint to answer, got %s", got)
	}
}

// TestProbe_LogsFailures verifies each failed check produces a warn entry
// naming the endpoint and check.
func TestProbe_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	p := mustProbe(t, Config{
		ReadyChecks: check.NewSet(
			passingCheck("db"),
			check.MustNewPing("redis", func(ctx context.Context) error {
				return errors.New("connection refused")
			}),
		),
		Logger: observe.NewLoggerWithWriter("warn", &buf),
	})

	get(p, "/ready")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("failed to parse log line: %v", err)
	}
	if entry["msg"] != "check failed" {
		t.Errorf("expected msg='check failed', got %v", entry["msg"])
	}
	if entry["endpoint"] != "ready" {
		t.Errorf("expected endpoint='ready', got %v", entry["endpoint"])
	}
	if entry["check"] != "redis" {
		t.Errorf("expected check='redis', got %v", entry["check"])
	}
	if entry["error"] != "connection refused" {
		t.Errorf("expected error='connection refused', got %v", entry["error"])
	}
}

// TestProbe_EndpointsIndependent verifies each endpoint evaluates only its
// own collection.
func TestProbe_EndpointsIndependent(t *testing.T) {
	p := mustProbe(t, Config{
		HealthChecks: check.NewSet(passingCheck("proc")),
		ReadyChecks:  check.NewSet(failingCheck("db")),
	})

	rec, _ := get(p, "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("expected healthy /health, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"proc":true}` {
		t.Errorf(`expected {"proc":true}, got %s`, got)
	}

	rec, _ = get(p, "/ready")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected failing /ready, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"db":false}` {
		t.Errorf(`expected {"db":false}, got %s`, got)
	}
}

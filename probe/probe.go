package probe

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/probekit/check"
	"github.com/jonwraymond/probekit/observe"
)

// Default endpoint paths.
const (
	DefaultHealthPath = "/health"
	DefaultReadyPath  = "/ready"
)

// Config configures a Probe. The zero value gives two endpoints with no
// checks: /health and /ready both answer 200 {}.
type Config struct {
	// HealthPath is the liveness endpoint path. Paths are normalized to a
	// single leading slash, so "health" and "/health" are equivalent. A
	// path that is blank after normalization is rejected.
	// Default: "/health"
	HealthPath string

	// ReadyPath is the readiness endpoint path.
	// Default: "/ready"
	ReadyPath string

	// DisableHealth removes the health endpoint from dispatch.
	DisableHealth bool

	// DisableReady removes the ready endpoint from dispatch.
	DisableReady bool

	// SuccessStatus is written when every check passes.
	// Default: 200
	SuccessStatus int

	// FailureStatus is written when any check fails.
	// Default: 500
	FailureStatus int

	// HealthChecks back the health endpoint. Nil means no checks: the
	// endpoint reports 200 {} while the process serves requests.
	HealthChecks *check.Set

	// ReadyChecks back the ready endpoint.
	ReadyChecks *check.Set

	// CheckTimeout bounds each individual check. Zero means unbounded.
	CheckTimeout time.Duration

	// Parallel evaluates each endpoint's checks concurrently.
	Parallel bool

	// MaxParallel caps in-flight checks when Parallel is set.
	MaxParallel int

	// Tracer, when non-nil, records one span per check.
	Tracer trace.Tracer

	// Logger receives a warn entry per failed check. Nil discards logs.
	Logger observe.Logger
}

// endpoint is one of the probe's two serving surfaces.
type endpoint struct {
	name    string
	path    string
	enabled bool
	agg     *check.Aggregator
}

// Probe answers liveness and readiness requests. Construct with New;
// a Probe is immutable and safe for concurrent use.
type Probe struct {
	health  endpoint
	ready   endpoint
	success int
	failure int
	logger  observe.Logger
}

// New creates a Probe from cfg, applying defaults to unset fields.
// Configuration problems, such as blank paths or status codes outside
// the HTTP range, are reported here rather than at request time.
func New(config ...Config) (*Probe, error) {
	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}

	healthPath, err := normalizePath(cfg.HealthPath, DefaultHealthPath)
	if err != nil {
		return nil, fmt.Errorf("health path: %w", err)
	}
	readyPath, err := normalizePath(cfg.ReadyPath, DefaultReadyPath)
	if err != nil {
		return nil, fmt.Errorf("ready path: %w", err)
	}

	success, err := normalizeStatus(cfg.SuccessStatus, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("success status: %w", err)
	}
	failure, err := normalizeStatus(cfg.FailureStatus, http.StatusInternalServerError)
	if err != nil {
		return nil, fmt.Errorf("failure status: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observe.NewNopLogger()
	}

	aggCfg := check.AggregatorConfig{
		CheckTimeout: cfg.CheckTimeout,
		Parallel:     cfg.Parallel,
		MaxParallel:  cfg.MaxParallel,
		Tracer:       cfg.Tracer,
	}

	return &Probe{
		health: endpoint{
			name:    "health",
			path:    healthPath,
			enabled: !cfg.DisableHealth,
			agg:     check.NewAggregator(cfg.HealthChecks, aggCfg),
		},
		ready: endpoint{
			name:    "ready",
			path:    readyPath,
			enabled: !cfg.DisableReady,
			agg:     check.NewAggregator(cfg.ReadyChecks, aggCfg),
		},
		success: success,
		failure: failure,
		logger:  logger,
	}, nil
}

// normalizePath anchors a configured path at exactly one leading slash.
// An empty string means unset and takes the default; a non-empty string
// that trims down to nothing is an error.
func normalizePath(raw, def string) (string, error) {
	if raw == "" {
		return def, nil
	}

	p := strings.TrimSpace(raw)
	p = strings.TrimLeft(p, "/")
	if p == "" {
		return "", ErrBlankPath
	}
	return "/" + p, nil
}

// normalizeStatus applies the default to an unset code and bounds-checks
// the rest.
func normalizeStatus(code, def int) (int, error) {
	if code == 0 {
		return def, nil
	}
	if code < 100 || code > 599 {
		return 0, fmt.Errorf("%w: %d", ErrStatusCode, code)
	}
	return code, nil
}

// HealthPath returns the normalized health endpoint path.
func (p *Probe) HealthPath() string {
	return p.health.path
}

// ReadyPath returns the normalized ready endpoint path.
func (p *Probe) ReadyPath() string {
	return p.ready.path
}

// Handle answers the request when its path matches an enabled endpoint
// and reports whether it did. Ready is consulted before health, so ready
// wins if both endpoints share a path. Matching is exact string equality
// on the request path; the HTTP method is not inspected. A false return
// means nothing was written and the host should route the request itself.
func (p *Probe) Handle(w http.ResponseWriter, r *http.Request) bool {
	switch {
	case p.ready.enabled && r.URL.Path == p.ready.path:
		p.serve(w, r, &p.ready)
	case p.health.enabled && r.URL.Path == p.health.path:
		p.serve(w, r, &p.health)
	default:
		return false
	}
	return true
}

// Middleware wraps next with probe dispatch: matching requests are
// answered here, everything else falls through to next untouched.
func (p *Probe) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !p.Handle(w, r) {
			next.ServeHTTP(w, r)
		}
	})
}

// HealthHandler returns the health endpoint as a standalone handler. It
// answers every request it receives regardless of path or the disable
// flag, for hosts that mount endpoints on their own router.
func (p *Probe) HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.serve(w, r, &p.health)
	})
}

// ReadyHandler returns the ready endpoint as a standalone handler.
func (p *Probe) ReadyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.serve(w, r, &p.ready)
	})
}

// RegisterMux mounts the enabled endpoints on a standard library mux.
// When both endpoints share a path only ready is mounted, matching
// Handle's precedence.
func (p *Probe) RegisterMux(mux *http.ServeMux) {
	if p.ready.enabled {
		mux.Handle(p.ready.path, p.ReadyHandler())
	}
	if p.health.enabled && !(p.ready.enabled && p.health.path == p.ready.path) {
		mux.Handle(p.health.path, p.HealthHandler())
	}
}

func (p *Probe) serve(w http.ResponseWriter, r *http.Request, ep *endpoint) {
	start := time.Now()
	report := ep.agg.Evaluate(r.Context())

	for _, res := range report.Failures() {
		fields := []observe.Field{
			observe.String("endpoint", ep.name),
			observe.String("check", res.Name),
			observe.Duration("duration_ms", res.Duration),
		}
		if res.Err != nil {
			fields = append(fields, observe.Err(res.Err))
		}
		p.logger.Warn(r.Context(), "check failed", fields...)
	}

	p.logger.Debug(r.Context(), "probe served",
		observe.String("endpoint", ep.name),
		observe.Bool("ok", report.OK()),
		observe.Duration("duration_ms", time.Since(start)),
	)

	body, err := json.Marshal(report)
	if err != nil {
		p.logger.Error(r.Context(), "encode report failed", observe.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	code := p.success
	if !report.OK() {
		code = p.failure
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

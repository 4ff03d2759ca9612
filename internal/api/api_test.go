// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/ecobee/internal/catalog"
	"github.com/tomtom215/ecobee/internal/embeddings"
	"github.com/tomtom215/ecobee/internal/leaderboard"
	"github.com/tomtom215/ecobee/internal/recommend"
)

// envelope mirrors APIResponse with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
	Meta *struct {
		RequestID string `json:"request_id"`
		Count     *int   `json:"count"`
	} `json:"meta"`
}

type testServer struct {
	handler *Handler
	board   *leaderboard.Leaderboard
	http    http.Handler
}

type serverOption func(*HandlerDeps, *ChiMiddlewareConfig)

func withThrottle(t *NameThrottle) serverOption {
	return func(d *HandlerDeps, _ *ChiMiddlewareConfig) { d.Throttle = t }
}

func withRateLimit(n int) serverOption {
	return func(_ *HandlerDeps, c *ChiMiddlewareConfig) {
		c.RateLimitRequests = n
		c.RateLimitDisabled = false
	}
}

func withLeaderboard(b *leaderboard.Leaderboard) serverOption {
	return func(d *HandlerDeps, _ *ChiMiddlewareConfig) { d.Leaderboard = b }
}

// withVectors replaces the engine with one over the given embeddings.
func withVectors(t *testing.T, vectors map[string][]float64) serverOption {
	t.Helper()
	store, err := embeddings.FromMap(vectors)
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	engine, err := recommend.NewEngine(nil, catalog.BuildCatalog(), store, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return func(d *HandlerDeps, _ *ChiMiddlewareConfig) { d.Engine = engine }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	store, err := embeddings.FromMap(map[string][]float64{
		"a1": {1, 0, 0},
		"a2": {0.9, 0.1, 0},
		"a3": {0, 1, 0},
		"a4": {-1, 0, 0},
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	engine, err := recommend.NewEngine(nil, catalog.BuildCatalog(), store, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	deps := HandlerDeps{Engine: engine, Leaderboard: leaderboard.New(), Version: "test"}
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	for _, opt := range opts {
		opt(&deps, mwCfg)
	}

	h, err := NewHandler(deps)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	return &testServer{
		handler: h,
		board:   deps.Leaderboard,
		http:    NewRouter(h, NewChiMiddleware(mwCfg)).Setup(),
	}
}

func (s *testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := s.raw(method, target, body)
	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
		}
	}
	return rec, env
}

// raw serves a request and leaves the body undecoded.
func (s *testServer) raw(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.http.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v\ndata: %s", err, env.Data)
	}
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, env envelope, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, status, rec.Body.String())
	}
	if env.Success {
		t.Error("success = true, want false")
	}
	if env.Error == nil || env.Error.Code != code {
		t.Errorf("error = %+v, want code %s", env.Error, code)
	}
}

func TestNewHandler_RequiresDependencies(t *testing.T) {
	engine, err := recommend.NewEngine(nil, catalog.BuildCatalog(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	tests := []struct {
		name string
		deps HandlerDeps
	}{
		{"missing engine", HandlerDeps{Leaderboard: leaderboard.New()}},
		{"missing leaderboard", HandlerDeps{Engine: engine}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHandler(tt.deps); err == nil {
				t.Error("NewHandler() error = nil, want error")
			}
		})
	}
}

func TestEnvelope_RequestID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/actions", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	rec := httptest.NewRecorder()
	s.http.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Meta == nil || env.Meta.RequestID != "trace-123" {
		t.Errorf("meta.request_id = %+v, want trace-123", env.Meta)
	}
	if rec.Header().Get("X-Request-ID") != "trace-123" {
		t.Errorf("X-Request-ID header = %q", rec.Header().Get("X-Request-ID"))
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing on /api route")
	}
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/api/v1/nope", "")
	expectError(t, rec, env, http.StatusNotFound, ErrCodeNotFound)

	rec, env = s.do(t, http.MethodDelete, "/api/v1/leaderboard", "")
	expectError(t, rec, env, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/health/live", "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Errorf("live = %d success=%v", rec.Code, env.Success)
	}

	rec, _ = s.do(t, http.MethodGet, "/health/ready", "")
	if rec.Code != http.StatusOK {
		t.Errorf("ready = %d, want 200", rec.Code)
	}

	s.handler.SetReady(false)
	rec, env = s.do(t, http.MethodGet, "/health/ready", "")
	expectError(t, rec, env, http.StatusServiceUnavailable, ErrCodeUnavailable)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/api/v1/actions", "")

	rec := httptest.NewRecorder()
	s.http.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ecobee_api_requests_total") {
		t.Error("/metrics missing ecobee_api_requests_total")
	}
}

func TestRateLimitByIP(t *testing.T) {
	s := newTestServer(t, withRateLimit(2))

	for i := 0; i < 2; i++ {
		if rec, _ := s.do(t, http.MethodGet, "/api/v1/actions", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}

	rec, env := s.do(t, http.MethodGet, "/api/v1/actions", "")
	expectError(t, rec, env, http.StatusTooManyRequests, ErrCodeRateLimited)

	// Health probes sit outside /api and are never limited.
	if rec, _ := s.do(t, http.MethodGet, "/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("/health/live status = %d under rate limit", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/leaderboard", nil)
	req.Header.Set("Origin", "https://example.edu")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.http.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Errorf("Access-Control-Allow-Origin missing, status %d", rec.Code)
	}
}

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mwhitlatch/resumetex/internal/pipeline"
)

// newTestServer creates a server backed by a pipeline without a document store
func newTestServer() *Server {
	return &Server{
		pipeline: pipeline.New(nil),
	}
}

// TestHealthEndpoint tests the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got '%s'", resp["status"])
	}
}

// TestRouting_SetsRequestID verifies the middleware chain tags responses with an id
func TestRouting_SetsRequestID(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	srv := New(Config{Port: 8080})
	defer srv.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	w := httptest.NewRecorder()

	srv.httpServer.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header to be set")
	}
}

// TestRouting_PreservesCallerRequestID verifies caller-supplied ids are kept
func TestRouting_PreservesCallerRequestID(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	srv := New(Config{Port: 8080})
	defer srv.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	req.Header.Set("X-Request-ID", "caller-id-42")
	w := httptest.NewRecorder()

	srv.httpServer.Handler.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "caller-id-42" {
		t.Errorf("expected X-Request-ID 'caller-id-42', got '%s'", got)
	}
}

// TestRouting_CORSPreflight verifies OPTIONS requests short-circuit with CORS headers
func TestRouting_CORSPreflight(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	srv := New(Config{Port: 8080})
	defer srv.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodOptions, "/render", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	w := httptest.NewRecorder()

	srv.httpServer.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected Access-Control-Allow-Origin header")
	}
}

// TestRouting_RateLimitHeaders verifies limited endpoints report their budget
func TestRouting_RateLimitHeaders(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	srv := New(Config{Port: 8080})
	defer srv.rateLimiter.Stop()

	body := `{"html": "<h1>Jane Doe</h1>"}`
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewBufferString(body))
	req.RemoteAddr = "127.0.0.1:54321"
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.httpServer.Handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Limit") != "60" {
		t.Errorf("expected X-RateLimit-Limit '60', got '%s'", w.Header().Get("X-RateLimit-Limit"))
	}
	if w.Header().Get("X-RateLimit-Remaining") == "" {
		t.Error("expected X-RateLimit-Remaining header")
	}
}

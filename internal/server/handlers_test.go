package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mwhitlatch/resumetex/internal/docstore"
	"github.com/mwhitlatch/resumetex/internal/pipeline"
	"github.com/mwhitlatch/resumetex/internal/types"
)

const testDocumentID = "550e8400-e29b-41d4-a716-446655440000"

// newTestServerWithStore creates a server whose pipeline fetches from the given store URL
func newTestServerWithStore(storeURL string) *Server {
	store := docstore.NewClient(storeURL, docstore.DefaultOptions())
	return &Server{
		pipeline: pipeline.New(store),
	}
}

// TestRenderEndpoint tests /render with a minimal document
func TestRenderEndpoint(t *testing.T) {
	s := newTestServer()

	body := `{"html": "<h1>Jane Doe</h1><p>jane@x.com</p>"}`
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleRender(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp types.RenderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if !strings.Contains(resp.LaTeX, `\textbf{\Huge \scshape Jane Doe}`) {
		t.Error("expected rendered LaTeX to contain the heading")
	}
	if resp.Degraded {
		t.Error("expected degraded to be false")
	}
}

// TestRenderEndpoint_MissingHTML tests /render with an empty body object
func TestRenderEndpoint_MissingHTML(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleRender(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestRenderEndpoint_InvalidBody tests /render with malformed JSON
func TestRenderEndpoint_InvalidBody(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewBufferString(`not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleRender(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestRenderEndpoint_UnrecognizedInputDegrades tests that structureless HTML still renders
func TestRenderEndpoint_UnrecognizedInputDegrades(t *testing.T) {
	s := newTestServer()

	body := `{"html": "<div>   </div>"}`
	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleRender(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp types.RenderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if !resp.Degraded {
		t.Error("expected degraded to be true")
	}
	if !strings.Contains(resp.LaTeX, `\begin{document}`) {
		t.Error("expected a complete LaTeX document even when degraded")
	}
}

// TestDocumentEndpoint tests the stored-document render path
func TestDocumentEndpoint(t *testing.T) {
	storeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"html": "<h1>Jane Doe</h1><p>jane@x.com</p>"})
	}))
	defer storeServer.Close()

	s := newTestServerWithStore(storeServer.URL)

	req := httptest.NewRequest(http.MethodGet, "/documents/"+testDocumentID+"/latex?userId=user-1", nil)
	req.SetPathValue("document_id", testDocumentID)
	w := httptest.NewRecorder()

	s.handleDocumentLaTeX(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp types.RenderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if !strings.Contains(resp.LaTeX, `\textbf{\Huge \scshape Jane Doe}`) {
		t.Error("expected rendered LaTeX to contain the heading")
	}
}

// TestDocumentEndpoint_MissingUserID tests the document path without a userId
func TestDocumentEndpoint_MissingUserID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/documents/"+testDocumentID+"/latex", nil)
	req.SetPathValue("document_id", testDocumentID)
	w := httptest.NewRecorder()

	s.handleDocumentLaTeX(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestDocumentEndpoint_BadDocumentID tests the document path with a non-UUID id
func TestDocumentEndpoint_BadDocumentID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/documents/not-a-uuid/latex?userId=user-1", nil)
	req.SetPathValue("document_id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleDocumentLaTeX(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

// TestDocumentEndpoint_NotFound tests that unknown documents map to 404
func TestDocumentEndpoint_NotFound(t *testing.T) {
	storeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer storeServer.Close()

	s := newTestServerWithStore(storeServer.URL)

	req := httptest.NewRequest(http.MethodGet, "/documents/"+testDocumentID+"/latex?userId=user-1", nil)
	req.SetPathValue("document_id", testDocumentID)
	w := httptest.NewRecorder()

	s.handleDocumentLaTeX(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected an error message in the response")
	}
}

// TestDocumentEndpoint_NotHTML tests that non-HTML documents map to 415
func TestDocumentEndpoint_NotHTML(t *testing.T) {
	storeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnsupportedMediaType)
	}))
	defer storeServer.Close()

	s := newTestServerWithStore(storeServer.URL)

	req := httptest.NewRequest(http.MethodGet, "/documents/"+testDocumentID+"/latex?userId=user-1", nil)
	req.SetPathValue("document_id", testDocumentID)
	w := httptest.NewRecorder()

	s.handleDocumentLaTeX(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected status 415, got %d", w.Code)
	}
}

// TestDocumentEndpoint_StoreUnreachable tests that transport failures map to 502
func TestDocumentEndpoint_StoreUnreachable(t *testing.T) {
	storeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	storeServer.Close()

	s := newTestServerWithStore(storeServer.URL)

	req := httptest.NewRequest(http.MethodGet, "/documents/"+testDocumentID+"/latex?userId=user-1", nil)
	req.SetPathValue("document_id", testDocumentID)
	w := httptest.NewRecorder()

	s.handleDocumentLaTeX(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", w.Code)
	}
}

package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mwhitlatch/resumetex/internal/types"
)

// handleRender converts raw HTML from the request body into LaTeX source.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req types.RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "html is required")
		return
	}

	result, err := s.pipeline.Convert(req.HTML)
	if err != nil {
		log.Printf("[server] render failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Render failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.RenderResponse{
		LaTeX:    result.LaTeX,
		Degraded: result.Degraded,
	})
}

// handleDocumentLaTeX fetches a stored document and converts it to LaTeX.
func (s *Server) handleDocumentLaTeX(w http.ResponseWriter, r *http.Request) {
	req := types.DocumentRenderRequest{
		UserID:     r.URL.Query().Get("userId"),
		DocumentID: r.PathValue("document_id"),
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "userId query parameter and a UUID document id are required")
		return
	}

	result, err := s.pipeline.ConvertDocument(r.Context(), req.UserID, req.DocumentID)
	if err != nil {
		log.Printf("[server] document %s render failed: %v", req.DocumentID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.RenderResponse{
		LaTeX:    result.LaTeX,
		Degraded: result.Degraded,
	})
}

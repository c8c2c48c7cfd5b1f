package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mwhitlatch/resumetex/internal/docstore"
)

func TestHTTPStatus_NotFound(t *testing.T) {
	err := &docstore.NotFoundError{UserID: "user-1", DocumentID: "doc-1"}
	if got := HTTPStatus(err); got != http.StatusNotFound {
		t.Errorf("expected 404, got %d", got)
	}
}

func TestHTTPStatus_NoHTML(t *testing.T) {
	err := &docstore.NoHTMLError{DocumentID: "doc-1", Message: "not stored as HTML"}
	if got := HTTPStatus(err); got != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", got)
	}
}

func TestHTTPStatus_BadContentType(t *testing.T) {
	err := &docstore.BadContentTypeError{DocumentID: "doc-1", Message: "not JSON"}
	if got := HTTPStatus(err); got != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", got)
	}
}

func TestHTTPStatus_FetchError(t *testing.T) {
	err := &docstore.FetchError{DocumentID: "doc-1", Message: "connection refused"}
	if got := HTTPStatus(err); got != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", got)
	}
}

func TestHTTPStatus_WrappedError(t *testing.T) {
	err := fmt.Errorf("fetching: %w", &docstore.NotFoundError{UserID: "u", DocumentID: "d"})
	if got := HTTPStatus(err); got != http.StatusNotFound {
		t.Errorf("expected 404 for wrapped error, got %d", got)
	}
}

func TestHTTPStatus_UnknownError(t *testing.T) {
	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", got)
	}
}

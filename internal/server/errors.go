package server

import (
	"errors"
	"net/http"

	"github.com/mwhitlatch/resumetex/internal/docstore"
)

// HTTPStatus returns the appropriate HTTP status code for a document fetch error.
// Unknown documents map to 404, documents without HTML content to 415, and
// upstream failures or malformed store responses to 502.
func HTTPStatus(err error) int {
	var notFound *docstore.NotFoundError
	var noHTML *docstore.NoHTMLError
	var badContent *docstore.BadContentTypeError
	var fetchFailed *docstore.FetchError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &noHTML):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &badContent):
		return http.StatusBadGateway
	case errors.As(err, &fetchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

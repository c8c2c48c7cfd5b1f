// Package docstore provides the client for the upstream document store that
// serves stored resume documents as raw HTML.
package docstore

import "fmt"

// NotFoundError means no stored document matches the given ids.
type NotFoundError struct {
	UserID     string
	DocumentID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document %s not found for user %s", e.DocumentID, e.UserID)
}

// NoHTMLError means the document exists but has no usable HTML content,
// either because it is stored in another format or because the response
// carried no html field.
type NoHTMLError struct {
	DocumentID string
	Message    string
}

func (e *NoHTMLError) Error() string {
	return fmt.Sprintf("no html available for document %s: %s", e.DocumentID, e.Message)
}

// BadContentTypeError means the store's response body was not shaped like
// the expected JSON document envelope.
type BadContentTypeError struct {
	DocumentID string
	Message    string
	Cause      error
}

func (e *BadContentTypeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bad response for document %s: %s: %v", e.DocumentID, e.Message, e.Cause)
	}
	return fmt.Sprintf("bad response for document %s: %s", e.DocumentID, e.Message)
}

func (e *BadContentTypeError) Unwrap() error {
	return e.Cause
}

// FetchError represents a transport failure or an unexpected HTTP status
// while talking to the store.
type FetchError struct {
	DocumentID string
	Message    string
	Cause      error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch failed for document %s: %s: %v", e.DocumentID, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch failed for document %s: %s", e.DocumentID, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

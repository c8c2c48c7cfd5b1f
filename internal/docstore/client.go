// Package docstore provides the client for the upstream document store that
// serves stored resume documents as raw HTML.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// responseSchema describes the JSON envelope the store returns for a
// document request.
const responseSchema = `{
	"type": "object",
	"properties": {
		"html": {"type": "string"}
	},
	"required": ["html"]
}`

// documentResponse is the store's success body.
type documentResponse struct {
	HTML string `json:"html"`
}

// Options configures the store client.
type Options struct {
	Timeout   time.Duration
	AuthToken string
}

// DefaultOptions returns sensible defaults for the client.
func DefaultOptions() *Options {
	return &Options{Timeout: DefaultTimeout}
}

// Client talks to the document store over HTTP.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient builds a store client for the given base URL.
func NewClient(baseURL string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authToken:  opts.AuthToken,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchHTML retrieves the raw HTML for one stored document. It returns
// NotFoundError for unknown ids, NoHTMLError when the document carries no
// HTML, BadContentTypeError when the response is not the expected JSON
// envelope, and FetchError for transport failures and other statuses.
func (c *Client) FetchHTML(ctx context.Context, userID, documentID string) (string, error) {
	query := url.Values{
		"userId":     {userID},
		"documentId": {documentID},
	}
	endpoint := fmt.Sprintf("%s/documents/html?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &FetchError{DocumentID: documentID, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{DocumentID: documentID, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{DocumentID: documentID, Message: "failed to read response body", Cause: err}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", &NotFoundError{UserID: userID, DocumentID: documentID}
	case resp.StatusCode == http.StatusUnsupportedMediaType:
		return "", &NoHTMLError{DocumentID: documentID, Message: "document is not stored as HTML"}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", &FetchError{DocumentID: documentID, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return decodeDocumentBody(documentID, body)
}

// decodeDocumentBody checks the response against the embedded schema and
// extracts the html field.
func decodeDocumentBody(documentID string, body []byte) (string, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(responseSchema),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return "", &BadContentTypeError{DocumentID: documentID, Message: "response is not valid JSON", Cause: err}
	}

	if !result.Valid() {
		for _, desc := range result.Errors() {
			if desc.Field() == "html" || desc.Type() == "required" {
				return "", &NoHTMLError{DocumentID: documentID, Message: "response has no usable html field"}
			}
		}
		return "", &BadContentTypeError{DocumentID: documentID, Message: "response is not a JSON document envelope"}
	}

	var doc documentResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", &BadContentTypeError{DocumentID: documentID, Message: "failed to decode response", Cause: err}
	}
	if strings.TrimSpace(doc.HTML) == "" {
		return "", &NoHTMLError{DocumentID: documentID, Message: "document has empty html content"}
	}

	return doc.HTML, nil
}

// Package types provides type definitions for structured data used throughout the resumetex system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// RenderRequest represents the request to convert raw HTML into LaTeX source.
type RenderRequest struct {
	HTML string `json:"html" validate:"required,min=1"`
}

// RenderResponse represents the conversion result returned to callers.
type RenderResponse struct {
	LaTeX    string `json:"latex"`
	Degraded bool   `json:"degraded"`
}

// DocumentRenderRequest identifies a stored document to fetch and convert.
type DocumentRenderRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	DocumentID string `json:"document_id" validate:"required,uuid4"`
}

// Validate validates the RenderRequest using the validator.
func (r *RenderRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the DocumentRenderRequest using the validator.
func (r *DocumentRenderRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

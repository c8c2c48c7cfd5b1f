// Package pipeline provides the high-level orchestration for converting
// stored resume documents into LaTeX.
package pipeline

import (
	"context"
	"fmt"

	"github.com/mwhitlatch/resumetex/internal/docstore"
	"github.com/mwhitlatch/resumetex/internal/htmldoc"
	"github.com/mwhitlatch/resumetex/internal/parsing"
	"github.com/mwhitlatch/resumetex/internal/rendering"
	"github.com/mwhitlatch/resumetex/internal/types"
)

// Result holds the outputs of one conversion.
type Result struct {
	LaTeX    string             `json:"latex"`
	Model    *types.ResumeModel `json:"model,omitempty"`
	Degraded bool               `json:"degraded"`
}

// Pipeline converts raw resume HTML into LaTeX. The parser vocabulary is
// compiled once at construction; a Pipeline is safe for concurrent use.
type Pipeline struct {
	parser *parsing.Parser
	store  *docstore.Client
}

// New builds a pipeline around an optional document store client. Convert
// works without a store; ConvertDocument requires one.
func New(store *docstore.Client) *Pipeline {
	return &Pipeline{
		parser: parsing.NewParser(nil),
		store:  store,
	}
}

// Convert runs the full transform on raw HTML text. The transform is total
// over its input: malformed or unstructured HTML degrades to a minimal
// document instead of failing. Degraded is set when nothing recognizable
// was parsed out of the input.
func (p *Pipeline) Convert(html string) (Result, error) {
	doc, err := htmldoc.Parse(html)
	if err != nil {
		// A parse failure degrades to an empty document; the renderer
		// still emits a minimal valid file.
		doc = &htmldoc.Document{}
	}

	model := p.parser.Parse(doc)
	latex, err := rendering.RenderLaTeX(model)
	if err != nil {
		return Result{}, err
	}

	return Result{
		LaTeX:    latex,
		Model:    model,
		Degraded: model.IsEmpty(),
	}, nil
}

// ConvertDocument fetches a stored document's HTML and converts it. Fetch
// errors are returned as-is so callers can match the docstore taxonomy.
func (p *Pipeline) ConvertDocument(ctx context.Context, userID, documentID string) (Result, error) {
	if p.store == nil {
		return Result{}, fmt.Errorf("no document store configured")
	}

	html, err := p.store.FetchHTML(ctx, userID, documentID)
	if err != nil {
		return Result{}, err
	}

	return p.Convert(html)
}

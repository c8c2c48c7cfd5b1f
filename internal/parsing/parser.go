// Package parsing implements the heuristic parsers that turn normalized
// resume text into structured records: contact extraction, section
// chunking, and the per-section sub-parsers. Every parser is total over
// arbitrary text input; unrecognized content degrades to raw-line
// fallbacks instead of errors.
package parsing

import (
	"github.com/mwhitlatch/resumetex/internal/htmldoc"
	"github.com/mwhitlatch/resumetex/internal/types"
)

// Canonical section names the sub-parsers are dispatched on.
const (
	SectionEducation  = "Education"
	SectionExperience = "Experience"
	SectionProjects   = "Projects"
	SectionSkills     = "Technical Skills"
)

// Parser parses normalized resume documents using an immutable vocabulary.
// Safe for concurrent use.
type Parser struct {
	vocab *Vocabulary
	pat   *patterns
}

// NewParser builds a Parser around the given vocabulary, compiling its
// patterns once. A nil vocabulary selects DefaultVocabulary.
func NewParser(vocab *Vocabulary) *Parser {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Parser{vocab: vocab, pat: compilePatterns(vocab)}
}

// Vocabulary returns the table set the parser was built with.
func (p *Parser) Vocabulary() *Vocabulary {
	return p.vocab
}

// Parse assembles the full resume model from a normalized document.
func (p *Parser) Parse(doc *htmldoc.Document) *types.ResumeModel {
	lines := doc.Lines()
	text := doc.Text()

	model := &types.ResumeModel{
		Name:    p.ExtractName(lines),
		Contact: p.ExtractContact(text),
	}

	for _, section := range p.ChunkSections(doc.Elements()) {
		switch section.Name {
		case SectionEducation:
			model.Education = append(model.Education, p.ParseEducation(section.Lines)...)
		case SectionExperience:
			model.Experience = append(model.Experience, p.ParseExperience(section.Lines)...)
		case SectionProjects:
			model.Projects = append(model.Projects, p.ParseProjects(section.Lines)...)
		case SectionSkills:
			model.Skills = append(model.Skills, p.ParseSkills(section.Lines)...)
		}
	}

	return model
}

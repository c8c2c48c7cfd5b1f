package parsing

import (
	"strings"
	"unicode"

	"github.com/mwhitlatch/resumetex/internal/htmldoc"
	"github.com/mwhitlatch/resumetex/internal/types"
)

// introSection names the implicit section holding content that appears
// before the first heading.
const introSection = "Intro"

// ChunkSections splits the document's elements into named sections. A new
// section opens at every heading-tagged element and at every line that
// matches the heading vocabulary; all other non-empty text accumulates into
// the current section. Sections are flushed only when they carry lines.
func (p *Parser) ChunkSections(elements []htmldoc.Element) []types.Section {
	var sections []types.Section
	current := types.Section{Name: introSection}

	flush := func() {
		if len(current.Lines) > 0 {
			sections = append(sections, current)
		}
	}

	for _, el := range elements {
		if isHeadingTag(el.Tag) || p.pat.headingLine.MatchString(el.Text) {
			flush()
			current = types.Section{Name: p.canonicalSectionName(el.Text)}
			continue
		}
		if el.Text != "" {
			current.Lines = append(current.Lines, el.Text)
		}
	}
	flush()

	return sections
}

// canonicalSectionName maps a raw heading to its canonical section name:
// the first rule whose substring appears in the lowercased heading wins,
// otherwise the lowercased heading with its first rune upper-cased.
func (p *Parser) canonicalSectionName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.TrimSpace(strings.TrimRight(name, ":"))
	for _, rule := range p.vocab.SectionRules {
		if strings.Contains(name, rule.Contains) {
			return rule.Canonical
		}
	}
	return upperFirst(name)
}

// isHeadingLine reports whether a text line is one of the section-heading
// keywords. Used by the sub-parsers to stop bullet runs.
func (p *Parser) isHeadingLine(line string) bool {
	return p.pat.headingLine.MatchString(line)
}

func isHeadingTag(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

func upperFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

package parsing

import (
	"strings"
	"unicode"

	"github.com/mwhitlatch/resumetex/internal/types"
)

// Fallback bucket labels, in render order.
const (
	bucketLanguages = "Languages"
	bucketWeb       = "Web & Services"
	bucketTools     = "Developer Tools"
	bucketLibraries = "Libraries"
)

// ParseSkills turns a Technical Skills section into labeled rows. Labeled
// "Category: values" fragments win outright; otherwise tokens are bucketed
// into the four stock categories by keyword membership.
func (p *Parser) ParseSkills(lines []string) []types.SkillRow {
	joined := strings.Join(lines, "\n")

	var rows []types.SkillRow
	for _, frag := range p.pat.skillFragment.Split(joined, -1) {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		m := p.pat.skillLabel.FindStringSubmatch(frag)
		if m == nil || !isCapitalizedSequence(m[1]) {
			continue
		}
		rows = append(rows, types.SkillRow{
			Label:  strings.TrimSpace(m[1]),
			Values: strings.TrimSpace(m[2]),
		})
	}
	if len(rows) > 0 {
		return rows
	}

	return p.bucketSkills(joined)
}

// bucketSkills distributes comma- or glyph-separated tokens across the
// stock categories; unmatched tokens land in Libraries.
func (p *Parser) bucketSkills(text string) []types.SkillRow {
	buckets := map[string][]string{}
	seen := map[string]map[string]bool{}

	add := func(bucket, token string) {
		key := strings.ToLower(token)
		if seen[bucket] == nil {
			seen[bucket] = make(map[string]bool)
		}
		if seen[bucket][key] {
			return
		}
		seen[bucket][key] = true
		buckets[bucket] = append(buckets[bucket], token)
	}

	for _, tok := range p.pat.skillToken.Split(text, -1) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		switch key := strings.ToLower(tok); {
		case p.pat.languages[key]:
			add(bucketLanguages, tok)
		case p.pat.web[key]:
			add(bucketWeb, tok)
		case p.pat.tools[key]:
			add(bucketTools, tok)
		default:
			add(bucketLibraries, tok)
		}
	}

	var rows []types.SkillRow
	for _, label := range []string{bucketLanguages, bucketWeb, bucketTools, bucketLibraries} {
		if values := buckets[label]; len(values) > 0 {
			rows = append(rows, types.SkillRow{Label: label, Values: strings.Join(values, ", ")})
		}
	}
	return rows
}

// isCapitalizedSequence reports whether every word of a label starts with
// an upper-case letter or an ampersand.
func isCapitalizedSequence(label string) bool {
	for _, word := range strings.Fields(label) {
		r := []rune(word)[0]
		if r != '&' && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

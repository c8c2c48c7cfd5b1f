package parsing

import (
	"regexp"
	"strings"
)

// dateJoiner is the canonical separator between the two ends of a range:
// space, en-dash, space.
const dateJoiner = " – "

var (
	dashRun    = regexp.MustCompile(`\s*[-\x{2013}\x{2014}]+\s*`)
	doubledDot = regexp.MustCompile(`\.{2,}`)
)

// NormalizeDateRange canonicalizes a date-range fragment: dash runs become
// the en-dash joiner, whitespace collapses, month words shorten to their
// table form, and leftover doubled punctuation is cleaned. Idempotent.
func (p *Parser) NormalizeDateRange(s string) string {
	s = dashRun.ReplaceAllString(s, dateJoiner)
	s = strings.Join(strings.Fields(s), " ")
	s = p.pat.monthWord.ReplaceAllStringFunc(s, func(m string) string {
		key := strings.ToLower(strings.TrimSuffix(m, "."))
		if canon, ok := p.vocab.Months[key]; ok {
			return canon
		}
		return m
	})
	s = doubledDot.ReplaceAllString(s, ".")
	s = strings.ReplaceAll(s, " - ", dateJoiner)
	for strings.Contains(s, "– –") {
		s = strings.ReplaceAll(s, "– –", "–")
	}
	return strings.TrimSpace(s)
}

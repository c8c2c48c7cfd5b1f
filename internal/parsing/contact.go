package parsing

import (
	"strings"

	"github.com/mwhitlatch/resumetex/internal/types"
)

// ExtractContact scans the document's visible text for contact fields.
// Absent categories stay empty; extraction never fails.
func (p *Parser) ExtractContact(text string) types.ContactInfo {
	var c types.ContactInfo
	c.Email = p.pat.email.FindString(text)
	c.Phone = strings.TrimSpace(p.pat.phone.FindString(text))
	c.LinkedIn = p.pat.linkedin.FindString(text)
	c.GitHub = p.pat.github.FindString(text)

	seen := make(map[string]bool)
	for _, u := range p.pat.url.FindAllString(text, -1) {
		u = strings.TrimRight(u, ".,;:!?)")
		lower := strings.ToLower(u)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		if seen[lower] {
			continue
		}
		seen[lower] = true
		c.Other = append(c.Other, u)
		if len(c.Other) >= p.vocab.Limits.MaxOtherLinks {
			break
		}
	}
	return c
}

// ExtractName picks the document's display name: the first of the leading
// lines that does not mention a section keyword.
func (p *Parser) ExtractName(lines []string) string {
	for i, ln := range lines {
		if i >= p.vocab.Limits.NameScanLines {
			break
		}
		ln = strings.TrimSpace(ln)
		if ln == "" || p.pat.sectionWord.MatchString(ln) {
			continue
		}
		return truncateRunes(ln, p.vocab.Limits.NameMaxLen)
	}
	return ""
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

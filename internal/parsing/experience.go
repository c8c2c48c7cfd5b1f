package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/mwhitlatch/resumetex/internal/types"
)

// dateLookahead is how many lines past the company line may carry the
// record's date range.
const dateLookahead = 3

// ParseExperience turns an Experience section's lines into position
// records. Each record reads: company line, optional role line, then
// bullets until a heading keyword or an overlong prose line.
func (p *Parser) ParseExperience(lines []string) []types.ExperienceEntry {
	work := make([]string, len(lines))
	copy(work, lines)

	var entries []types.ExperienceEntry
	i := 0
	for i < len(work) {
		head := strings.TrimSpace(work[i])
		if head == "" || p.isHeadingLine(head) {
			i++
			continue
		}

		var e types.ExperienceEntry

		// The date range sits on the company line or within the next few
		// lines; the matched text is excised from wherever it was found.
		for j := i; j < len(work) && j < i+dateLookahead; j++ {
			if m := p.pat.dateRange.FindString(work[j]); m != "" {
				e.Dates = p.NormalizeDateRange(m)
				work[j] = strings.TrimSpace(strings.Replace(work[j], m, "", 1))
				break
			}
		}

		head = strings.TrimSpace(work[i])
		if head == "" {
			// The line held only the date.
			i++
			continue
		}

		e.Company = trimSeparatorTail(p.trimBulletSuffix(head))
		i++
		if e.Company == "" {
			continue
		}

		// Skip lines emptied by the date excision.
		for i < len(work) && strings.TrimSpace(work[i]) == "" {
			i++
		}
		next := ""
		if i < len(work) {
			next = strings.TrimSpace(work[i])
		}
		if next != "" && p.pat.roleWord.MatchString(next) {
			e.Role, e.Location = p.splitLocationTail(next)
			i++
		} else if halves := p.pat.companySplit.Split(e.Company, 2); len(halves) == 2 {
			e.Company = strings.TrimSpace(halves[0])
			e.Role = strings.TrimSpace(halves[1])
		}

		for i < len(work) {
			l := strings.TrimSpace(work[i])
			if l == "" {
				i++
				continue
			}
			if p.isHeadingLine(l) {
				break
			}
			if utf8.RuneCountInString(l) > p.vocab.Limits.LongBodyLine && !p.looksLikeBullet(l) {
				i++
				break
			}
			e.Bullets = append(e.Bullets, p.splitBullets(l)...)
			i++
		}

		if e.Company != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

// splitLocationTail splits a trailing ", City, ST" suffix off a role line.
func (p *Parser) splitLocationTail(line string) (role, location string) {
	if m := p.pat.locationTail.FindStringSubmatchIndex(line); m != nil {
		location = line[m[2]:m[3]]
		role = strings.TrimSpace(strings.TrimRight(line[:m[0]], ", "))
		return role, location
	}
	return strings.TrimSpace(line), ""
}

// trimBulletSuffix drops everything from the first bullet glyph onward.
func (p *Parser) trimBulletSuffix(line string) string {
	if idx := strings.IndexAny(line, p.vocab.BulletGlyphs); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// looksLikeBullet reports whether a line opens with a list marker.
func (p *Parser) looksLikeBullet(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	return strings.ContainsRune(p.vocab.BulletGlyphs+"-–—*", r)
}

// containsBulletMarker reports whether a bullet glyph appears anywhere in
// the line.
func (p *Parser) containsBulletMarker(line string) bool {
	return strings.ContainsAny(line, p.vocab.BulletGlyphs)
}

// splitBullets explodes a line into one bullet per glyph-delimited item,
// stripping leading list markers from each.
func (p *Parser) splitBullets(line string) []string {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(p.vocab.BulletGlyphs, r)
	})
	bullets := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(strings.TrimLeft(part, "-–—* \t"))
		if part != "" {
			bullets = append(bullets, part)
		}
	}
	return bullets
}

// trimSeparatorTail removes leftover delimiter characters from the end of
// a line, typically after a date range was excised.
func trimSeparatorTail(line string) string {
	return strings.TrimSpace(strings.TrimRight(line, " \t|,-–—"))
}

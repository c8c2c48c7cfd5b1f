package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/mwhitlatch/resumetex/internal/types"
)

// ParseProjects turns a Projects section's lines into project records.
// A head line carries the title, an optional inline date range, and an
// optional "| stack" suffix. Bullets follow until the run terminates.
func (p *Parser) ParseProjects(lines []string) []types.ProjectEntry {
	var entries []types.ProjectEntry

	i := 0
	for i < len(lines) {
		head := strings.TrimSpace(lines[i])
		if head == "" || p.isHeadingLine(head) {
			i++
			continue
		}

		var e types.ProjectEntry
		if m := p.pat.dateRange.FindString(head); m != "" {
			e.Dates = p.NormalizeDateRange(m)
			head = strings.TrimSpace(strings.Replace(head, m, "", 1))
			head = trimSeparatorTail(head)
		}
		if idx := strings.LastIndex(head, "|"); idx >= 0 {
			e.Stack = strings.TrimSpace(head[idx+1:])
			head = strings.TrimSpace(head[:idx])
		}
		e.Title = head
		i++

		// Bullet run: glyph-marked lines are bullets, long unmarked lines
		// are prose bullets, and a short unmarked line reads as the next
		// project's head.
		for i < len(lines) {
			l := strings.TrimSpace(lines[i])
			if l == "" {
				i++
				continue
			}
			if p.isHeadingLine(l) {
				break
			}
			if len(e.Bullets) >= p.vocab.Limits.ProjectBulletScan {
				break
			}
			length := utf8.RuneCountInString(l)
			if length > p.vocab.Limits.LongProjectLine && !p.containsBulletMarker(l) {
				i++
				break
			}
			if !p.looksLikeBullet(l) && length < p.vocab.Limits.ShortHeadLine {
				break
			}
			e.Bullets = append(e.Bullets, p.splitBullets(l)...)
			i++
		}

		if e.Title != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

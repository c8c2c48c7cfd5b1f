package parsing

import (
	"strings"

	"github.com/mwhitlatch/resumetex/internal/types"
)

// ParseEducation turns an Education section's lines into school records.
// A line opening with an institution keyword starts a new record; other
// lines buffer into the current one. Records without a school are dropped.
func (p *Parser) ParseEducation(lines []string) []types.EducationEntry {
	var entries []types.EducationEntry
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		if entry, ok := p.educationRecord(buf); ok {
			entries = append(entries, entry)
		}
		buf = nil
	}

	for _, line := range lines {
		if p.pat.institutionStart.MatchString(line) {
			flush()
		}
		buf = append(buf, line)
	}
	flush()

	return entries
}

// educationRecord extracts one entry from a record buffer. The joined text
// is searched for a date range, then for school and location, then for a
// degree phrase; each step has a raw-text fallback so extraction is total.
func (p *Parser) educationRecord(buf []string) (types.EducationEntry, bool) {
	joined := strings.Join(buf, "\n")
	var e types.EducationEntry

	if m := p.pat.monthRange.FindString(joined); m != "" {
		e.Dates = p.NormalizeDateRange(m)
		joined = strings.Replace(joined, m, "", 1)
	} else if m := p.pat.yearRange.FindString(joined); m != "" {
		e.Dates = p.NormalizeDateRange(m)
		joined = strings.Replace(joined, m, "", 1)
	}

	if m := p.pat.schoolDashCity.FindStringSubmatch(joined); m != nil {
		e.School = strings.TrimSpace(m[1])
		e.Location = strings.TrimSpace(m[2])
	} else if m := p.pat.institutionCity.FindStringSubmatch(joined); m != nil {
		e.School = strings.TrimSpace(m[1])
		e.Location = strings.TrimSpace(m[2])
	} else {
		e.School = trimDelimitedSuffix(firstNonEmptyLine(joined))
	}

	e.Degree = p.findDegree(joined)

	if e.School == "" {
		return e, false
	}
	return e, true
}

// findDegree locates a degree keyword followed by a field word and returns
// the phrase up to the next delimiter. Without a match the whole collapsed
// buffer text stands in as the degree.
func (p *Parser) findDegree(text string) string {
	for _, loc := range p.pat.degreeStart.FindAllStringIndex(text, -1) {
		phrase := phraseFrom(text, loc[0])
		rest := phrase[loc[1]-loc[0]:]
		if p.pat.degreeFollow.MatchString(rest) {
			return strings.TrimSpace(phrase)
		}
	}
	return strings.Join(strings.Fields(text), " ")
}

// phraseFrom slices text from start up to the next field delimiter.
func phraseFrom(text string, start int) string {
	tail := text[start:]
	if end := strings.IndexAny(tail, ",|•\n"); end >= 0 {
		return tail[:end]
	}
	return tail
}

// trimDelimitedSuffix keeps the portion of a line before its first comma
// or pipe.
func trimDelimitedSuffix(line string) string {
	if idx := strings.IndexAny(line, ",|"); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

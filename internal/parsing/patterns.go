package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// patterns holds the regular expressions and membership sets compiled from a
// Vocabulary. Compiled once per Parser.
type patterns struct {
	email    *regexp.Regexp
	phone    *regexp.Regexp
	linkedin *regexp.Regexp
	github   *regexp.Regexp
	url      *regexp.Regexp

	sectionWord *regexp.Regexp
	headingLine *regexp.Regexp

	monthRange *regexp.Regexp
	yearRange  *regexp.Regexp
	dateRange  *regexp.Regexp
	monthWord  *regexp.Regexp

	institutionStart *regexp.Regexp
	schoolDashCity   *regexp.Regexp
	institutionCity  *regexp.Regexp
	degreeStart      *regexp.Regexp
	degreeFollow     *regexp.Regexp

	roleWord      *regexp.Regexp
	locationTail  *regexp.Regexp
	companySplit  *regexp.Regexp
	skillFragment *regexp.Regexp
	skillLabel    *regexp.Regexp
	skillToken    *regexp.Regexp

	languages map[string]bool
	web       map[string]bool
	tools     map[string]bool
}

func compilePatterns(v *Vocabulary) *patterns {
	months := alternation(keysOf(v.Months))
	monthYear := `(?:` + months + `)\.?,?\s*\d{4}`
	year := `(?:19|20)\d{2}`
	open := `present|current`
	dateToken := `(?:` + monthYear + `|` + year + `)`

	glyphs := regexp.QuoteMeta(v.BulletGlyphs)

	return &patterns{
		email:    regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`),
		phone:    regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-])?(?:\(?\d{3}\)?[\s.\-])?\d{3}[\s.\-]\d{4}`),
		linkedin: regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[a-z0-9_%\-]+/?`),
		github:   regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[a-z0-9\-]+/?`),
		url:      regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s<>"']+`),

		sectionWord: regexp.MustCompile(`(?i)education|experience|projects|skills`),
		headingLine: regexp.MustCompile(`(?i)^\s*(?:` + alternation(v.HeadingWords) + `)\s*:?\s*$`),

		monthRange: regexp.MustCompile(`(?i)\b` + monthYear + `\s*[-–—]+\s*(?:` + dateToken + `|` + open + `)\b`),
		yearRange:  regexp.MustCompile(`(?i)\b` + year + `\s*[-–—]+\s*(?:` + year + `|` + open + `)\b`),
		dateRange:  regexp.MustCompile(`(?i)\b` + dateToken + `\s*[-–—]+\s*(?:` + dateToken + `|` + open + `)\b`),
		monthWord:  regexp.MustCompile(`(?i)\b(?:` + months + `)\b\.?`),

		institutionStart: regexp.MustCompile(`(?i)^\s*(?:` + alternation(v.Institutions) + `)\b`),
		schoolDashCity:   regexp.MustCompile(`([^\n•|]{2,}?)\s*[–—-]+\s*([A-Za-z][A-Za-z .']*,\s*[A-Z]{2})\b`),
		institutionCity:  regexp.MustCompile(`([^\n•|]*(?i:` + alternation(v.Institutions) + `)[^\n•|,]*),\s*([A-Za-z][A-Za-z .']*,\s*[A-Z]{2})\b`),
		degreeStart:      regexp.MustCompile(`(?i)\b(?:` + alternation(v.Degrees) + `)\b`),
		degreeFollow:     regexp.MustCompile(`(?i:\b(?:` + alternation(v.Fields) + `)\b)|\b[A-Z][a-z]+`),

		roleWord:      regexp.MustCompile(`(?i)\b(?:` + alternation(v.Roles) + `)\b`),
		locationTail:  regexp.MustCompile(`,\s*([A-Za-z][A-Za-z .']*?,\s*[A-Z]{2})\s*$`),
		companySplit:  regexp.MustCompile(`\s+[-–—]+\s+|\s*[–—]+\s*`),
		skillFragment: regexp.MustCompile("\n|[ \t]{2,}|\\|"),
		skillLabel:    regexp.MustCompile(`^([A-Z][A-Za-z&+./\- ]{2,19}):\s*(.+)$`),
		skillToken:    regexp.MustCompile(`[,\n|` + glyphs + `]`),

		languages: toSet(v.Languages),
		web:       toSet(v.WebServices),
		tools:     toSet(v.DevTools),
	}
}

// alternation quotes the words and joins them into a regexp alternation,
// longest first so multi-word entries win over their prefixes.
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

func keysOf(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

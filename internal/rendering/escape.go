// Package rendering provides functionality to render LaTeX resumes from parsed models.
package rendering

import "strings"

// EscapeLaTeX escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~ < > | and non-breaking spaces.
// Each input rune is mapped at most once, so the backslashes introduced by
// the replacements are never themselves re-escaped.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2) // Pre-allocate space for potential escaping

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		case '$':
			result.WriteString(`\$`)
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '_':
			result.WriteString(`\_`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		case '<':
			result.WriteString(`\textless{}`)
		case '>':
			result.WriteString(`\textgreater{}`)
		case '|':
			result.WriteString(`\textbar{}`)
		case ' ':
			result.WriteByte(' ')
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

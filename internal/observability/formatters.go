// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mwhitlatch/resumetex/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintModel outputs a human-readable summary of the parsed resume model.
func (p *Printer) PrintModel(model *types.ResumeModel) {
	if model == nil {
		return
	}

	var sb strings.Builder

	if model.IsEmpty() {
		sb.WriteString("No resume structure recognized.\n")
		sb.WriteString("The document renders as a minimal empty resume.")
		p.printBox("PARSED RESUME", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Name:     %s\n", model.Name))

	if model.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", model.Contact.Email))
	}
	if model.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", model.Contact.Phone))
	}
	if model.Contact.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", model.Contact.LinkedIn))
	}
	if model.Contact.GitHub != "" {
		sb.WriteString(fmt.Sprintf("GitHub:   %s\n", model.Contact.GitHub))
	}
	for _, link := range model.Contact.Other {
		sb.WriteString(fmt.Sprintf("Link:     %s\n", link))
	}
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	sb.WriteString(fmt.Sprintf("  Education:   %d entries\n", len(model.Education)))
	sb.WriteString(fmt.Sprintf("  Experience:  %d entries\n", len(model.Experience)))
	sb.WriteString(fmt.Sprintf("  Projects:    %d entries\n", len(model.Projects)))
	sb.WriteString(fmt.Sprintf("  Skills:      %d rows", len(model.Skills)))

	p.printBox("PARSED RESUME", sb.String())
}

// PrintExperience outputs the parsed experience entries with bullet counts.
func (p *Printer) PrintExperience(entries []types.ExperienceEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, entry.Company))
		if entry.Role != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", entry.Role))
		}
		if entry.Dates != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", entry.Dates))
		}
		sb.WriteString(fmt.Sprintf("    %d bullets\n", len(entry.Bullets)))
		if len(entry.Bullets) > 0 {
			text := entry.Bullets[0]
			if len(text) > 50 {
				text = text[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("    • %s\n", text))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE ENTRIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProjects outputs the parsed project entries.
func (p *Printer) PrintProjects(entries []types.ProjectEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, entry.Title))
		if entry.Stack != "" {
			stack := entry.Stack
			if len(stack) > 40 {
				stack = stack[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Stack: %s\n", stack))
		}
		sb.WriteString(fmt.Sprintf("    %d bullets\n", len(entry.Bullets)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("PROJECT ENTRIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the parsed skill rows.
func (p *Printer) PrintSkills(rows []types.SkillRow) {
	if len(rows) == 0 {
		return
	}

	var sb strings.Builder

	for i, row := range rows {
		values := row.Values
		if len(values) > 40 {
			values = values[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s: %s", row.Label, values))
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("TECHNICAL SKILLS", sb.String())
}

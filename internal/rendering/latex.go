// Package rendering provides functionality to render LaTeX resumes from parsed models.
package rendering

import (
	"fmt"
	"strings"

	"github.com/mwhitlatch/resumetex/internal/types"
)

// Bullet lists are truncated at render time to keep entries compact.
const (
	MaxExperienceBullets = 6
	MaxProjectBullets    = 5
)

// TemplateData represents the data structure passed to the LaTeX template.
// Scalar fields are escaped by the template itself; ContactLine is assembled
// here and arrives LaTeX-ready.
type TemplateData struct {
	Name        string
	ContactLine string
	Education   []types.EducationEntry
	Experience  []types.ExperienceEntry
	Projects    []types.ProjectEntry
	Skills      []types.SkillRow
}

// RenderLaTeX renders a parsed resume model into a complete LaTeX document.
// The preamble and macros are fixed; only escaped model fields are
// interpolated. Sections without records are omitted entirely.
func RenderLaTeX(model *types.ResumeModel) (string, error) {
	var result strings.Builder
	if err := resumeTmpl.Execute(&result, buildTemplateData(model)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute resume template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// buildTemplateData constructs the template data structure from the model,
// assembling the contact line and truncating bullet lists to the caps.
func buildTemplateData(model *types.ResumeModel) *TemplateData {
	if model == nil {
		model = &types.ResumeModel{}
	}

	data := &TemplateData{
		Name:        model.Name,
		ContactLine: contactLine(&model.Contact),
		Education:   model.Education,
		Skills:      model.Skills,
	}

	for _, e := range model.Experience {
		e.Bullets = capBullets(e.Bullets, MaxExperienceBullets)
		data.Experience = append(data.Experience, e)
	}
	for _, p := range model.Projects {
		p.Bullets = capBullets(p.Bullets, MaxProjectBullets)
		data.Projects = append(data.Projects, p)
	}

	return data
}

// contactLine joins the present contact fields with the " $|$ " separator.
// Links keep the matched text as the hyperlink target; only the displayed
// text is escaped, with URL schemes stripped for display.
func contactLine(c *types.ContactInfo) string {
	var parts []string

	if c.Email != "" {
		parts = append(parts, fmt.Sprintf(`\href{mailto:%s}{\underline{%s}}`, c.Email, EscapeLaTeX(c.Email)))
	}
	if c.Phone != "" {
		parts = append(parts, EscapeLaTeX(c.Phone))
	}
	if c.LinkedIn != "" {
		parts = append(parts, linkPart(c.LinkedIn))
	}
	if c.GitHub != "" {
		parts = append(parts, linkPart(c.GitHub))
	}
	for _, link := range c.Other {
		parts = append(parts, linkPart(link))
	}

	return strings.Join(parts, " $|$ ")
}

// linkPart formats one URL as a hyperlink with its scheme stripped from the
// displayed text.
func linkPart(link string) string {
	return fmt.Sprintf(`\href{%s}{\underline{%s}}`, hrefTarget(link), EscapeLaTeX(stripScheme(link)))
}

// hrefTarget defaults the scheme when the matched URL carried none, so the
// link does not resolve as a relative path.
func hrefTarget(link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return "https://" + link
}

func stripScheme(link string) string {
	link = strings.TrimPrefix(link, "https://")
	link = strings.TrimPrefix(link, "http://")
	return link
}

// capBullets returns at most max bullets.
func capBullets(bullets []string, max int) []string {
	if len(bullets) > max {
		return bullets[:max]
	}
	return bullets
}

// Package types provides type definitions for structured data used throughout the resumetex system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeModel is the structured form of a parsed resume document.
type ResumeModel struct {
	Name       string            `json:"name,omitempty"`
	Contact    ContactInfo       `json:"contact"`
	Education  []EducationEntry  `json:"education,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Projects   []ProjectEntry    `json:"projects,omitempty"`
	Skills     []SkillRow        `json:"skills,omitempty"`
}

// ContactInfo holds the contact fields recognized in the document text.
type ContactInfo struct {
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	LinkedIn string   `json:"linkedin,omitempty"`
	GitHub   string   `json:"github,omitempty"`
	Other    []string `json:"other,omitempty"`
}

// Section is a named run of text lines produced by the section chunker.
type Section struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// EducationEntry represents one school record.
type EducationEntry struct {
	School   string `json:"school"`
	Degree   string `json:"degree,omitempty"`
	Location string `json:"location,omitempty"`
	Dates    string `json:"dates,omitempty"`
}

// ExperienceEntry represents one position record.
type ExperienceEntry struct {
	Company  string   `json:"company"`
	Role     string   `json:"role,omitempty"`
	Location string   `json:"location,omitempty"`
	Dates    string   `json:"dates,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
}

// ProjectEntry represents one project record.
type ProjectEntry struct {
	Title   string   `json:"title"`
	Stack   string   `json:"stack,omitempty"`
	Dates   string   `json:"dates,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// SkillRow is one labeled row of the skills table.
type SkillRow struct {
	Label  string `json:"label"`
	Values string `json:"values"`
}

// IsEmpty reports whether nothing at all was recognized in the document:
// no name, no contact fields, and no section records.
func (m *ResumeModel) IsEmpty() bool {
	return m.Name == "" &&
		m.Contact.IsEmpty() &&
		len(m.Education) == 0 &&
		len(m.Experience) == 0 &&
		len(m.Projects) == 0 &&
		len(m.Skills) == 0
}

// IsEmpty reports whether no contact field was recognized.
func (c *ContactInfo) IsEmpty() bool {
	return c.Email == "" && c.Phone == "" && c.LinkedIn == "" && c.GitHub == "" && len(c.Other) == 0
}

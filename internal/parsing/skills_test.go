package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitlatch/resumetex/internal/types"
)

func TestParseSkills_LabeledRows(t *testing.T) {
	p := NewParser(nil)

	rows := p.ParseSkills([]string{
		"Languages: Python, Go, SQL",
		"Developer Tools: Git, Docker",
	})

	require.Len(t, rows, 2)
	assert.Equal(t, types.SkillRow{Label: "Languages", Values: "Python, Go, SQL"}, rows[0])
	assert.Equal(t, types.SkillRow{Label: "Developer Tools", Values: "Git, Docker"}, rows[1])
}

func TestParseSkills_PipeSeparatedLabeledFragments(t *testing.T) {
	p := NewParser(nil)

	rows := p.ParseSkills([]string{
		"Languages: Python | Frameworks: Flask, Django",
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "Languages", rows[0].Label)
	assert.Equal(t, "Frameworks", rows[1].Label)
}

func TestParseSkills_FallbackBuckets(t *testing.T) {
	p := NewParser(nil)

	rows := p.ParseSkills([]string{"Python, React, Git, Pandas"})

	require.Len(t, rows, 4)
	assert.Equal(t, types.SkillRow{Label: "Languages", Values: "Python"}, rows[0])
	assert.Equal(t, types.SkillRow{Label: "Web & Services", Values: "React"}, rows[1])
	assert.Equal(t, types.SkillRow{Label: "Developer Tools", Values: "Git"}, rows[2])
	assert.Equal(t, types.SkillRow{Label: "Libraries", Values: "Pandas"}, rows[3])
}

func TestParseSkills_FallbackDeduplicates(t *testing.T) {
	p := NewParser(nil)

	rows := p.ParseSkills([]string{"Python, python, PYTHON, NumPy, NumPy"})

	require.Len(t, rows, 2)
	assert.Equal(t, "Python", rows[0].Values)
	assert.Equal(t, "NumPy", rows[1].Values)
}

func TestParseSkills_FallbackKeepsTokenOrderWithinBucket(t *testing.T) {
	p := NewParser(nil)

	rows := p.ParseSkills([]string{"Go, Python • TypeScript"})

	require.Len(t, rows, 1)
	assert.Equal(t, types.SkillRow{Label: "Languages", Values: "Go, Python, TypeScript"}, rows[0])
}

func TestParseSkills_LowercaseLabelNotARow(t *testing.T) {
	p := NewParser(nil)

	rows := p.ParseSkills([]string{"things i like: naps, coffee"})

	// No capitalized label, so tokens fall through to the buckets.
	require.Len(t, rows, 1)
	assert.Equal(t, "Libraries", rows[0].Label)
}

func TestParseSkills_EmptyInput(t *testing.T) {
	p := NewParser(nil)

	assert.Empty(t, p.ParseSkills(nil))
	assert.Empty(t, p.ParseSkills([]string{"   "}))
}

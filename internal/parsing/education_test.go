package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducation_FullRecord(t *testing.T) {
	p := NewParser(nil)

	entries := p.ParseEducation([]string{
		"University of Texas at Austin, Austin, TX",
		"B.S. in Computer Science",
		"Aug 2019 - May 2023",
	})

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "University of Texas at Austin", e.School)
	assert.Equal(t, "Austin, TX", e.Location)
	assert.Equal(t, "B.S. in Computer Science", e.Degree)
	assert.Equal(t, "Aug. 2019 – May 2023", e.Dates)
}

func TestParseEducation_DashLocationPattern(t *testing.T) {
	p := NewParser(nil)

	entries := p.ParseEducation([]string{
		"College of William and Mary – Williamsburg, VA",
		"Bachelor of Arts in History",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "College of William and Mary", entries[0].School)
	assert.Equal(t, "Williamsburg, VA", entries[0].Location)
	assert.Equal(t, "Bachelor of Arts in History", entries[0].Degree)
}

func TestParseEducation_MultipleRecords(t *testing.T) {
	p := NewParser(nil)

	entries := p.ParseEducation([]string{
		"University of Washington, Seattle, WA",
		"M.S. in Information Science",
		"2021 - 2023",
		"College of the Desert, Palm Desert, CA",
		"Associate of Science",
		"2019 - 2021",
	})

	require.Len(t, entries, 2)
	assert.Equal(t, "University of Washington", entries[0].School)
	assert.Equal(t, "2021 – 2023", entries[0].Dates)
	assert.Equal(t, "College of the Desert", entries[1].School)
	assert.Equal(t, "Associate of Science", entries[1].Degree)
}

func TestParseEducation_YearRangeFallback(t *testing.T) {
	p := NewParser(nil)

	entries := p.ParseEducation([]string{
		"University of Nowhere",
		"2018 - Present",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "2018 – Present", entries[0].Dates)
}

func TestParseEducation_MonthRangePreferredOverYearRange(t *testing.T) {
	p := NewParser(nil)

	entries := p.ParseEducation([]string{
		"University of Somewhere",
		"Class of 2019-2023, attended Sep 2019 - Jun 2023",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Sep. 2019 – Jun. 2023", entries[0].Dates)
}

func TestParseEducation_SchoolFallbackTrimsSuffix(t *testing.T) {
	p := NewParser(nil)

	entries := p.ParseEducation([]string{
		"School of Hard Knocks | Night Program",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "School of Hard Knocks", entries[0].School)
}

func TestParseEducation_EmptyInput(t *testing.T) {
	p := NewParser(nil)

	assert.Empty(t, p.ParseEducation(nil))
	assert.Empty(t, p.ParseEducation([]string{}))
}

func TestParseEducation_DegreeFallsBackToBufferText(t *testing.T) {
	p := NewParser(nil)

	entries := p.ParseEducation([]string{
		"University of Somewhere",
		"Certificate program",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "University of Somewhere Certificate program", entries[0].Degree)
}

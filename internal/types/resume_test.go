package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResume_RoundTrip(t *testing.T) {
	doc := map[string]any{
		"contact": map[string]any{"name": "Dana Levi", "email": "dana@example.com"},
		"summary": "Backend engineer with 7 years of experience.",
		"skills": map[string]any{
			"technical": []any{"Go", "PostgreSQL"},
			"soft":      []any{"Mentoring"},
		},
		"experience": []any{
			map[string]any{
				"title":        "Senior Engineer",
				"company":      "Acme",
				"achievements": []any{"Cut latency by 40%"},
			},
		},
	}

	resume, err := DecodeResume(doc)
	require.NoError(t, err)
	assert.Equal(t, "Dana Levi", resume.Contact.Name)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, resume.Skills.Technical)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Acme", resume.Experience[0].Company)

	back, err := resume.ToMap()
	require.NoError(t, err)
	skills := back["skills"].(map[string]any)
	assert.Equal(t, []any{"Go", "PostgreSQL"}, skills["technical"])
}

func TestPlainText_ExcludesComputedFields(t *testing.T) {
	score := 87.0
	resume := &ResumeDocument{
		Summary:         "Platform engineer.",
		Skills:          Skills{Technical: []string{"Go"}},
		MatchScore:      &score,
		MissingKeywords: []string{"terraform"},
	}

	text := resume.PlainText()
	assert.Contains(t, text, "Platform engineer.")
	assert.Contains(t, text, "Go")
	assert.NotContains(t, text, "terraform")
	assert.NotContains(t, text, "87")
}

func TestJobPosting_TextFallsBackToRaw(t *testing.T) {
	structured := &JobPosting{
		JobTitle:     "Backend Engineer",
		Requirements: []string{"Go", "PostgreSQL"},
		RawText:      "should not be used",
	}
	assert.NotContains(t, structured.Text(), "should not be used")
	assert.Contains(t, structured.Text(), "Backend Engineer")

	raw := &JobPosting{RawText: "unstructured blob"}
	assert.Equal(t, "unstructured blob", raw.Text())
}

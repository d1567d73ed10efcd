package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

func TestRender_EnglishResumeIsLTR(t *testing.T) {
	resume := &types.ResumeDocument{
		Contact: types.Contact{Name: "Dana Levi", Email: "dana@example.com"},
		Summary: "Backend engineer with Go experience.",
		Skills:  types.Skills{Technical: []string{"Go", "PostgreSQL"}},
	}

	html, err := Render(resume, Options{})
	require.NoError(t, err)

	assert.Contains(t, html, `dir="ltr"`)
	assert.Contains(t, html, `lang="en"`)
	assert.Contains(t, html, "Dana Levi")
	assert.Contains(t, html, "PostgreSQL")
}

func TestRender_HebrewResumeIsRTL(t *testing.T) {
	resume := &types.ResumeDocument{
		Contact: types.Contact{Name: "דנה לוי"},
		Summary: "מהנדסת תוכנה בכירה עם ניסיון רב בפיתוח מערכות מבוזרות",
	}

	html, err := Render(resume, Options{})
	require.NoError(t, err)

	assert.Contains(t, html, `dir="rtl"`)
	assert.Contains(t, html, `lang="he"`)
}

func TestRender_ExplicitDirectionWins(t *testing.T) {
	resume := &types.ResumeDocument{Summary: "Plain English summary."}

	html, err := Render(resume, Options{Direction: "rtl"})
	require.NoError(t, err)

	assert.Contains(t, html, `dir="rtl"`)
	assert.Contains(t, html, `lang="en"`)
}

func TestRender_StyleParameters(t *testing.T) {
	resume := &types.ResumeDocument{Summary: "Engineer."}

	html, err := Render(resume, Options{Layout: "modern", Font: "Georgia, serif", Color: "#0055AA"})
	require.NoError(t, err)

	assert.Contains(t, html, "layout-modern")
	assert.Contains(t, html, "Georgia, serif")
	assert.Contains(t, html, "#0055AA")
}

func TestRender_EscapesUserContent(t *testing.T) {
	resume := &types.ResumeDocument{Summary: `<script>alert("x")</script>`}

	html, err := Render(resume, Options{})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
}

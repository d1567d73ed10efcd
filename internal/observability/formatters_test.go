package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.ScoreReport{
		Score:           72.5,
		MissingKeywords: []string{"kubernetes", "terraform"},
		Languages: map[string]types.LanguageReport{
			"en": {Score: 75.0},
			"he": {Score: 60.0, RTL: true},
		},
		QuickWins: []types.QuickWin{
			{Text: "Add kubernetes to your skills section", Impact: 10, Category: "keyword", QuickWin: true},
		},
	}

	p.PrintScoreReport(report)
	output := buf.String()

	assert.Contains(t, output, "ATS COMPATIBILITY REPORT")
	assert.Contains(t, output, "72.5")
	assert.Contains(t, output, "kubernetes")
	assert.Contains(t, output, "he (rtl)")
}

func TestPrintScoreReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintDiffs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	diffs := []types.ChangeRecord{
		{
			Summary:  "Add \"Kubernetes\" to technical skills",
			Scope:    types.ScopeBullet,
			Metadata: types.ChangeMetadata{Pointer: "/skills/technical/2"},
		},
	}

	p.PrintDiffs(diffs)
	output := buf.String()

	assert.Contains(t, output, "CHANGES")
	assert.Contains(t, output, "Kubernetes")
	assert.Contains(t, output, "/skills/technical/2")
}

func TestPrintDiffs_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDiffs(nil)

	assert.Contains(t, buf.String(), "No changes applied")
}

func TestPrintTimeline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	created := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	snapshot := &types.TimelineSnapshot{
		Past:    []types.TimelineEntry{{ATSScore: 60, CreatedAt: created}},
		Current: &types.TimelineEntry{ATSScore: 72.5, CreatedAt: created.Add(time.Hour)},
	}

	p.PrintTimeline(snapshot)
	output := buf.String()

	assert.Contains(t, output, "RESUME TIMELINE")
	assert.Contains(t, output, "(current)")
	assert.Contains(t, output, "72.5")
}

func TestPrintAgentResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AgentResult{
		Actions: []types.ActionOutcome{
			{Tool: types.ToolAddSkills, Status: types.ActionOK},
			{Tool: types.ToolChangeFont, Status: types.ActionOK, Source: "suggested"},
			{Tool: types.ToolScrapeJob, Status: types.ActionFailed, Message: "no job content retrieved"},
		},
	}

	p.PrintAgentResult(result)
	output := buf.String()

	assert.Contains(t, output, "AGENT RUN")
	assert.Contains(t, output, "✓ add_skills")
	assert.Contains(t, output, "(suggested)")
	assert.Contains(t, output, "✗ scrape_job")
}

// Package llm - suggest.go turns score gaps into advisory tool suggestions.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// Suggestion bounds. Fewer than minSuggestions is padded by the rule planner
// downstream; more than maxSuggestions is truncated here.
const (
	minSuggestions = 2
	maxSuggestions = 5
)

// suggestionPayload is the wire shape the model is asked to return.
type suggestionPayload struct {
	Tool      string         `json:"tool"`
	Args      map[string]any `json:"args"`
	Rationale string         `json:"rationale"`
}

// SuggestActions asks the model for advisory follow-up actions given the
// resume text, the posting text, and the missing keywords from a score pass.
// Every suggestion is validated against the fixed tool vocabulary; invalid
// entries are dropped rather than failing the run. Suggestions never include
// scrape_job, which is driven by user intent alone.
func SuggestActions(ctx context.Context, client Client, resumeText, jobText string, missingKeywords []string) ([]types.Action, error) {
	prompt := buildSuggestionPrompt(resumeText, jobText, missingKeywords)

	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	return ParseSuggestions(raw)
}

// ParseSuggestions decodes a JSON suggestion array and validates each entry
// against the tool vocabulary. Exposed separately so the parsing contract is
// testable without a live model.
func ParseSuggestions(raw string) ([]types.Action, error) {
	var payloads []suggestionPayload
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &payloads); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions JSON: %w", err)
	}

	var actions []types.Action
	for _, p := range payloads {
		if types.ToolName(p.Tool) == types.ToolScrapeJob {
			continue
		}
		action, err := types.DecodeAction(p.Tool, p.Args)
		if err != nil {
			continue
		}
		action.Source = "suggested"
		action.Rationale = p.Rationale
		actions = append(actions, action)
		if len(actions) == maxSuggestions {
			break
		}
	}
	return actions, nil
}

func buildSuggestionPrompt(resumeText, jobText string, missingKeywords []string) string {
	var sb strings.Builder
	sb.WriteString("You are a resume tailoring assistant. Suggest between ")
	sb.WriteString(fmt.Sprintf("%d and %d follow-up actions", minSuggestions, maxSuggestions))
	sb.WriteString(" that would improve this resume's match with the job description.\n\n")

	sb.WriteString("Available tools and their args:\n")
	sb.WriteString(`- add_skills: {"skills": ["..."]}` + "\n")
	sb.WriteString(`- rewrite_summary: {"emphasis": "..."}` + "\n")
	sb.WriteString(`- strengthen_section: {"section": "experience"|"education"|"projects"}` + "\n")
	sb.WriteString(`- change_font: {"font": "..."}` + "\n")
	sb.WriteString(`- change_color: {"color": "#RRGGBB"}` + "\n")
	sb.WriteString(`- render_layout: {"layout": "classic"|"modern"}` + "\n\n")

	sb.WriteString("Return ONLY a JSON array of objects with keys \"tool\", \"args\", \"rationale\".\n")
	sb.WriteString("No markdown, no explanation.\n\n")

	if len(missingKeywords) > 0 {
		sb.WriteString("Keywords missing from the resume: ")
		sb.WriteString(strings.Join(missingKeywords, ", "))
		sb.WriteString("\n\n")
	}

	sb.WriteString("Job description:\n\"\"\"\n")
	sb.WriteString(jobText)
	sb.WriteString("\n\"\"\"\n\n")

	sb.WriteString("Resume:\n\"\"\"\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

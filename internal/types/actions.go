package types

import (
	"encoding/json"
	"fmt"
)

// ToolName identifies a tool in the fixed agent vocabulary.
type ToolName string

// The fixed tool vocabulary. Plans referencing any other name are rejected
// at the decode boundary, not at call sites.
const (
	ToolScrapeJob         ToolName = "scrape_job"
	ToolAddSkills         ToolName = "add_skills"
	ToolRewriteSummary    ToolName = "rewrite_summary"
	ToolStrengthenSection ToolName = "strengthen_section"
	ToolChangeFont        ToolName = "change_font"
	ToolChangeColor       ToolName = "change_color"
	ToolRenderLayout      ToolName = "render_layout"
	ToolScoreResume       ToolName = "score_resume"
)

// ActionArgs is implemented by every per-tool argument record.
type ActionArgs interface {
	isActionArgs()
}

// ScrapeJobArgs carries the posting URL to scrape.
type ScrapeJobArgs struct {
	URL string `json:"url"`
}

// AddSkillsArgs lists skills to append to the technical skills section.
type AddSkillsArgs struct {
	Skills []string `json:"skills"`
}

// RewriteSummaryArgs optionally pins the emphasis of the rewritten summary.
type RewriteSummaryArgs struct {
	Emphasis string `json:"emphasis,omitempty"`
}

// StrengthenSectionArgs names the section whose bullets should be reworked.
type StrengthenSectionArgs struct {
	Section string `json:"section"`
}

// ChangeFontArgs carries the requested font family.
type ChangeFontArgs struct {
	Font string `json:"font"`
}

// ChangeColorArgs carries the requested accent color as #RRGGBB.
type ChangeColorArgs struct {
	Color string `json:"color"`
}

// RenderLayoutArgs selects the preview layout and directionality.
type RenderLayoutArgs struct {
	Layout    string `json:"layout,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// ScoreResumeArgs toggles quick-win generation for the final score pass.
type ScoreResumeArgs struct {
	GenerateQuickWins bool `json:"generate_quick_wins,omitempty"`
}

func (ScrapeJobArgs) isActionArgs()         {}
func (AddSkillsArgs) isActionArgs()         {}
func (RewriteSummaryArgs) isActionArgs()    {}
func (StrengthenSectionArgs) isActionArgs() {}
func (ChangeFontArgs) isActionArgs()        {}
func (ChangeColorArgs) isActionArgs()       {}
func (RenderLayoutArgs) isActionArgs()      {}
func (ScoreResumeArgs) isActionArgs()       {}

// Action is one planned tool invocation: a tool name from the fixed
// vocabulary plus its strongly typed arguments.
type Action struct {
	Tool      ToolName
	Args      ActionArgs
	Source    string // "rule" or "suggested"
	Rationale string
}

// DecodeAction validates a dynamically supplied (tool, args) pair against
// the fixed vocabulary and decodes the arguments into the matching typed
// record. Unknown tool names are rejected here so call sites never see them.
func DecodeAction(tool string, args map[string]any) (Action, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return Action{}, fmt.Errorf("failed to marshal action args: %w", err)
	}

	decode := func(dst ActionArgs) (Action, error) {
		if err := json.Unmarshal(raw, dst); err != nil {
			return Action{}, fmt.Errorf("failed to decode args for tool %s: %w", tool, err)
		}
		return Action{Tool: ToolName(tool), Args: deref(dst)}, nil
	}

	switch ToolName(tool) {
	case ToolScrapeJob:
		return decode(&ScrapeJobArgs{})
	case ToolAddSkills:
		return decode(&AddSkillsArgs{})
	case ToolRewriteSummary:
		return decode(&RewriteSummaryArgs{})
	case ToolStrengthenSection:
		return decode(&StrengthenSectionArgs{})
	case ToolChangeFont:
		return decode(&ChangeFontArgs{})
	case ToolChangeColor:
		return decode(&ChangeColorArgs{})
	case ToolRenderLayout:
		return decode(&RenderLayoutArgs{})
	case ToolScoreResume:
		return decode(&ScoreResumeArgs{})
	default:
		return Action{}, fmt.Errorf("unknown tool name: %q", tool)
	}
}

// deref unwraps the pointer used during decoding so Action.Args holds the
// value type declared in the vocabulary.
func deref(args ActionArgs) ActionArgs {
	switch a := args.(type) {
	case *ScrapeJobArgs:
		return *a
	case *AddSkillsArgs:
		return *a
	case *RewriteSummaryArgs:
		return *a
	case *StrengthenSectionArgs:
		return *a
	case *ChangeFontArgs:
		return *a
	case *ChangeColorArgs:
		return *a
	case *RenderLayoutArgs:
		return *a
	case *ScoreResumeArgs:
		return *a
	default:
		return args
	}
}

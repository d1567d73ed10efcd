package agent

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// colorPattern matches a #RRGGBB accent color anywhere in a clause.
var colorPattern = regexp.MustCompile(`#[0-9a-fA-F]{6}\b`)

// Plan turns a free-form user command into a deterministic tool plan. Each
// recognized intent maps to exactly one typed action; unrecognized clauses
// are ignored. A scrape action is prepended when a job URL is present, and a
// final render plus score pass always closes the plan.
func Plan(command, jobURL string) []types.Action {
	var actions []types.Action

	if jobURL != "" {
		actions = append(actions, types.Action{
			Tool:   types.ToolScrapeJob,
			Args:   types.ScrapeJobArgs{URL: jobURL},
			Source: "rule",
		})
	}

	for _, clause := range splitClauses(command) {
		if action, ok := parseClause(clause); ok {
			action.Source = "rule"
			actions = append(actions, action)
		}
	}

	if !hasTool(actions, types.ToolRenderLayout) {
		actions = append(actions, types.Action{Tool: types.ToolRenderLayout, Args: types.RenderLayoutArgs{}, Source: "rule"})
	}
	if !hasTool(actions, types.ToolScoreResume) {
		actions = append(actions, types.Action{Tool: types.ToolScoreResume, Args: types.ScoreResumeArgs{}, Source: "rule"})
	}

	return actions
}

// splitClauses breaks a command on clause separators while leaving commas
// inside argument lists (e.g. skill lists) intact.
func splitClauses(command string) []string {
	normalized := strings.NewReplacer(";", "\n", " then ", "\n", " and then ", "\n").Replace(command)
	var clauses []string
	for _, clause := range strings.Split(normalized, "\n") {
		clause = strings.TrimSpace(clause)
		if clause != "" {
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

func parseClause(clause string) (types.Action, bool) {
	lower := strings.ToLower(clause)

	switch {
	case strings.HasPrefix(lower, "add skills:") || strings.HasPrefix(lower, "add skills "):
		rest := clause[len("add skills"):]
		rest = strings.TrimLeft(rest, ": ")
		var skills []string
		for _, skill := range strings.Split(rest, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				skills = append(skills, skill)
			}
		}
		return types.Action{Tool: types.ToolAddSkills, Args: types.AddSkillsArgs{Skills: skills}}, true

	case strings.HasPrefix(lower, "change font "):
		font := strings.TrimSpace(clause[len("change font "):])
		if font == "" {
			return types.Action{}, false
		}
		return types.Action{Tool: types.ToolChangeFont, Args: types.ChangeFontArgs{Font: font}}, true

	case strings.Contains(lower, "color"):
		color := colorPattern.FindString(clause)
		if color == "" {
			return types.Action{}, false
		}
		return types.Action{Tool: types.ToolChangeColor, Args: types.ChangeColorArgs{Color: color}}, true

	case strings.Contains(lower, "optimize for job") || strings.Contains(lower, "optimize for the job"):
		// Mining fills the skill list at execution time.
		return types.Action{Tool: types.ToolAddSkills, Args: types.AddSkillsArgs{}}, true

	case strings.HasPrefix(lower, "strengthen "):
		section := strings.TrimSpace(lower[len("strengthen "):])
		section = strings.TrimSuffix(section, " section")
		if section == "" {
			return types.Action{}, false
		}
		return types.Action{Tool: types.ToolStrengthenSection, Args: types.StrengthenSectionArgs{Section: section}}, true

	case strings.HasPrefix(lower, "rewrite summary"):
		emphasis := strings.TrimSpace(clause[len("rewrite summary"):])
		emphasis = strings.TrimPrefix(emphasis, "emphasizing ")
		emphasis = strings.TrimPrefix(emphasis, "to emphasize ")
		return types.Action{Tool: types.ToolRewriteSummary, Args: types.RewriteSummaryArgs{Emphasis: emphasis}}, true
	}

	return types.Action{}, false
}

func hasTool(actions []types.Action, tool types.ToolName) bool {
	for _, action := range actions {
		if action.Tool == tool {
			return true
		}
	}
	return false
}

// phase ranks tools into the fixed execution order: scrape, content edits,
// style edits, layout render, scoring.
func phase(tool types.ToolName) int {
	switch tool {
	case types.ToolScrapeJob:
		return 0
	case types.ToolAddSkills, types.ToolRewriteSummary, types.ToolStrengthenSection:
		return 1
	case types.ToolChangeFont, types.ToolChangeColor:
		return 2
	case types.ToolRenderLayout:
		return 3
	case types.ToolScoreResume:
		return 4
	default:
		return 5
	}
}

// orderActions sorts a merged plan into execution order, preserving the
// relative order of actions within the same phase.
func orderActions(actions []types.Action) []types.Action {
	ordered := make([]types.Action, len(actions))
	copy(ordered, actions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return phase(ordered[i].Tool) < phase(ordered[j].Tool)
	})
	return ordered
}

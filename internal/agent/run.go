// Package agent orchestrates one tailoring run: it plans tool actions from a
// user command, gathers plan inputs, executes tools in a fixed order, and
// commits the outcome to the user's timeline.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/rendering"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/schemas"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/scoring"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// planInputTimeout bounds the concurrent scrape and suggestion calls.
const planInputTimeout = 45 * time.Second

// Scraper retrieves a job posting from a URL.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*types.JobPosting, error)
}

// Suggester proposes advisory follow-up actions. A failing or absent
// suggester leaves the rule plan alone.
type Suggester interface {
	Suggest(ctx context.Context, resumeText, jobText string, missing []string) ([]types.Action, error)
}

// VersionStore persists resume document snapshots.
type VersionStore interface {
	SaveResumeVersion(ctx context.Context, userID uuid.UUID, content map[string]any) (uuid.UUID, error)
}

// History commits timeline entries.
type History interface {
	Save(ctx context.Context, entry types.TimelineEntry) (types.TimelineEntry, error)
}

// Runtime executes tailoring runs. Scraper, Suggester, Versions, and History
// are all optional; a nil dependency disables the corresponding step.
type Runtime struct {
	Scraper   Scraper
	Suggester Suggester
	Engine    *scoring.Engine
	Versions  VersionStore
	History   History
	Verbose   bool
}

// Request is one tailoring run request. Exactly one of JobURL and
// JobDescription is normally set; both absent means a style-only run.
type Request struct {
	UserID         uuid.UUID
	Command        string
	Resume         map[string]any
	JobURL         string
	JobDescription string
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Run executes one tailoring run end to end. Tool failures are recorded in
// the result and execution continues; an authorization failure aborts the
// run immediately.
func (rt *Runtime) Run(ctx context.Context, req Request) (*types.AgentResult, error) {
	if req.Resume == nil {
		return nil, fmt.Errorf("resume document is required")
	}
	if err := schemas.ValidateResume(req.Resume); err != nil {
		return nil, fmt.Errorf("invalid resume document: %w", err)
	}

	plan := Plan(req.Command, req.JobURL)
	posting, suggested := rt.gatherPlanInputs(ctx, req)
	plan = mergeSuggestions(plan, suggested)
	plan = orderActions(plan)

	result := &types.AgentResult{Artifacts: make(map[string]string)}
	doc := req.Resume
	style := rendering.Options{}
	jobText := ""
	if posting != nil {
		jobText = posting.Text()
	}

	for _, action := range plan {
		outcome := types.ActionOutcome{Tool: action.Tool, Status: types.ActionOK, Source: action.Source}

		var actionErr error
		doc, actionErr = rt.execute(ctx, action, doc, posting, jobText, &style, result)

		if actionErr != nil {
			var authErr *AuthorizationError
			if errors.As(actionErr, &authErr) {
				return nil, actionErr
			}
			outcome.Status = types.ActionFailed
			outcome.Message = actionErr.Error()
			if rt.Verbose {
				log.Printf("[AGENT] %s failed: %v", action.Tool, actionErr)
			}
		}
		result.Actions = append(result.Actions, outcome)
	}

	if raw, err := json.Marshal(doc); err == nil {
		result.Artifacts["resume.json"] = string(raw)
	}

	if err := rt.commit(ctx, req, doc, result); err != nil {
		var authErr *AuthorizationError
		if errors.As(err, &authErr) {
			return nil, err
		}
		return result, fmt.Errorf("failed to commit run: %w", err)
	}
	return result, nil
}

// gatherPlanInputs runs the job scrape and the suggestion consultation
// concurrently. Both are advisory inputs to the plan: either failing leaves
// the rule plan intact.
func (rt *Runtime) gatherPlanInputs(ctx context.Context, req Request) (*types.JobPosting, []types.Action) {
	inputCtx, cancel := context.WithTimeout(ctx, planInputTimeout)
	defer cancel()

	var posting *types.JobPosting
	var suggested []types.Action

	if req.JobDescription != "" {
		posting = &types.JobPosting{RawText: req.JobDescription}
	}

	g, gctx := errgroup.WithContext(inputCtx)

	if req.JobURL != "" && rt.Scraper != nil {
		g.Go(func() error {
			scraped, err := rt.Scraper.Scrape(gctx, req.JobURL)
			if err != nil {
				if rt.Verbose {
					log.Printf("[AGENT] scrape failed: %v", err)
				}
				return nil
			}
			posting = scraped
			return nil
		})
	}

	if rt.Suggester != nil {
		resumeText := ""
		if resume, err := types.DecodeResume(req.Resume); err == nil {
			resumeText = resume.PlainText()
		}
		jobText := req.JobDescription
		g.Go(func() error {
			actions, err := rt.Suggester.Suggest(gctx, resumeText, jobText, nil)
			if err != nil {
				if rt.Verbose {
					log.Printf("[AGENT] suggestions unavailable: %v", err)
				}
				return nil
			}
			suggested = actions
			return nil
		})
	}

	_ = g.Wait()
	return posting, suggested
}

// mergeSuggestions appends suggested actions whose tool is not already in
// the rule plan. Rules always win a conflict.
func mergeSuggestions(plan, suggested []types.Action) []types.Action {
	for _, action := range suggested {
		if hasTool(plan, action.Tool) {
			continue
		}
		plan = append(plan, action)
	}
	return plan
}

func (rt *Runtime) execute(ctx context.Context, action types.Action, doc map[string]any, posting *types.JobPosting, jobText string, style *rendering.Options, result *types.AgentResult) (map[string]any, error) {
	switch args := action.Args.(type) {
	case types.ScrapeJobArgs:
		// The scrape itself ran during plan-input gathering; here we only
		// report whether it produced a posting.
		if posting == nil || posting.Text() == "" {
			return doc, fmt.Errorf("no job content retrieved from %s", args.URL)
		}
		return doc, nil

	case types.AddSkillsArgs:
		updated, records, err := addSkills(doc, args, jobText)
		result.Diffs = append(result.Diffs, records...)
		return updated, err

	case types.RewriteSummaryArgs:
		updated, records, err := rewriteSummary(doc, args, posting)
		result.Diffs = append(result.Diffs, records...)
		return updated, err

	case types.StrengthenSectionArgs:
		updated, records, err := strengthenSection(doc, args)
		result.Diffs = append(result.Diffs, records...)
		return updated, err

	case types.ChangeFontArgs:
		if args.Font == "" {
			return doc, fmt.Errorf("font name is required")
		}
		style.Font = args.Font
		return doc, nil

	case types.ChangeColorArgs:
		if !hexColor.MatchString(args.Color) {
			return doc, fmt.Errorf("invalid color %q: expected #RRGGBB", args.Color)
		}
		style.Color = args.Color
		return doc, nil

	case types.RenderLayoutArgs:
		if args.Layout != "" {
			style.Layout = args.Layout
		}
		if args.Direction != "" {
			style.Direction = args.Direction
		}
		resume, err := types.DecodeResume(doc)
		if err != nil {
			return doc, err
		}
		preview, err := rendering.Render(resume, *style)
		if err != nil {
			return doc, err
		}
		result.Artifacts["preview.html"] = preview
		return doc, nil

	case types.ScoreResumeArgs:
		if rt.Engine == nil {
			return doc, fmt.Errorf("scoring engine not configured")
		}
		resume, err := types.DecodeResume(doc)
		if err != nil {
			return doc, err
		}
		report := rt.Engine.Score(resume, jobText, scoring.Options{GenerateQuickWins: args.GenerateQuickWins})
		result.ATSReport = report
		return annotateScore(doc, report), nil

	default:
		return doc, fmt.Errorf("unsupported action %s", action.Tool)
	}
}

// annotateScore writes the computed score fields onto the document so the
// committed version carries its own report.
func annotateScore(doc map[string]any, report *types.ScoreReport) map[string]any {
	annotated := make(map[string]any, len(doc)+3)
	for k, v := range doc {
		annotated[k] = v
	}
	annotated["matchScore"] = report.Score
	if len(report.MissingKeywords) > 0 {
		missing := make([]any, len(report.MissingKeywords))
		for i, kw := range report.MissingKeywords {
			missing[i] = kw
		}
		annotated["missingKeywords"] = missing
	}
	return annotated
}

// commit persists the run outcome: the document snapshot and a timeline
// entry pointing at it. Runs without a user or persistence wiring skip the
// commit silently.
func (rt *Runtime) commit(ctx context.Context, req Request, doc map[string]any, result *types.AgentResult) error {
	if req.UserID == uuid.Nil || rt.Versions == nil || rt.History == nil {
		return nil
	}

	versionID, err := rt.Versions.SaveResumeVersion(ctx, req.UserID, doc)
	if err != nil {
		return err
	}

	score := 0.0
	if result.ATSReport != nil {
		score = result.ATSReport.Score
	}
	_, err = rt.History.Save(ctx, types.TimelineEntry{
		ID:              uuid.New(),
		UserID:          req.UserID,
		ResumeVersionID: versionID,
		ATSScore:        score,
		Notes:           req.Command,
	})
	return err
}

package types

// ActionStatus is the terminal state of one executed action.
type ActionStatus string

// Action outcomes. A failed action never aborts the remaining plan; only
// authorization failures are fatal to a run.
const (
	ActionOK      ActionStatus = "ok"
	ActionFailed  ActionStatus = "failed"
	ActionSkipped ActionStatus = "skipped"
)

// ActionOutcome records how one planned action ended.
type ActionOutcome struct {
	Tool    ToolName     `json:"tool"`
	Status  ActionStatus `json:"status"`
	Source  string       `json:"source,omitempty"`
	Message string       `json:"message,omitempty"`
}

// AgentResult is the single structured result of one agent run: the executed
// plan, the change records it produced in execution order, named artifacts
// (rendered previews and the like), and the final compatibility report.
type AgentResult struct {
	Actions   []ActionOutcome   `json:"actions"`
	Diffs     []ChangeRecord    `json:"diffs"`
	Artifacts map[string]string `json:"artifacts,omitempty"`
	ATSReport *ScoreReport      `json:"ats_report,omitempty"`
}

package types

// ChangeScope identifies the granularity a change record targets.
type ChangeScope string

// Change record scopes.
const (
	ScopeSection   ChangeScope = "section"
	ScopeParagraph ChangeScope = "paragraph"
	ScopeBullet    ChangeScope = "bullet"
	ScopeStyle     ChangeScope = "style"
)

// Confidence expresses how certain a tool is about a proposed change.
type Confidence string

// Confidence bands for change records.
const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ChangeMetadata carries addressing information for a change record.
type ChangeMetadata struct {
	Pointer string `json:"pointer"`
}

// ChangeRecord describes a single edit: what text is being replaced, with
// what, and where. Records are immutable once created; applying one produces
// a new document and never mutates the caller's copy.
type ChangeRecord struct {
	ID         string         `json:"id"`
	Summary    string         `json:"summary"`
	Scope      ChangeScope    `json:"scope"`
	Category   string         `json:"category"`
	Confidence Confidence     `json:"confidence"`
	Before     string         `json:"before,omitempty"`
	After      string         `json:"after,omitempty"`
	Metadata   ChangeMetadata `json:"metadata"`
}

// IsDeletion reports whether applying this record would erase content.
// The current action vocabulary has no deletion opt-in, so the writer must
// never apply a record for which this returns true.
func (c *ChangeRecord) IsDeletion() bool {
	return c.Before != "" && c.After == ""
}

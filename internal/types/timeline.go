package types

import (
	"time"

	"github.com/google/uuid"
)

// TimelineEntry is one saved resume version in a user's history.
type TimelineEntry struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	ResumeVersionID uuid.UUID  `json:"resume_version_id"`
	ATSScore        float64    `json:"ats_score"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	AppliedAt       *time.Time `json:"applied_at,omitempty"`
}

// TimelineSnapshot is a read-only view of one user's undo/redo state.
// Past is ordered oldest to most recently applied, excluding current.
// Future holds undone entries, most recently undone first.
type TimelineSnapshot struct {
	Past    []TimelineEntry `json:"past"`
	Current *TimelineEntry  `json:"current"`
	Future  []TimelineEntry `json:"future"`
}

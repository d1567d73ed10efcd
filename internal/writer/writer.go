// Package writer applies batches of change records to a resume document.
// All operations are pure: the input document is never mutated and every
// application produces a new document value.
package writer

import (
	"fmt"
	"strings"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/docpath"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// StaleDiffError reports a record whose before value no longer matches the
// document. The record is skipped; it never aborts the batch.
type StaleDiffError struct {
	RecordID string
	Pointer  string
}

func (e *StaleDiffError) Error() string {
	return fmt.Sprintf("stale change record %s at %s: before value no longer matches", e.RecordID, e.Pointer)
}

// ApplyDiff applies paragraph and bullet scoped records by literal substring
// replacement in the targeted field. A record whose before text is not found
// is a no-op; the rest of the batch still applies. Records that would erase
// content are never applied.
func ApplyDiff(doc map[string]any, records []types.ChangeRecord) map[string]any {
	current := any(doc)

	for _, record := range records {
		if record.Scope != types.ScopeParagraph && record.Scope != types.ScopeBullet {
			continue
		}
		if record.IsDeletion() {
			continue
		}

		value, ok := docpath.Get(current, record.Metadata.Pointer)
		if !ok {
			continue
		}
		text, ok := value.(string)
		if !ok {
			continue
		}
		if record.Before != "" && !strings.Contains(text, record.Before) {
			continue
		}

		var next string
		if record.Before == "" {
			next = record.After
		} else {
			next = strings.Replace(text, record.Before, record.After, 1)
		}

		updated, err := docpath.Set(current, record.Metadata.Pointer, next)
		if err != nil {
			continue
		}
		current = updated
	}

	return asMap(current, doc)
}

// ApplyProposedChanges resolves each record's pointer and assigns its after
// value there. A record whose before value does not match the current value
// at the pointer is skipped (stale-diff protection). Deletions are rejected.
func ApplyProposedChanges(doc map[string]any, records []types.ChangeRecord) (map[string]any, []error) {
	current := any(doc)
	var skipped []error

	for _, record := range records {
		if record.IsDeletion() {
			skipped = append(skipped, fmt.Errorf("record %s rejected: empty after with non-empty before", record.ID))
			continue
		}

		if record.Before != "" {
			value, ok := docpath.Get(current, record.Metadata.Pointer)
			if !ok || fmt.Sprintf("%v", value) != record.Before {
				skipped = append(skipped, &StaleDiffError{RecordID: record.ID, Pointer: record.Metadata.Pointer})
				continue
			}
		}

		updated, err := docpath.Set(current, record.Metadata.Pointer, record.After)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("record %s: %w", record.ID, err))
			continue
		}
		current = updated
	}

	return asMap(current, doc), skipped
}

// asMap narrows the working tree back to a map document. The root is always
// a map for resume documents; fall back to the input if a record somehow
// replaced the root with a scalar.
func asMap(current any, fallback map[string]any) map[string]any {
	if m, ok := current.(map[string]any); ok {
		return m
	}
	return fallback
}

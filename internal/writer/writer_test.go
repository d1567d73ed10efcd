package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/docpath"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

func testDoc() map[string]any {
	return map[string]any{
		"summary": "Backend engineer with Go experience.",
		"skills": map[string]any{
			"technical": []any{"Go", "Docker"},
		},
		"experience": []any{
			map[string]any{
				"title":        "Engineer",
				"achievements": []any{"Improved deploy times", "Cut costs"},
			},
		},
	}
}

func TestApplyDiff_SubstringReplacement(t *testing.T) {
	doc := testDoc()

	result := ApplyDiff(doc, []types.ChangeRecord{{
		ID:       "r1",
		Scope:    types.ScopeParagraph,
		Before:   "Go experience",
		After:    "Go and Kubernetes experience",
		Metadata: types.ChangeMetadata{Pointer: "/summary"},
	}})

	summary, _ := docpath.Get(result, "/summary")
	assert.Equal(t, "Backend engineer with Go and Kubernetes experience.", summary)

	// Input untouched.
	original, _ := docpath.Get(doc, "/summary")
	assert.Equal(t, "Backend engineer with Go experience.", original)
}

func TestApplyDiff_MissingBeforeIsNoOp(t *testing.T) {
	doc := testDoc()

	result := ApplyDiff(doc, []types.ChangeRecord{
		{
			ID:       "miss",
			Scope:    types.ScopeParagraph,
			Before:   "text that does not exist",
			After:    "replacement",
			Metadata: types.ChangeMetadata{Pointer: "/summary"},
		},
		{
			ID:       "hit",
			Scope:    types.ScopeBullet,
			Before:   "Cut costs",
			After:    "Cut infrastructure costs by 30%",
			Metadata: types.ChangeMetadata{Pointer: "/experience/0/achievements/1"},
		},
	})

	// The missing record is a no-op; the rest of the batch still applies.
	summary, _ := docpath.Get(result, "/summary")
	assert.Equal(t, "Backend engineer with Go experience.", summary)

	bullet, _ := docpath.Get(result, "/experience/0/achievements/1")
	assert.Equal(t, "Cut infrastructure costs by 30%", bullet)
}

func TestApplyDiff_EmptyBatchReturnsEqualDocument(t *testing.T) {
	doc := testDoc()

	result := ApplyDiff(doc, nil)
	assert.Equal(t, doc, result)
}

func TestApplyDiff_DeletionNeverApplied(t *testing.T) {
	doc := testDoc()

	result := ApplyDiff(doc, []types.ChangeRecord{{
		ID:       "del",
		Scope:    types.ScopeParagraph,
		Before:   "Backend engineer with Go experience.",
		After:    "",
		Metadata: types.ChangeMetadata{Pointer: "/summary"},
	}})

	summary, _ := docpath.Get(result, "/summary")
	assert.Equal(t, "Backend engineer with Go experience.", summary, "content must never be silently emptied")
}

func TestApplyProposedChanges_PointerAssignment(t *testing.T) {
	doc := testDoc()

	result, skipped := ApplyProposedChanges(doc, []types.ChangeRecord{{
		ID:       "p1",
		Scope:    types.ScopeSection,
		Before:   "Engineer",
		After:    "Senior Engineer",
		Metadata: types.ChangeMetadata{Pointer: "/experience/0/title"},
	}})

	assert.Empty(t, skipped)
	title, _ := docpath.Get(result, "/experience/0/title")
	assert.Equal(t, "Senior Engineer", title)
}

func TestApplyProposedChanges_StaleBeforeSkipped(t *testing.T) {
	doc := testDoc()

	result, skipped := ApplyProposedChanges(doc, []types.ChangeRecord{
		{
			ID:       "stale",
			Before:   "Principal Engineer", // does not match current value
			After:    "Staff Engineer",
			Metadata: types.ChangeMetadata{Pointer: "/experience/0/title"},
		},
		{
			ID:       "fresh",
			Before:   "Engineer",
			After:    "Senior Engineer",
			Metadata: types.ChangeMetadata{Pointer: "/experience/0/title"},
		},
	})

	require.Len(t, skipped, 1)
	var stale *StaleDiffError
	assert.ErrorAs(t, skipped[0], &stale)

	title, _ := docpath.Get(result, "/experience/0/title")
	assert.Equal(t, "Senior Engineer", title, "later records still apply after a stale skip")
}

func TestApplyProposedChanges_DeletionRejected(t *testing.T) {
	doc := testDoc()

	result, skipped := ApplyProposedChanges(doc, []types.ChangeRecord{{
		ID:       "del",
		Before:   "Backend engineer with Go experience.",
		After:    "",
		Metadata: types.ChangeMetadata{Pointer: "/summary"},
	}})

	require.Len(t, skipped, 1)
	summary, _ := docpath.Get(result, "/summary")
	assert.Equal(t, "Backend engineer with Go experience.", summary)
}

func TestApplyProposedChanges_InsertionWithoutBefore(t *testing.T) {
	doc := testDoc()

	result, skipped := ApplyProposedChanges(doc, []types.ChangeRecord{{
		ID:       "ins",
		After:    "Terraform",
		Metadata: types.ChangeMetadata{Pointer: "/skills/technical/2"},
	}})

	assert.Empty(t, skipped)
	added, ok := docpath.Get(result, "/skills/technical/2")
	require.True(t, ok)
	assert.Equal(t, "Terraform", added)
}

package docpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() map[string]any {
	return map[string]any{
		"contact": map[string]any{"name": "Dana", "email": "dana@example.com"},
		"skills": map[string]any{
			"technical": []any{"Go", "PostgreSQL", "Docker"},
		},
		"summary": "Backend engineer.",
	}
}

func TestGet_ExistingPaths(t *testing.T) {
	doc := sampleDoc()

	name, ok := Get(doc, "/contact/name")
	require.True(t, ok)
	assert.Equal(t, "Dana", name)

	second, ok := Get(doc, "/skills/technical/1")
	require.True(t, ok)
	assert.Equal(t, "PostgreSQL", second)
}

func TestGet_AbsentPathReturnsFalse(t *testing.T) {
	doc := sampleDoc()

	_, ok := Get(doc, "/contact/phone")
	assert.False(t, ok)

	_, ok = Get(doc, "/skills/technical/99")
	assert.False(t, ok)

	// Descending into a scalar is absent, not an error.
	_, ok = Get(doc, "/summary/deep")
	assert.False(t, ok)
}

func TestSet_ThenGetReturnsValue(t *testing.T) {
	doc := sampleDoc()

	updated, err := Set(doc, "/contact/phone", "+972-50-0000000")
	require.NoError(t, err)

	phone, ok := Get(updated, "/contact/phone")
	require.True(t, ok)
	assert.Equal(t, "+972-50-0000000", phone)
}

func TestSet_DoesNotMutateInput(t *testing.T) {
	doc := sampleDoc()

	_, err := Set(doc, "/skills/technical/0", "Rust")
	require.NoError(t, err)

	original, ok := Get(doc, "/skills/technical/0")
	require.True(t, ok)
	assert.Equal(t, "Go", original, "input document must not be mutated")

	_, ok = Get(doc, "/contact/phone")
	assert.False(t, ok)
}

func TestSet_SharesUntouchedSiblings(t *testing.T) {
	doc := sampleDoc()

	updated, err := Set(doc, "/summary", "Platform engineer.")
	require.NoError(t, err)

	// Untouched subtrees are shared, not copied: a write through the
	// original's contact map is visible from the updated document.
	doc["contact"].(map[string]any)["name"] = "Noa"
	shared, ok := Get(updated, "/contact/name")
	require.True(t, ok)
	assert.Equal(t, "Noa", shared)
}

func TestSet_ScalarTraversalIsPathError(t *testing.T) {
	doc := sampleDoc()

	_, err := Set(doc, "/summary/nested/field", "x")
	require.Error(t, err)
	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "/summary/nested/field", pathErr.Pointer)
}

func TestSet_ListIndexOutOfRange(t *testing.T) {
	doc := sampleDoc()

	_, err := Set(doc, "/skills/technical/7", "Rust")
	require.Error(t, err)
	var pathErr *PathError
	assert.ErrorAs(t, err, &pathErr)
}

func TestSet_AppendAtListEnd(t *testing.T) {
	doc := sampleDoc()

	updated, err := Set(doc, "/skills/technical/3", "Terraform")
	require.NoError(t, err)

	last, ok := Get(updated, "/skills/technical/3")
	require.True(t, ok)
	assert.Equal(t, "Terraform", last)

	// Original list is unchanged.
	_, ok = Get(doc, "/skills/technical/3")
	assert.False(t, ok)
}

func TestRemove_ListShiftsElementsDown(t *testing.T) {
	doc := sampleDoc()

	updated, err := Remove(doc, "/skills/technical/1")
	require.NoError(t, err)

	// The element previously at index 2 is now at index 1.
	shifted, ok := Get(updated, "/skills/technical/1")
	require.True(t, ok)
	assert.Equal(t, "Docker", shifted)

	_, ok = Get(updated, "/skills/technical/2")
	assert.False(t, ok, "list must shrink, leaving no hole")
}

func TestRemove_MapKey(t *testing.T) {
	doc := sampleDoc()

	updated, err := Remove(doc, "/contact/email")
	require.NoError(t, err)

	_, ok := Get(updated, "/contact/email")
	assert.False(t, ok)

	// Input untouched.
	_, ok = Get(doc, "/contact/email")
	assert.True(t, ok)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "/skills/technical/0", Join("skills", "technical", "0"))
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAction_KnownTool(t *testing.T) {
	action, err := DecodeAction("add_skills", map[string]any{
		"skills": []any{"Go", "Kubernetes"},
	})
	require.NoError(t, err)

	assert.Equal(t, ToolAddSkills, action.Tool)
	args, ok := action.Args.(AddSkillsArgs)
	require.True(t, ok, "expected AddSkillsArgs, got %T", action.Args)
	assert.Equal(t, []string{"Go", "Kubernetes"}, args.Skills)
}

func TestDecodeAction_UnknownToolRejected(t *testing.T) {
	_, err := DecodeAction("delete_everything", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool name")
}

func TestDecodeAction_ColorArgs(t *testing.T) {
	action, err := DecodeAction("change_color", map[string]any{"color": "#FF8800"})
	require.NoError(t, err)

	args, ok := action.Args.(ChangeColorArgs)
	require.True(t, ok)
	assert.Equal(t, "#FF8800", args.Color)
}

func TestChangeRecord_IsDeletion(t *testing.T) {
	deletion := ChangeRecord{Before: "old text", After: ""}
	assert.True(t, deletion.IsDeletion())

	replacement := ChangeRecord{Before: "old text", After: "new text"}
	assert.False(t, replacement.IsDeletion())

	insertion := ChangeRecord{Before: "", After: "new text"}
	assert.False(t, insertion.IsDeletion())
}

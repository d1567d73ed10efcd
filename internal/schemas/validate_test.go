package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResume_ValidDocument(t *testing.T) {
	doc := map[string]any{
		"contact": map[string]any{"name": "Dana", "email": "dana@example.com"},
		"summary": "Backend engineer.",
		"skills": map[string]any{
			"technical": []any{"Go", "PostgreSQL"},
		},
		"experience": []any{
			map[string]any{"title": "Engineer", "company": "Acme", "achievements": []any{"Shipped things"}},
		},
	}

	assert.NoError(t, ValidateResume(doc))
}

func TestValidateResume_WrongFieldShape(t *testing.T) {
	doc := map[string]any{
		"summary": 42,
	}

	err := ValidateResume(doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "summary", validationErr.Errors[0].Field)
}

func TestValidateResume_ScoreOutOfRange(t *testing.T) {
	doc := map[string]any{
		"matchScore": 150.0,
	}

	err := ValidateResume(doc)
	require.Error(t, err)
}

func TestValidateResume_UnknownFieldsAllowed(t *testing.T) {
	doc := map[string]any{
		"summary":      "Engineer.",
		"customField":  "kept",
		"anotherExtra": []any{"x"},
	}

	assert.NoError(t, ValidateResume(doc))
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "properties": {"n": {"type": "number"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"n": 1}`))
	assert.Error(t, ValidateJSONString(schema, `{"n": "one"}`))
}

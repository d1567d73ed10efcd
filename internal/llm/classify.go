package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// LanguageClassifier classifies text language with a lite-tier model. It
// satisfies the language package's Classifier interface so detection can be
// upgraded from the script heuristic when a model is available.
type LanguageClassifier struct {
	client Client
}

// NewLanguageClassifier wraps a client as a language classifier.
func NewLanguageClassifier(client Client) *LanguageClassifier {
	return &LanguageClassifier{client: client}
}

const classifyPromptTemplate = `Identify the dominant language of the text below.
Return ONLY JSON: {"lang": "<ISO 639-1 code, or 'mixed' for bilingual text>", "rtl": true|false, "confidence": 0.0-1.0}

Text:
"""
%s
"""
`

// ClassifyLanguage asks the model for the dominant language of text.
func (c *LanguageClassifier) ClassifyLanguage(ctx context.Context, text string) (types.LanguageResult, error) {
	raw, err := c.client.GenerateJSON(ctx, fmt.Sprintf(classifyPromptTemplate, text), TierLite)
	if err != nil {
		return types.LanguageResult{}, fmt.Errorf("failed to classify language: %w", err)
	}

	var result types.LanguageResult
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &result); err != nil {
		return types.LanguageResult{}, fmt.Errorf("failed to parse classification: %w", err)
	}
	if result.Lang == "" {
		return types.LanguageResult{}, fmt.Errorf("classification returned no language")
	}
	return result, nil
}

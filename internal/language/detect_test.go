package language

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

func TestDetect_FullyHebrew(t *testing.T) {
	result := Detect("מהנדסת תוכנה בכירה עם ניסיון רב בפיתוח מערכות")

	assert.Equal(t, "he", result.Lang)
	assert.True(t, result.RTL)
	assert.Greater(t, result.Confidence, 0.6)
}

func TestDetect_MixedHebrewEnglish(t *testing.T) {
	result := Detect("מהנדסת Backend עם ניסיון רב בפיתוח Go services ומערכות מבוזרות בענן")

	assert.Equal(t, "mixed", result.Lang)
	assert.True(t, result.RTL)
	assert.Greater(t, result.Confidence, 0.4)
	assert.LessOrEqual(t, result.Confidence, 0.65)
}

func TestDetect_English(t *testing.T) {
	result := Detect("Senior backend engineer with strong Go and Kubernetes experience.")

	assert.Equal(t, "en", result.Lang)
	assert.False(t, result.RTL)
	assert.GreaterOrEqual(t, result.Confidence, 0.6)
}

func TestDetect_Spanish(t *testing.T) {
	result := Detect("Ingeniera de software con cinco años de experiencia, trabajando con el equipo para los clientes.")

	assert.Equal(t, "es", result.Lang)
	assert.False(t, result.RTL)
}

func TestDetect_EmptyText(t *testing.T) {
	result := Detect("12345 !!!")

	assert.Equal(t, "en", result.Lang)
	assert.False(t, result.RTL)
}

type stubClassifier struct {
	result types.LanguageResult
	err    error
}

func (s *stubClassifier) ClassifyLanguage(_ context.Context, _ string) (types.LanguageResult, error) {
	return s.result, s.err
}

func TestDetectWithOptions_ModelOverrides(t *testing.T) {
	model := &stubClassifier{result: types.LanguageResult{Lang: "fr", RTL: false, Confidence: 0.93}}

	result := DetectWithOptions(context.Background(), "Bonjour tout le monde", Options{
		PreferModel: true,
		Model:       model,
	})
	require.Equal(t, "fr", result.Lang)
	assert.InDelta(t, 0.93, result.Confidence, 1e-9)
}

func TestDetectWithOptions_ModelFailureFallsBack(t *testing.T) {
	model := &stubClassifier{err: errors.New("quota exceeded")}

	result := DetectWithOptions(context.Background(), "Plain English sentence here.", Options{
		PreferModel: true,
		Model:       model,
	})
	assert.Equal(t, "en", result.Lang)
}

func TestDetectWithOptions_ModelIgnoredWithoutPreference(t *testing.T) {
	model := &stubClassifier{result: types.LanguageResult{Lang: "fr"}}

	result := DetectWithOptions(context.Background(), "Plain English sentence here.", Options{Model: model})
	assert.Equal(t, "en", result.Lang)
}

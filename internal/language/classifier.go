package language

import (
	"context"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// Classifier is an optional external language classifier. The heuristic in
// Detect is the default and always-available path; a Classifier is an
// enhancement, never a dependency.
type Classifier interface {
	ClassifyLanguage(ctx context.Context, text string) (types.LanguageResult, error)
}

// Options controls whether an external classifier is consulted.
type Options struct {
	PreferModel bool
	Model       Classifier
}

// DetectWithOptions runs the heuristic detector and, when PreferModel is set
// and a model is supplied, lets the model's result fully override it. Any
// model failure falls back to the heuristic result.
func DetectWithOptions(ctx context.Context, text string, opts Options) types.LanguageResult {
	heuristic := Detect(text)
	if !opts.PreferModel || opts.Model == nil {
		return heuristic
	}
	result, err := opts.Model.ClassifyLanguage(ctx, text)
	if err != nil {
		return heuristic
	}
	return result
}

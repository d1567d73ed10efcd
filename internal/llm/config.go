// Package llm provides the model configuration and client abstraction used
// by the suggestion and language-classification steps. Model tiers keep
// cheap tasks on cheap models.
package llm

// ModelTier selects a capability level; callers name the tier and the
// config maps it to a concrete model.
type ModelTier string

const (
	// TierLite handles classification and simple extraction.
	TierLite ModelTier = "lite"
	// TierStandard handles structured generation.
	TierStandard ModelTier = "standard"
	// TierAdvanced handles multi-step reasoning such as action suggestion.
	TierAdvanced ModelTier = "advanced"
)

// Config maps tiers to provider model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini tier mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel resolves a tier to a model name, degrading through standard and
// then lite when the requested tier is not configured. Returns "" when no
// tier resolves.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden. The
// receiver is left unchanged.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Models: models}
}

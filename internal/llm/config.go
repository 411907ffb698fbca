package llm

// ModelTier names a capability level. Call sites pick a tier; the config
// decides which concrete model serves it.
type ModelTier string

const (
	// TierLite covers cheap classification and keyword work.
	TierLite ModelTier = "lite"
	// TierStandard covers per-section suggestion passes.
	TierStandard ModelTier = "standard"
	// TierAdvanced covers full-resume tailoring rewrites.
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies an LLM provider.
type Provider string

// ProviderGemini is the Google Gemini provider, currently the only one.
const ProviderGemini Provider = "gemini"

// tierFallback is the resolution order when a tier has no model: the
// requested tier, then standard, then lite.
var tierFallback = []ModelTier{TierStandard, TierLite}

// Config maps tiers onto concrete model names for one provider.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default tier mapping.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel resolves a tier to a model name, walking the fallback order.
// Returns "" when nothing is configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	for _, fallback := range tierFallback {
		if model, ok := c.Models[fallback]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Provider: c.Provider, Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}

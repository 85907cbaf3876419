package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, DefaultEmbeddingModel, cfg.EmbeddingModel)
	for _, tier := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
		assert.NotEmpty(t, cfg.GetModel(tier))
	}
}

func TestGetModelFallback(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierStandard: "standard-model",
		},
	}

	assert.Equal(t, "standard-model", cfg.GetModel(TierStandard))
	// Unconfigured tiers fall back to the standard tier.
	assert.Equal(t, "standard-model", cfg.GetModel(TierLite))
	assert.Equal(t, "standard-model", cfg.GetModel(TierAdvanced))
}

func TestWithModel(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TierStandard, "my-model")

	assert.Equal(t, "my-model", custom.GetModel(TierStandard))
	assert.NotEqual(t, "my-model", base.GetModel(TierStandard), "original config unchanged")
	assert.Equal(t, base.GetModel(TierLite), custom.GetModel(TierLite))
}

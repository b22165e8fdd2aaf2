package sentiment

import (
	"context"
	"fmt"

	"github.com/solacehq/solace-core/internal/config"
)

// FromConfig builds the hint provider named by the configuration.
func FromConfig(ctx context.Context, cfg config.Config) (Provider, error) {
	switch cfg.HintProvider {
	case "openai":
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.HintModel)
	case "grok":
		return NewGrokProvider(cfg.XAIAPIKey, cfg.HintModel)
	case "openrouter":
		return NewOpenRouterProvider(cfg.OpenRouterAPIKey, cfg.HintModel)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.GoogleAPIKey, cfg.HintModel)
	}
	return nil, fmt.Errorf("unknown hint provider: %s", cfg.HintProvider)
}

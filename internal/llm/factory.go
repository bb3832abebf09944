package llm

import (
	"context"
	"fmt"

	"github.com/drillwise/drillwise/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging and transport-level retry. The retry decorator covers transient
// transport failures only; it never re-issues calls whose responses failed
// downstream parsing.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Caller → retry → logging → base.
	logged := WithLogging(base, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}

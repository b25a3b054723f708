package ai

import (
	"context"
	"fmt"

	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/pkg/config"
)

// NewFromConfig construye el proveedor de visión elegido por AI_PROVIDER.
func NewFromConfig(ctx context.Context, cfg config.AIConfig) (ports.TicketExtractor, error) {
	switch cfg.Provider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	case "gemini", "":
		g, err := NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, fmt.Errorf("AI: proveedor desconocido %q (gemini|anthropic)", cfg.Provider)
}

package ai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nyx-os/internal/infrastructure/ai"
	"github.com/jhoicas/nyx-os/pkg/config"
)

func TestNewFromConfig(t *testing.T) {
	p, err := ai.NewFromConfig(context.Background(), config.AIConfig{Provider: "anthropic", AnthropicAPIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &ai.AnthropicService{}, p)

	_, err = ai.NewFromConfig(context.Background(), config.AIConfig{Provider: "anthropic"})
	assert.Error(t, err)

	_, err = ai.NewFromConfig(context.Background(), config.AIConfig{Provider: "gemini"})
	assert.ErrorContains(t, err, "GEMINI_API_KEY")

	_, err = ai.NewFromConfig(context.Background(), config.AIConfig{Provider: "openai"})
	assert.ErrorContains(t, err, "proveedor desconocido")
}

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nyx-os/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:3001", cfg.HTTP.Addr())
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "direct", cfg.OCR.Mode)
	assert.Equal(t, 30*time.Second, cfg.OCR.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Shell.AnimationDelay)
	assert.Empty(t, cfg.Seed.AdminPassword)
}

func TestLoad_EnvSobrescribe(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("AI_PROVIDER", "Anthropic")
	t.Setenv("OCR_MODE", "remote")
	t.Setenv("OCR_REMOTE_URL", "http://nyx-ocr:3001")
	t.Setenv("SHELL_ANIMATION_MS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, "http://nyx-ocr:3001", cfg.OCR.RemoteURL)
	assert.Zero(t, cfg.Shell.AnimationDelay)
}

func TestLoad_Errores(t *testing.T) {
	t.Run("sin JWT_SECRET", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := config.Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})
	t.Run("remote sin URL", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "x")
		t.Setenv("OCR_MODE", "remote")
		_, err := config.Load()
		assert.ErrorContains(t, err, "OCR_REMOTE_URL")
	})
	t.Run("modo inválido", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "x")
		t.Setenv("OCR_MODE", "batch")
		_, err := config.Load()
		assert.ErrorContains(t, err, "OCR_MODE")
	})
}

func TestLoadOCR_NoExigeJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg, err := config.LoadOCR()
	require.NoError(t, err)
	assert.Equal(t, "direct", cfg.OCR.Mode)
}

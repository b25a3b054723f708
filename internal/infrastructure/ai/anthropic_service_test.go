package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/infrastructure/ai"
)

func TestAnthropicService_EnviaImagenYParsea(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "clave", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"[{\"descripcion\":\"Limón\",\"cantidad\":3,\"precio\":30}]"}]}`))
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("clave", "claude-test").WithEndpoint(srv.URL)
	items, err := svc.ExtractItems(context.Background(), dto.OCRImage{Data: []byte{0xff, 0xd8}, MIMEType: "image/png"}, "lee")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Limón", items[0].Descripcion)

	msgs := got["messages"].([]any)
	blocks := msgs[0].(map[string]any)["content"].([]any)
	img := blocks[0].(map[string]any)
	assert.Equal(t, "image", img["type"])
	src := img["source"].(map[string]any)
	assert.Equal(t, "base64", src["type"])
	assert.Equal(t, "image/png", src["media_type"])
	assert.Equal(t, "/9g=", src["data"])
}

func TestAnthropicService_SalidaNoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"no veo ningún ticket"}]}`))
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("clave", "m").WithEndpoint(srv.URL)
	_, err := svc.ExtractItems(context.Background(), dto.OCRImage{Data: []byte{1}}, "lee")
	assert.ErrorIs(t, err, domain.ErrOCRFormat)
}

func TestAnthropicService_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"despacio"}}`))
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("clave", "m").WithEndpoint(srv.URL)
	_, err := svc.ExtractItems(context.Background(), dto.OCRImage{Data: []byte{1}}, "lee")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
}

func TestAnthropicService_SinClave(t *testing.T) {
	_, err := ai.NewAnthropicService("", "m").ExtractItems(context.Background(), dto.OCRImage{Data: []byte{1}}, "lee")
	assert.Error(t, err)
}

package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/nyx-os/internal/interfaces/http"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

func TestRateLimiter_RafagaYBloqueo(t *testing.T) {
	app := fiber.New()
	app.Post("/api/ocr", apphttp.NewRateLimiter(1, 2, logger.Nop()).Handler(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	status := func() (int, string) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/ocr", nil), -1)
		require.NoError(t, err)
		b, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(b)
	}

	for range 2 {
		code, _ := status()
		assert.Equal(t, http.StatusOK, code)
	}
	code, body := status()
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Contains(t, body, `"error"`)
}

func TestRateLimiter_SinLimite(t *testing.T) {
	app := fiber.New()
	app.Get("/", apphttp.NewRateLimiter(0, 1, logger.Nop()).Handler(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	for range 5 {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nyx-os/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/nyx-os/internal/interfaces/http"
)

func TestMetricsMiddleware_UsaRutaPlantilla(t *testing.T) {
	m := metrics.New()
	app := fiber.New()
	app.Use(apphttp.MetricsMiddleware(m))
	app.Get("/api/gastos/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	for _, id := range []string{"gasto-1", "gasto-2"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/gastos/"+id, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `nyx_http_requests_total{method="GET",path="/api/gastos/:id",status="404"} 2`)
	assert.NotContains(t, string(body), "gasto-1")
}

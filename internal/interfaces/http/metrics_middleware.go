package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// httpObserver lo implementa *metrics.Metrics.
type httpObserver interface {
	InFlight() func()
	ObserveHTTP(method, path string, status int, d time.Duration)
}

// MetricsMiddleware registra cada petición con la ruta plantilla (no la URL
// concreta) para acotar la cardinalidad.
func MetricsMiddleware(m httpObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		done := m.InFlight()
		defer done()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		if path == "" {
			path = "desconocida"
		}
		m.ObserveHTTP(c.Method(), path, status, time.Since(start))
		return err
	}
}

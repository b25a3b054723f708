package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/shell"
)

// RequireApp devuelve un middleware que verifica que el rol del token tenga la
// app en su dock. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 si no hay rol en el contexto.
//   - 403 APP_FORBIDDEN si la app no es del rol.
func RequireApp(appID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		}
		if !shell.Allowed(role, appID) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "APP_FORBIDDEN",
				Message: "la app '" + appID + "' no está disponible para el rol " + role,
			})
		}
		return c.Next()
	}
}

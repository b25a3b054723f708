package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/usecase"
)

// MenuHandler ingeniería de menú.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Metrics godoc
// @Summary      Rentabilidad por platillo
// @Description  Costo (suma de cantidad × costo unitario vigente), utilidad bruta, margen y clase
//               profit-high (>60%), profit-medium (>30%) o profit-low.
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.DishMetricsResponse]
// @Router       /api/menu [get]
func (h *MenuHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.uc.Metrics()))
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/usecase"
)

// SyncHandler historial de sincronizaciones (rol developer).
type SyncHandler struct {
	uc *usecase.SyncUseCase
}

// NewSyncHandler construye el handler.
func NewSyncHandler(uc *usecase.SyncUseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// History godoc
// @Summary      Historial de sincronización
// @Tags         sincronizacion
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.SyncEntryResponse]
// @Router       /api/sync [get]
func (h *SyncHandler) History(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.uc.History()))
}

// Record godoc
// @Summary      Registrar sincronización
// @Tags         sincronizacion
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSyncRequest  true  "tarea, estado, registros, detalles"
// @Success      201  {object}  dto.SyncEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sync [post]
func (h *SyncHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSyncRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(h.uc.Record(GetUserID(c), in))
}

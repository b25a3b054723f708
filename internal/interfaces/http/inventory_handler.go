package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/inventory"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InventoryHandler valuación, historial de costos, proveedores y exportación.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Valuation godoc
// @Summary      Inventario valorizado
// @Description  Cada artículo con su valor (stock × costo unitario) y el total. Con q filtra por nombre.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "filtro por nombre, sin distinguir mayúsculas"
// @Success      200  {object}  dto.InventoryResponse
// @Router       /api/inventario [get]
func (h *InventoryHandler) Valuation(c *fiber.Ctx) error {
	if q := c.Query("q"); q != "" {
		return c.JSON(dto.NewList(h.uc.Search(q)))
	}
	return c.JSON(h.uc.Valuation())
}

// History godoc
// @Summary      Historial de costos de un artículo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id de artículo"
// @Success      200  {object}  dto.CostHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id}/historial [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar inventario a Excel
// @Tags         inventario
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/inventario/export.xlsx [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.ExportXLSX(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Attachment("inventario.xlsx")
	return c.Send(data)
}

// Suppliers godoc
// @Summary      Listar proveedores
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.SupplierResponse]
// @Router       /api/proveedores [get]
func (h *InventoryHandler) Suppliers(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.uc.Suppliers()))
}

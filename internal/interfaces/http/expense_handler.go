package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/expense"
)

// ExpenseHandler consulta y exportación de gastos registrados.
type ExpenseHandler struct {
	uc *expense.ReportUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *expense.ReportUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// List godoc
// @Summary      Listar gastos
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ExpenseResponse]
// @Router       /api/gastos [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	exps := h.uc.List()
	out := make([]dto.ExpenseResponse, 0, len(exps))
	for _, e := range exps {
		out = append(out, expense.ToExpenseResponse(e))
	}
	return c.JSON(dto.NewList(out))
}

// GetByID godoc
// @Summary      Obtener gasto
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id de gasto"
// @Success      200  {object}  dto.ExpenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [get]
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	e, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expense.ToExpenseResponse(e))
}

// PDF godoc
// @Summary      Comprobante PDF del gasto
// @Tags         gastos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "id de gasto"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/{id}/pdf [get]
func (h *ExpenseHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.uc.PDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+id+`.pdf"`)
	return c.Send(data)
}

// Export godoc
// @Summary      Exportar gastos a Excel
// @Tags         gastos
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/gastos/export.xlsx [get]
func (h *ExpenseHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.XLSX(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Attachment("gastos.xlsx")
	return c.Send(data)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/usecase"
)

// EmployeeHandler administración de empleados (rol admin).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.EmployeeResponse]
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/empleados [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.uc.List()))
}

// GetByID godoc
// @Summary      Obtener empleado
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id de empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empleados/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dispatch godoc
// @Summary      Aplicar acción sobre empleados
// @Description  Acción etiquetada {type, payload}. Las variantes reconocidas sin lógica
//               (ADD, UPDATE, DELETE, TOGGLE_TASK, ADD_TASK, APPROVE_LOAN, REJECT_LOAN)
//               responden 200 con implementada=false y no cambian el estado.
// @Tags         empleados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeActionRequest  true  "type y payload"
// @Success      200  {object}  dto.EmployeeActionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/empleados/acciones [post]
func (h *EmployeeHandler) Dispatch(c *fiber.Ctx) error {
	var in dto.EmployeeActionRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Dispatch(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

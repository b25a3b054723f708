package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/nyx-os/internal/application/auth"
	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/expense"
	"github.com/jhoicas/nyx-os/internal/application/inventory"
	"github.com/jhoicas/nyx-os/internal/application/session"
	"github.com/jhoicas/nyx-os/internal/application/shell"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
)

// currentUser lo implementa *auth.AuthUseCase.
type currentUser interface {
	CurrentUser(userID string) (*entity.User, error)
}

// ShellHandler escritorio de tarjetas de la sesión y flujo de captura de gastos.
type ShellHandler struct {
	users    currentUser
	sessions *session.Manager
	registry *shell.Registry
	items    repository.InventoryStore
}

// NewShellHandler construye el handler.
func NewShellHandler(users currentUser, sessions *session.Manager, registry *shell.Registry, items repository.InventoryStore) *ShellHandler {
	return &ShellHandler{users: users, sessions: sessions, registry: registry, items: items}
}

// session resuelve la sesión del usuario del token; si el usuario ya no existe
// escribe 401 y devuelve nil.
func (h *ShellHandler) session(c *fiber.Ctx) (*session.Session, error) {
	u, err := h.users.CurrentUser(GetUserID(c))
	if err != nil {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario de la sesión no existe"})
	}
	return h.sessions.Get(*u), nil
}

// Get godoc
// @Summary      Escritorio de la sesión
// @Description  Dock del rol (el lanzador "apps" primero) y tarjetas abiertas en orden; la última es la superior.
// @Tags         shell
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShellResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/shell [get]
func (h *ShellHandler) Get(c *fiber.Ctx) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}
	return c.JSON(toShellResponse(s))
}

// Open godoc
// @Summary      Abrir tarjeta
// @Description  Abre una tarjeta de la app; se permiten duplicados. Apps conocidas fuera del rol: 403.
// @Tags         shell
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenCardRequest  true  "app_id"
// @Success      201  {object}  dto.CardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/shell/cards [post]
func (h *ShellHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenCardRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	s, err := h.session(c)
	if s == nil {
		return err
	}
	if !shell.Allowed(s.User.Role, in.AppID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "APP_FORBIDDEN", Message: "la app no está disponible para este rol"})
	}
	card := s.Cards.Open(in.AppID)
	return c.Status(fiber.StatusCreated).JSON(toCardResponse(card))
}

// View godoc
// @Summary      Vista de una tarjeta
// @Tags         shell
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id de tarjeta"
// @Success      200  {object}  dto.CardViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shell/cards/{id} [get]
func (h *ShellHandler) View(c *fiber.Ctx) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}
	card, ok := s.Cards.Card(cardParam(c))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarjeta no encontrada"})
	}
	v, err := h.registry.Render(c.Context(), shell.RenderContext{User: s.User, Card: card})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CardViewResponse{
		Card: toCardResponse(card),
		View: dto.ViewResponse{Kind: v.Kind, Title: v.Title, Message: v.Message, Data: v.Data},
	})
}

// Close godoc
// @Summary      Cerrar tarjeta
// @Description  Pasa a "exiting" y se retira tras la animación. Cerrar dos veces o un id desconocido no hace nada.
// @Tags         shell
// @Security     Bearer
// @Param        id  path  string  true  "id de tarjeta"
// @Success      202  {object}  dto.ShellResponse
// @Router       /api/shell/cards/{id} [delete]
func (h *ShellHandler) Close(c *fiber.Ctx) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}
	s.Cards.Close(cardParam(c))
	return h.accepted(c, s)
}

// Back godoc
// @Summary      Botón atrás
// @Description  Cierra la tarjeta solo si es la superior.
// @Tags         shell
// @Security     Bearer
// @Param        id  path  string  true  "id de tarjeta"
// @Success      202  {object}  dto.ShellResponse
// @Router       /api/shell/cards/{id}/back [post]
func (h *ShellHandler) Back(c *fiber.Ctx) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}
	s.Cards.Back(cardParam(c))
	return h.accepted(c, s)
}

// cardParam copia el id de la ruta: el gestor de tarjetas lo retiene en
// temporizadores que sobreviven a la petición.
func cardParam(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("id"))
}

func (h *ShellHandler) accepted(c *fiber.Ctx, s *session.Session) error {
	return c.Status(fiber.StatusAccepted).JSON(toShellResponse(s))
}

// ── Captura de gastos ─────────────────────────────────────────────────────────

func (h *ShellHandler) capture(c *fiber.Ctx) (*expense.Workflow, error) {
	s, err := h.session(c)
	if s == nil {
		return nil, err
	}
	w, err := s.Capture(cardParam(c))
	if err != nil {
		return nil, respondError(c, err)
	}
	return w, nil
}

// SelectImage godoc
// @Summary      Subir foto de ticket
// @Description  Descarta lo extraído y procesa la nueva imagen. Responde con el estado resultante
//               (extraido o error con mensaje). 409 si otra imagen o el cierre de la tarjeta lo reemplazó.
// @Tags         gastos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "id de tarjeta de gastos"
// @Param        image  formData  file    true  "foto del ticket"
// @Success      200  {object}  dto.CaptureResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shell/cards/{id}/gastos/imagen [post]
func (h *ShellHandler) SelectImage(c *fiber.Ctx) error {
	w, err := h.capture(c)
	if w == nil {
		return err
	}
	img, err := readImage(c, "image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msgNoImage})
	}
	snap, err := w.SelectImage(c.Context(), img)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expense.ToCaptureResponse(snap, h.items))
}

// SearchInventory godoc
// @Summary      Buscar artículo para vincular
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        id  path   string  true   "id de tarjeta de gastos"
// @Param        q   query  string  false  "texto; vacío lista todo"
// @Success      200  {array}  dto.InventoryItemResponse
// @Router       /api/shell/cards/{id}/gastos/inventario [get]
func (h *ShellHandler) SearchInventory(c *fiber.Ctx) error {
	w, err := h.capture(c)
	if w == nil {
		return err
	}
	found := w.SearchInventory(c.Query("q"))
	out := make([]dto.InventoryItemResponse, 0, len(found))
	for _, it := range found {
		out = append(out, inventory.ToItemResponse(it))
	}
	return c.JSON(out)
}

// Link godoc
// @Summary      Vincular línea con inventario
// @Tags         gastos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "id de tarjeta de gastos"
// @Param        item  path  string               true  "id de línea"
// @Param        body  body  dto.LinkItemRequest  true  "inventario_id"
// @Success      200  {object}  dto.CaptureResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shell/cards/{id}/gastos/items/{item}/vincular [post]
func (h *ShellHandler) Link(c *fiber.Ctx) error {
	var in dto.LinkItemRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	w, err := h.capture(c)
	if w == nil {
		return err
	}
	snap, err := w.Link(utils.CopyString(c.Params("item")), in.InventarioID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(expense.ToCaptureResponse(snap, h.items))
}

// Save godoc
// @Summary      Guardar gasto
// @Description  Registra el gasto (total = suma de precios), actualiza el costo de los artículos vinculados y reinicia la captura.
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id de tarjeta de gastos"
// @Success      201  {object}  dto.ExpenseResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shell/cards/{id}/gastos/guardar [post]
func (h *ShellHandler) Save(c *fiber.Ctx) error {
	w, err := h.capture(c)
	if w == nil {
		return err
	}
	exp, err := w.Save(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(expense.ToExpenseResponse(exp))
}

func toShellResponse(s *session.Session) dto.ShellResponse {
	dock := shell.Dock(s.User.Role)
	entries := make([]dto.DockEntry, 0, len(dock))
	for _, id := range dock {
		entries = append(entries, dto.DockEntry{AppID: id, Title: shell.Title(id)})
	}
	return dto.ShellResponse{
		User:  auth.ToUserResponse(s.User),
		Dock:  entries,
		Cards: toCardResponses(s.Cards.Cards()),
	}
}

func toCardResponse(c shell.Card) dto.CardResponse {
	return dto.CardResponse{ID: c.ID, AppID: c.AppID, Title: c.Title, Anim: string(c.Anim)}
}

func toCardResponses(cards []shell.Card) []dto.CardResponse {
	out := make([]dto.CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}

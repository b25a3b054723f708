package http

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/jhoicas/nyx-os/internal/application/checkin"
	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/domain"
)

// msgNoCamera respuesta cuando no llega foto.
const msgNoCamera = "Tu dispositivo no es compatible con la cámara."

// clockInterval periodo del reloj en vivo.
const clockInterval = time.Second

// CheckInHandler reloj checador del empleado de la sesión.
type CheckInHandler struct {
	svc  *checkin.Service
	life context.Context // se cancela al apagar el servidor; corta los streams
}

// NewCheckInHandler construye el handler.
func NewCheckInHandler(svc *checkin.Service, life context.Context) *CheckInHandler {
	if life == nil {
		life = context.Background()
	}
	return &CheckInHandler{svc: svc, life: life}
}

// View godoc
// @Summary      Estado de check-in
// @Description  "entrada" (hora actual y aviso de cámara) sin turno abierto; "salida" (hora de entrada,
//               tiempo transcurrido y foto) con turno abierto.
// @Tags         checkin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CheckInResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/checkin [get]
func (h *CheckInHandler) View(c *fiber.Ctx) error {
	v, err := h.svc.View(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(checkin.ToResponse(v))
}

// ClockIn godoc
// @Summary      Registrar entrada
// @Description  La foto llega como archivo multipart "foto" o como data URL en el campo "foto".
//               Se guarda espejada horizontalmente.
// @Tags         checkin
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        foto  formData  file  true  "captura de la cámara"
// @Success      201  {object}  dto.CheckInResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkin/entrada [post]
func (h *CheckInHandler) ClockIn(c *fiber.Ctx) error {
	photo, err := readPhoto(c)
	if err != nil || len(photo) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CAMERA_UNAVAILABLE", Message: msgNoCamera})
	}
	v, err := h.svc.ClockIn(c.Context(), GetUserID(c), photo)
	if err != nil {
		if errors.Is(err, domain.ErrCameraUnavailable) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CAMERA_UNAVAILABLE", Message: checkin.CameraNote})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(checkin.ToResponse(v))
}

// ClockOut godoc
// @Summary      Registrar salida
// @Tags         checkin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CheckInResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkin/salida [post]
func (h *CheckInHandler) ClockOut(c *fiber.Ctx) error {
	v, err := h.svc.ClockOut(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(checkin.ToResponse(v))
}

// Clock godoc
// @Summary      Reloj en vivo (SSE)
// @Description  Emite un evento "tick" por segundo con la vista de check-in hasta que el cliente se desconecta.
// @Tags         checkin
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200
// @Router       /api/checkin/reloj [get]
func (h *CheckInHandler) Clock(c *fiber.Ctx) error {
	employeeID := GetUserID(c)
	if _, err := h.svc.View(employeeID); err != nil {
		return respondError(c, err)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		_ = h.svc.Tick(h.life, clockInterval, func(time.Time) error {
			v, err := h.svc.View(employeeID)
			if err != nil {
				return err
			}
			data, err := json.Marshal(checkin.ToResponse(v))
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "event: tick\ndata: %s\n\n", data); err != nil {
				return err
			}
			// Flush falla cuando el cliente cerró la conexión.
			return w.Flush()
		})
	}))
	return nil
}

// readPhoto acepta archivo multipart o data URL.
func readPhoto(c *fiber.Ctx) ([]byte, error) {
	if fh, err := c.FormFile("foto"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxImageBytes))
	}
	if s := c.FormValue("foto"); s != "" {
		return checkin.DecodeDataURL(s)
	}
	return nil, domain.ErrCameraUnavailable
}

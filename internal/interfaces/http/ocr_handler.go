package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/internal/application/usecase"
	"github.com/jhoicas/nyx-os/internal/domain"
)

// Mensajes del contrato público de /api/ocr.
const (
	msgNoImage  = "No se ha subido ninguna imagen."
	msgNoPrompt = "No se ha proporcionado un prompt."
)

// maxImageBytes tamaño máximo de imagen aceptado en multipart.
const maxImageBytes = 10 << 20

// OCRHandler endpoint público de extracción de tickets.
type OCRHandler struct {
	uc ports.TicketExtractor
}

// NewOCRHandler construye el handler.
func NewOCRHandler(uc ports.TicketExtractor) *OCRHandler {
	return &OCRHandler{uc: uc}
}

// Extract godoc
// @Summary      Extraer líneas de un ticket con IA
// @Description  Recibe multipart con image (archivo) y prompt (texto). Devuelve el arreglo
//               [{descripcion, cantidad, precio}] tal como lo entrega el modelo, ya validado.
// @Tags         ocr
// @Accept       multipart/form-data
// @Produce      json
// @Param        image   formData  file    true  "foto del ticket"
// @Param        prompt  formData  string  true  "instrucción para el modelo"
// @Success      200  {array}   dto.OCRItem
// @Failure      400  {object}  dto.OCRErrorResponse
// @Failure      429  {object}  dto.OCRErrorResponse
// @Failure      500  {object}  dto.OCRErrorResponse
// @Router       /api/ocr [post]
func (h *OCRHandler) Extract(c *fiber.Ctx) error {
	img, err := readImage(c, "image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.OCRErrorResponse{Error: msgNoImage})
	}
	prompt := c.FormValue("prompt")
	if prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.OCRErrorResponse{Error: msgNoPrompt})
	}

	items, err := h.uc.ExtractItems(c.Context(), img, prompt)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.OCRErrorResponse{Error: err.Error()})
		}
		msg := usecase.OCRFailureMessage
		var um *domain.UserMessageError
		if errors.As(err, &um) && um.Message != "" {
			msg = um.Message
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.OCRErrorResponse{Error: msg})
	}
	if items == nil {
		items = []dto.OCRItem{}
	}
	return c.JSON(items)
}

// readImage lee el archivo del campo multipart indicado.
func readImage(c *fiber.Ctx, field string) (dto.OCRImage, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return dto.OCRImage{}, err
	}
	if fh.Size == 0 {
		return dto.OCRImage{}, errors.New("archivo vacío")
	}
	if fh.Size > maxImageBytes {
		return dto.OCRImage{}, errors.New("archivo demasiado grande")
	}
	f, err := fh.Open()
	if err != nil {
		return dto.OCRImage{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return dto.OCRImage{}, err
	}
	return dto.OCRImage{
		Data:     data,
		MIMEType: fh.Header.Get("Content-Type"),
		Filename: fh.Filename,
	}, nil
}

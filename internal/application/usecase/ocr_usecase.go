package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

// OCRFailureMessage mensaje público cuando el modelo falla o no devuelve JSON.
const OCRFailureMessage = "Error al procesar la imagen con la IA."

var _ ports.TicketExtractor = (*OCRUseCase)(nil)

// OCRUseCase extracción de líneas de ticket con el proveedor de IA configurado.
// Sirve al endpoint /api/ocr y, en modo directo, al flujo de captura de gastos.
type OCRUseCase struct {
	provider ports.TicketExtractor
	observer ports.OCRObserver
	log      *logger.Logger
	timeout  time.Duration
}

// NewOCRUseCase construye el caso de uso. timeout acota cada llamada al proveedor.
func NewOCRUseCase(provider ports.TicketExtractor, observer ports.OCRObserver, log *logger.Logger, timeout time.Duration) *OCRUseCase {
	if observer == nil {
		observer = ports.NopOCRObserver{}
	}
	return &OCRUseCase{provider: provider, observer: observer, log: log.Component("ocr"), timeout: timeout}
}

// ExtractItems valida la entrada y delega al proveedor. Cualquier falla del
// proveedor se devuelve como domain.UserMessageError con OCRFailureMessage.
func (uc *OCRUseCase) ExtractItems(ctx context.Context, image dto.OCRImage, prompt string) ([]dto.OCRItem, error) {
	if len(image.Data) == 0 {
		return nil, fmt.Errorf("imagen: %w", domain.ErrInvalidInput)
	}
	if prompt == "" {
		return nil, fmt.Errorf("prompt: %w", domain.ErrInvalidInput)
	}
	if uc.provider == nil {
		return nil, &domain.UserMessageError{Message: OCRFailureMessage, Err: domain.ErrOCRUnavailable}
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	start := time.Now()
	items, err := uc.provider.ExtractItems(ctx, image, prompt)
	if err != nil {
		outcome := "error"
		if errors.Is(err, domain.ErrOCRFormat) {
			outcome = "formato"
		}
		uc.observer.ObserveOCR("api", outcome)
		uc.log.Error().Err(err).Int("bytes", len(image.Data)).Dur("duracion", time.Since(start)).Msg("error en el proveedor de IA")
		return nil, &domain.UserMessageError{Message: OCRFailureMessage, Err: err}
	}
	uc.observer.ObserveOCR("api", "ok")
	uc.log.Debug().Int("items", len(items)).Dur("duracion", time.Since(start)).Msg("ticket extraído")
	return items, nil
}

package ports

import (
	"context"

	"github.com/jhoicas/nyx-os/internal/application/dto"
)

// TicketExtractor puerto de salida hacia el servicio de visión que lee tickets.
// Lo implementan los adaptadores de IA (Gemini, Anthropic) y el cliente del
// endpoint /api/ocr de otro servidor.
type TicketExtractor interface {
	// ExtractItems envía la imagen y el prompt y devuelve las líneas de producto.
	// El contexto debe llevar timeout; la respuesta del modelo ya viene validada.
	ExtractItems(ctx context.Context, image dto.OCRImage, prompt string) ([]dto.OCRItem, error)
}

// OCRObserver registra el resultado de cada extracción (métricas).
type OCRObserver interface {
	ObserveOCR(source, outcome string)
}

// NopOCRObserver descarta las observaciones.
type NopOCRObserver struct{}

// ObserveOCR no hace nada.
func (NopOCRObserver) ObserveOCR(string, string) {}

// Package ocr consume el endpoint POST /api/ocr de otro servidor Nyx.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/infrastructure/ai"
)

var _ ports.TicketExtractor = (*RemoteOCRClient)(nil)

// ServerFailureMessage se muestra cuando el servidor responde error sin campo "error".
const ServerFailureMessage = "Error en el servidor al procesar el ticket."

// RemoteOCRClient implementa TicketExtractor contra el contrato multipart
// image + prompt de /api/ocr.
type RemoteOCRClient struct {
	url        string
	httpClient *http.Client
}

// NewRemoteOCRClient baseURL es la raíz del servidor (p. ej. http://localhost:3001).
// httpClient nil usa http.DefaultClient; el timeout lo pone el contexto.
func NewRemoteOCRClient(baseURL string, httpClient *http.Client) *RemoteOCRClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RemoteOCRClient{
		url:        strings.TrimRight(baseURL, "/") + "/api/ocr",
		httpClient: httpClient,
	}
}

// ExtractItems sube la imagen y el prompt. En respuestas no-200 el campo
// "error" se devuelve tal cual dentro de un UserMessageError.
func (c *RemoteOCRClient) ExtractItems(ctx context.Context, image dto.OCRImage, prompt string) ([]dto.OCRItem, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	name := image.Filename
	if name == "" {
		name = "ticket.jpg"
	}
	part, err := mw.CreateFormFile("image", name)
	if err != nil {
		return nil, fmt.Errorf("ocr: multipart: %w", err)
	}
	if _, err := part.Write(image.Data); err != nil {
		return nil, fmt.Errorf("ocr: multipart: %w", err)
	}
	if err := mw.WriteField("prompt", prompt); err != nil {
		return nil, fmt.Errorf("ocr: multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("ocr: multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		return nil, fmt.Errorf("ocr: crear request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("ocr: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("ocr: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("ocr: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e dto.OCRErrorResponse
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return nil, &domain.UserMessageError{
				Message: e.Error,
				Err:     fmt.Errorf("ocr: HTTP %d", resp.StatusCode),
			}
		}
		return nil, &domain.UserMessageError{
			Message: ServerFailureMessage,
			Err:     fmt.Errorf("ocr: HTTP %d", resp.StatusCode),
		}
	}
	return ai.ParseItems(string(body))
}

package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa TicketExtractor.
var _ ports.TicketExtractor = (*GeminiService)(nil)

// GeminiService adaptador de visión sobre el SDK google.golang.org/genai.
// Envía la imagen en línea junto al prompt y pide salida application/json.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente Gemini: %w", err)
	}
	return &GeminiService{client: client, model: model}, nil
}

// ExtractItems pide al modelo las líneas del ticket y valida su forma.
func (s *GeminiService) ExtractItems(ctx context.Context, image dto.OCRImage, prompt string) ([]dto.OCRItem, error) {
	mime := image.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image.Data, mime),
		}, genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.1),
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: Gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return ParseItems(text)
}

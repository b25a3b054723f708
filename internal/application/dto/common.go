package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OCRErrorResponse cuerpo de error del endpoint /api/ocr. El contrato multipart
// de ese endpoint es {error} y lo consumen también otros servidores.
type OCRErrorResponse struct {
	Error string `json:"error"`
}

// ListResponse envoltorio genérico para listados.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList construye un ListResponse; nunca serializa items como null.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

package ai

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/domain"
)

// ParseItems valida la salida del modelo y la convierte en líneas de ticket.
// Se exige un arreglo JSON cuyos elementos tengan descripcion (texto),
// cantidad (número) y precio (número). Cualquier otra forma es ErrOCRFormat.
func ParseItems(raw string) ([]dto.OCRItem, error) {
	text := stripFences(raw)
	if text == "" || !gjson.Valid(text) {
		return nil, fmt.Errorf("%w: no es JSON", domain.ErrOCRFormat)
	}
	root := gjson.Parse(text)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: se esperaba un arreglo", domain.ErrOCRFormat)
	}

	elems := root.Array()
	items := make([]dto.OCRItem, 0, len(elems))
	for i, el := range elems {
		if !el.IsObject() {
			return nil, fmt.Errorf("%w: elemento %d no es objeto", domain.ErrOCRFormat, i)
		}
		desc := el.Get("descripcion")
		qty := el.Get("cantidad")
		price := el.Get("precio")
		if desc.Type != gjson.String {
			return nil, fmt.Errorf("%w: elemento %d sin descripcion", domain.ErrOCRFormat, i)
		}
		if qty.Type != gjson.Number || price.Type != gjson.Number {
			return nil, fmt.Errorf("%w: elemento %d con cantidad o precio no numérico", domain.ErrOCRFormat, i)
		}
		items = append(items, dto.OCRItem{
			Descripcion: desc.String(),
			Cantidad:    qty.Float(),
			Precio:      price.Float(),
		})
	}
	return items, nil
}

// stripFences quita un bloque ```json … ``` si el modelo lo añadió.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	idx := strings.Index(text, "```")
	if idx == -1 {
		return text
	}
	after := text[idx+3:]
	if nl := strings.Index(after, "\n"); nl != -1 {
		after = after[nl+1:]
	}
	if end := strings.LastIndex(after, "```"); end != -1 {
		after = after[:end]
	}
	return strings.TrimSpace(after)
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CaptureItemResponse línea extraída, editable hasta guardar.
type CaptureItemResponse struct {
	ID               string          `json:"id"`
	Descripcion      string          `json:"descripcion"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	Precio           decimal.Decimal `json:"precio"`
	InventarioID     string          `json:"inventario_id,omitempty"`
	InventarioNombre string          `json:"inventario_nombre,omitempty"`
}

// CaptureResponse estado del flujo de captura de una tarjeta de gastos.
type CaptureResponse struct {
	Estado string                `json:"estado"` // idle | procesando | extraido | error
	Error  string                `json:"error,omitempty"`
	Items  []CaptureItemResponse `json:"items"`
}

// LinkItemRequest body para vincular una línea a inventario.
type LinkItemRequest struct {
	InventarioID string `json:"inventario_id" validate:"required,max=100"`
}

// ExpenseItemResponse línea de un gasto guardado.
type ExpenseItemResponse struct {
	ID           string          `json:"id"`
	Descripcion  string          `json:"descripcion"`
	Cantidad     decimal.Decimal `json:"cantidad"`
	Precio       decimal.Decimal `json:"precio"`
	InventarioID string          `json:"inventario_id,omitempty"`
}

// ExpenseResponse gasto registrado.
type ExpenseResponse struct {
	ID              string                `json:"id"`
	Fecha           time.Time             `json:"fecha"`
	Proveedor       string                `json:"proveedor"`
	Items           []ExpenseItemResponse `json:"items"`
	Total           decimal.Decimal       `json:"total"`
	TotalFormateado string                `json:"total_formateado"`
}

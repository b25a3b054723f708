package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemResponse artículo con su valor (stock × costo).
type InventoryItemResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	Stock           decimal.Decimal `json:"stock"`
	UM              string          `json:"um"`
	Categoria       string          `json:"categoria"`
	ProveedorID     int             `json:"proveedor_id"`
	CostoUnitario   decimal.Decimal `json:"costo_unitario"`
	Valor           decimal.Decimal `json:"valor"`
	ValorFormateado string          `json:"valor_formateado"`
}

// InventoryResponse vista de valuación de inventario.
type InventoryResponse struct {
	Items                []InventoryItemResponse `json:"items"`
	ValorTotal           decimal.Decimal         `json:"valor_total"`
	ValorTotalFormateado string                  `json:"valor_total_formateado"`
}

// CostEntryResponse entrada del historial de costos.
type CostEntryResponse struct {
	Fecha   time.Time       `json:"fecha"`
	Costo   decimal.Decimal `json:"costo"`
	GastoID string          `json:"gasto_id"`
}

// CostHistoryResponse historial de costos de un artículo.
type CostHistoryResponse struct {
	ItemID        string              `json:"item_id"`
	Nombre        string              `json:"nombre"`
	CostoUnitario decimal.Decimal     `json:"costo_unitario"`
	Historial     []CostEntryResponse `json:"historial"`
}

// SupplierResponse proveedor.
type SupplierResponse struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Contacto  string `json:"contacto"`
	Telefono  string `json:"telefono"`
	Categoria string `json:"categoria"`
}

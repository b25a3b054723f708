package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto registrado desde una captura de ticket. Inmutable tras crearse.
type Expense struct {
	ID        string
	Fecha     time.Time
	Proveedor string
	Items     []ExpenseItem
	Total     decimal.Decimal // suma de Items[].Precio al momento de guardar
}

// ExpenseItem línea de un ticket. InventoryID vacío = sin vincular.
type ExpenseItem struct {
	ID          string
	Descripcion string
	Cantidad    decimal.Decimal
	Precio      decimal.Decimal
	InventoryID string
}

// Linked informa si la línea está vinculada a un artículo de inventario.
func (it ExpenseItem) Linked() bool {
	return it.InventoryID != ""
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem artículo de inventario. UnitCost es siempre el costo de la última
// entrada de CostHistory una vez que existe alguna.
type InventoryItem struct {
	ID          string
	Nombre      string
	Stock       decimal.Decimal
	UM          string // unidad de medida: pza, kg, lt
	Categoria   string
	SupplierID  int
	UnitCost    decimal.Decimal
	CostHistory []CostEntry // solo se agrega al final, en orden cronológico
}

// CostEntry cambio de costo unitario originado por un gasto.
type CostEntry struct {
	Fecha     time.Time
	Costo     decimal.Decimal
	ExpenseID string
}

// LatestCost devuelve la última entrada del historial, si existe.
func (i InventoryItem) LatestCost() (CostEntry, bool) {
	if len(i.CostHistory) == 0 {
		return CostEntry{}, false
	}
	return i.CostHistory[len(i.CostHistory)-1], true
}

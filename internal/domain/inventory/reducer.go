// Package inventory contiene el reducer puro y los cálculos de valuación del inventario.
package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
)

// TypeUpdateCost tipo de acción de actualización de costo.
const TypeUpdateCost = "UPDATE_COST"

// Action unión cerrada de acciones sobre el inventario.
type Action interface {
	Type() string
	isAction()
}

// UpdateCost registra un nuevo costo unitario originado por el gasto ExpenseID.
// At lo fija quien despacha (el store) para que Reduce siga siendo puro.
type UpdateCost struct {
	ItemID    string
	NewCost   decimal.Decimal
	ExpenseID string
	At        time.Time
}

func (UpdateCost) Type() string { return TypeUpdateCost }
func (UpdateCost) isAction()    {}

// Reduce aplica action sobre prev sin modificarlo. Un ItemID inexistente devuelve prev.
func Reduce(prev []entity.InventoryItem, action Action) ([]entity.InventoryItem, error) {
	switch a := action.(type) {
	case UpdateCost:
		return updateCost(prev, a), nil
	default:
		return prev, fmt.Errorf("%w: acción de inventario desconocida %T", domain.ErrInvalidInput, action)
	}
}

func updateCost(prev []entity.InventoryItem, a UpdateCost) []entity.InventoryItem {
	idx := -1
	for i := range prev {
		if prev[i].ID == a.ItemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return prev
	}

	next := make([]entity.InventoryItem, len(prev))
	copy(next, prev)

	// slice nuevo: un append sobre el historial compartido podría escribir en el
	// arreglo subyacente de un snapshot anterior
	old := prev[idx].CostHistory
	history := make([]entity.CostEntry, len(old), len(old)+1)
	copy(history, old)
	history = append(history, entity.CostEntry{Fecha: a.At, Costo: a.NewCost, ExpenseID: a.ExpenseID})

	next[idx].CostHistory = history
	next[idx].UnitCost = a.NewCost
	return next
}

package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/nyx-os/internal/domain/entity"
)

// ItemValue valor de un artículo: Stock × UnitCost.
func ItemValue(item entity.InventoryItem) decimal.Decimal {
	return item.Stock.Mul(item.UnitCost)
}

// TotalValue valor total del inventario.
func TotalValue(items []entity.InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(ItemValue(it))
	}
	return total
}

// Search filtra por subcadena del nombre sin distinguir mayúsculas (incluye acentos:
// "LIMÓN" encuentra "Limón"). Un término vacío devuelve todos los artículos.
func Search(items []entity.InventoryItem, term string) []entity.InventoryItem {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))
	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(fold.String(it.Nombre), needle) {
			out = append(out, it)
		}
	}
	return out
}

// Find busca un artículo por id.
func Find(items []entity.InventoryItem, id string) (entity.InventoryItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return entity.InventoryItem{}, false
}

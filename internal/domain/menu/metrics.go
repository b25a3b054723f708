// Package menu calcula la ingeniería de menú: costo, utilidad y margen por platillo.
package menu

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nyx-os/internal/domain/entity"
)

// Clases de margen.
const (
	ProfitHigh   = "profit-high"   // margen > 60 %
	ProfitMedium = "profit-medium" // margen > 30 %
	ProfitLow    = "profit-low"
)

var (
	hundred      = decimal.NewFromInt(100)
	thresholdHi  = decimal.NewFromInt(60)
	thresholdMid = decimal.NewFromInt(30)
)

// Metrics resultado por platillo.
type Metrics struct {
	Costo         decimal.Decimal
	UtilidadBruta decimal.Decimal
	Margen        decimal.Decimal // porcentaje 0-100
	Clase         string
}

// Calculate costea el platillo con el costo unitario vigente de cada ingrediente.
// Ingredientes cuyo artículo no existe en el inventario no suman costo.
func Calculate(d entity.Dish, items []entity.InventoryItem) Metrics {
	byID := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		byID[it.ID] = it.UnitCost
	}

	costo := decimal.Zero
	for _, ing := range d.Ingredients {
		unit, ok := byID[ing.InventoryID]
		if !ok {
			continue
		}
		costo = costo.Add(ing.Cantidad.Mul(unit))
	}

	utilidad := d.PrecioVenta.Sub(costo)
	margen := decimal.Zero
	if d.PrecioVenta.IsPositive() {
		margen = utilidad.Div(d.PrecioVenta).Mul(hundred)
	}

	return Metrics{
		Costo:         costo,
		UtilidadBruta: utilidad,
		Margen:        margen,
		Clase:         Classify(margen),
	}
}

// Classify asigna la clase de margen.
func Classify(margen decimal.Decimal) string {
	switch {
	case margen.GreaterThan(thresholdHi):
		return ProfitHigh
	case margen.GreaterThan(thresholdMid):
		return ProfitMedium
	default:
		return ProfitLow
	}
}

package menu_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/menu"
)

var inv = []entity.InventoryItem{
	{ID: "limon", UnitCost: decimal.RequireFromString("35")},
	{ID: "rib-eye", UnitCost: decimal.RequireFromString("450")},
	{ID: "aguacate", UnitCost: decimal.RequireFromString("85")},
}

func TestCalculate_Guacamole(t *testing.T) {
	d := entity.Dish{
		ID: "guacamole", PrecioVenta: decimal.NewFromInt(120),
		Ingredients: []entity.Ingredient{
			{InventoryID: "aguacate", Cantidad: decimal.RequireFromString("0.300")},
			{InventoryID: "limon", Cantidad: decimal.RequireFromString("0.050")},
		},
	}

	m := menu.Calculate(d, inv)

	// 0.3 × 85 + 0.05 × 35 = 27.25
	assert.True(t, m.Costo.Equal(decimal.RequireFromString("27.25")), m.Costo.String())
	assert.True(t, m.UtilidadBruta.Equal(decimal.RequireFromString("92.75")))
	assert.Equal(t, "77.3", m.Margen.StringFixed(1))
	assert.Equal(t, menu.ProfitHigh, m.Clase)
}

func TestCalculate_TacoRibEye(t *testing.T) {
	d := entity.Dish{
		PrecioVenta: decimal.NewFromInt(85),
		Ingredients: []entity.Ingredient{{InventoryID: "rib-eye", Cantidad: decimal.RequireFromString("0.150")}},
	}

	m := menu.Calculate(d, inv)

	// 0.15 × 450 = 67.5 → margen 20.6 %
	assert.True(t, m.Costo.Equal(decimal.RequireFromString("67.5")))
	assert.Equal(t, menu.ProfitLow, m.Clase)
}

func TestCalculate_IngredienteInexistenteYPrecioCero(t *testing.T) {
	d := entity.Dish{
		PrecioVenta: decimal.Zero,
		Ingredients: []entity.Ingredient{{InventoryID: "fantasma", Cantidad: decimal.NewFromInt(3)}},
	}

	m := menu.Calculate(d, inv)

	assert.True(t, m.Costo.IsZero())
	assert.True(t, m.Margen.IsZero())
	assert.Equal(t, menu.ProfitLow, m.Clase)
}

func TestClassify_Umbrales(t *testing.T) {
	assert.Equal(t, menu.ProfitHigh, menu.Classify(decimal.RequireFromString("60.1")))
	assert.Equal(t, menu.ProfitMedium, menu.Classify(decimal.NewFromInt(60)))
	assert.Equal(t, menu.ProfitMedium, menu.Classify(decimal.RequireFromString("30.01")))
	assert.Equal(t, menu.ProfitLow, menu.Classify(decimal.NewFromInt(30)))
}

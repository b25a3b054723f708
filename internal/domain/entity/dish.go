package entity

import "github.com/shopspring/decimal"

// Dish platillo del menú con su receta.
type Dish struct {
	ID          string
	Nombre      string
	PrecioVenta decimal.Decimal
	Ingredients []Ingredient
}

// Ingredient cantidad de un artículo de inventario (en su unidad de medida) por porción.
type Ingredient struct {
	InventoryID string
	Cantidad    decimal.Decimal
}

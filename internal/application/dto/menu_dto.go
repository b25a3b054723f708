package dto

import "github.com/shopspring/decimal"

// DishMetricsResponse métricas de un platillo.
type DishMetricsResponse struct {
	ID                 string          `json:"id"`
	Nombre             string          `json:"nombre"`
	PrecioVenta        decimal.Decimal `json:"precio_venta"`
	Costo              decimal.Decimal `json:"costo"`
	UtilidadBruta      decimal.Decimal `json:"utilidad_bruta"`
	Margen             decimal.Decimal `json:"margen"` // porcentaje, 1 decimal
	Clase              string          `json:"clase"`
	PrecioFormateado   string          `json:"precio_formateado"`
	CostoFormateado    string          `json:"costo_formateado"`
	UtilidadFormateada string          `json:"utilidad_formateada"`
	MargenFormateado   string          `json:"margen_formateado"`
}

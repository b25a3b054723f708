package usecase

import (
	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/domain/menu"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
	"github.com/jhoicas/nyx-os/pkg/money"
)

// MenuUseCase ingeniería de menú: costo y margen de cada platillo con los
// costos vigentes del inventario.
type MenuUseCase struct {
	dishes    repository.DishStore
	inventory repository.InventoryStore
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(dishes repository.DishStore, inventory repository.InventoryStore) *MenuUseCase {
	return &MenuUseCase{dishes: dishes, inventory: inventory}
}

// Metrics métricas de todos los platillos.
func (uc *MenuUseCase) Metrics() []dto.DishMetricsResponse {
	items := uc.inventory.Inventory()
	dishes := uc.dishes.Dishes()
	out := make([]dto.DishMetricsResponse, 0, len(dishes))
	for _, d := range dishes {
		m := menu.Calculate(d, items)
		out = append(out, dto.DishMetricsResponse{
			ID:                 d.ID,
			Nombre:             d.Nombre,
			PrecioVenta:        d.PrecioVenta,
			Costo:              m.Costo,
			UtilidadBruta:      m.UtilidadBruta,
			Margen:             m.Margen.Round(1),
			Clase:              m.Clase,
			PrecioFormateado:   money.Format(d.PrecioVenta),
			CostoFormateado:    money.Format(m.Costo),
			UtilidadFormateada: money.Format(m.UtilidadBruta),
			MargenFormateado:   money.Percent(m.Margen),
		})
	}
	return out
}

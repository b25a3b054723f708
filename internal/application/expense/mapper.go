package expense

import (
	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
	"github.com/jhoicas/nyx-os/pkg/money"
)

// ToCaptureResponse proyecta el estado del flujo; inv resuelve el nombre de
// los artículos vinculados.
func ToCaptureResponse(s Snapshot, inv repository.InventoryStore) dto.CaptureResponse {
	out := dto.CaptureResponse{
		Estado: s.State,
		Error:  s.Error,
		Items:  make([]dto.CaptureItemResponse, 0, len(s.Items)),
	}
	for _, it := range s.Items {
		r := dto.CaptureItemResponse{
			ID:           it.ID,
			Descripcion:  it.Descripcion,
			Cantidad:     it.Cantidad,
			Precio:       it.Precio,
			InventarioID: it.InventoryID,
		}
		if it.InventoryID != "" && inv != nil {
			if item, ok := inv.InventoryItem(it.InventoryID); ok {
				r.InventarioNombre = item.Nombre
			}
		}
		out.Items = append(out.Items, r)
	}
	return out
}

// ToExpenseResponse convierte un gasto guardado.
func ToExpenseResponse(e entity.Expense) dto.ExpenseResponse {
	items := make([]dto.ExpenseItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, dto.ExpenseItemResponse{
			ID:           it.ID,
			Descripcion:  it.Descripcion,
			Cantidad:     it.Cantidad,
			Precio:       it.Precio,
			InventarioID: it.InventoryID,
		})
	}
	return dto.ExpenseResponse{
		ID:              e.ID,
		Fecha:           e.Fecha,
		Proveedor:       e.Proveedor,
		Items:           items,
		Total:           e.Total,
		TotalFormateado: money.Format(e.Total),
	}
}

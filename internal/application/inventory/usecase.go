package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/inventory"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
	"github.com/jhoicas/nyx-os/pkg/money"
)

// UseCase valuación de inventario, historial de costos y proveedores.
// El costo solo cambia desde el flujo de captura de gastos.
type UseCase struct {
	items     repository.InventoryStore
	suppliers repository.SupplierStore
	xlsx      ports.SpreadsheetExporter
}

// NewUseCase construye el caso de uso.
func NewUseCase(items repository.InventoryStore, suppliers repository.SupplierStore, xlsx ports.SpreadsheetExporter) *UseCase {
	return &UseCase{items: items, suppliers: suppliers, xlsx: xlsx}
}

// Valuation artículos con su valor y el valor total.
func (uc *UseCase) Valuation() dto.InventoryResponse {
	items := uc.items.Inventory()
	out := dto.InventoryResponse{Items: make([]dto.InventoryItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, ToItemResponse(it))
	}
	total := inventory.TotalValue(items)
	out.ValorTotal = total
	out.ValorTotalFormateado = money.Format(total)
	return out
}

// Search artículos cuyo nombre contiene term.
func (uc *UseCase) Search(term string) []dto.InventoryItemResponse {
	found := inventory.Search(uc.items.Inventory(), term)
	out := make([]dto.InventoryItemResponse, 0, len(found))
	for _, it := range found {
		out = append(out, ToItemResponse(it))
	}
	return out
}

// History historial de costos de un artículo, en orden cronológico.
func (uc *UseCase) History(id string) (*dto.CostHistoryResponse, error) {
	it, ok := uc.items.InventoryItem(id)
	if !ok {
		return nil, fmt.Errorf("artículo %s: %w", id, domain.ErrNotFound)
	}
	h := make([]dto.CostEntryResponse, 0, len(it.CostHistory))
	for _, c := range it.CostHistory {
		h = append(h, dto.CostEntryResponse{Fecha: c.Fecha, Costo: c.Costo, GastoID: c.ExpenseID})
	}
	return &dto.CostHistoryResponse{ItemID: it.ID, Nombre: it.Nombre, CostoUnitario: it.UnitCost, Historial: h}, nil
}

// Suppliers proveedores registrados.
func (uc *UseCase) Suppliers() []dto.SupplierResponse {
	ss := uc.suppliers.Suppliers()
	out := make([]dto.SupplierResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, dto.SupplierResponse{ID: s.ID, Nombre: s.Nombre, Contacto: s.Contacto, Telefono: s.Telefono, Categoria: s.Categoria})
	}
	return out
}

// ExportXLSX libro de inventario.
func (uc *UseCase) ExportXLSX(ctx context.Context) ([]byte, error) {
	return uc.xlsx.InventoryXLSX(ctx, uc.items.Inventory())
}

// ToItemResponse convierte al DTO con el valor calculado.
func ToItemResponse(it entity.InventoryItem) dto.InventoryItemResponse {
	v := inventory.ItemValue(it)
	return dto.InventoryItemResponse{
		ID:              it.ID,
		Nombre:          it.Nombre,
		Stock:           it.Stock,
		UM:              it.UM,
		Categoria:       it.Categoria,
		ProveedorID:     it.SupplierID,
		CostoUnitario:   it.UnitCost,
		Valor:           v,
		ValorFormateado: money.Format(v),
	}
}

package expense

import (
	"context"
	"fmt"

	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
)

// ReportUseCase consulta y exporta los gastos registrados.
type ReportUseCase struct {
	expenses  repository.ExpenseStore
	inventory repository.InventoryStore
	pdf       ports.ExpensePDFGenerator
	xlsx      ports.SpreadsheetExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	expenses repository.ExpenseStore,
	inventory repository.InventoryStore,
	pdf ports.ExpensePDFGenerator,
	xlsx ports.SpreadsheetExporter,
) *ReportUseCase {
	return &ReportUseCase{expenses: expenses, inventory: inventory, pdf: pdf, xlsx: xlsx}
}

// List gastos en orden de registro.
func (uc *ReportUseCase) List() []entity.Expense {
	return uc.expenses.Expenses()
}

// Get un gasto por id.
func (uc *ReportUseCase) Get(id string) (entity.Expense, error) {
	e, ok := uc.expenses.Expense(id)
	if !ok {
		return entity.Expense{}, fmt.Errorf("gasto %s: %w", id, domain.ErrNotFound)
	}
	return e, nil
}

// PDF comprobante del gasto.
func (uc *ReportUseCase) PDF(ctx context.Context, id string) ([]byte, error) {
	e, err := uc.Get(id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateExpensePDF(ctx, e, uc.inventory.Inventory())
}

// XLSX libro con todos los gastos.
func (uc *ReportUseCase) XLSX(ctx context.Context) ([]byte, error) {
	return uc.xlsx.ExpensesXLSX(ctx, uc.expenses.Expenses())
}

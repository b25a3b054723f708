package ports

import (
	"context"

	"github.com/jhoicas/nyx-os/internal/domain/entity"
)

// ExpensePDFGenerator genera el comprobante PDF de un gasto.
type ExpensePDFGenerator interface {
	GenerateExpensePDF(ctx context.Context, expense entity.Expense, inventory []entity.InventoryItem) ([]byte, error)
}

// SpreadsheetExporter genera los libros XLSX de inventario y gastos.
type SpreadsheetExporter interface {
	InventoryXLSX(ctx context.Context, items []entity.InventoryItem) ([]byte, error)
	ExpensesXLSX(ctx context.Context, expenses []entity.Expense) ([]byte, error)
}

// PhotoMirror espeja horizontalmente una foto y la devuelve como JPEG.
type PhotoMirror interface {
	MirrorJPEG(raw []byte) ([]byte, error)
}

package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/infrastructure/pdf"
)

func TestGenerateExpensePDF(t *testing.T) {
	exp := entity.Expense{
		ID:        "gasto-1",
		Fecha:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Proveedor: "Proveedor General",
		Total:     decimal.NewFromInt(205),
		Items: []entity.ExpenseItem{
			{ID: "a", Descripcion: "Cerveza", Cantidad: decimal.NewFromInt(10), Precio: decimal.NewFromInt(185), InventoryID: "inv-001"},
			{ID: "b", Descripcion: "Hielo", Cantidad: decimal.Zero, Precio: decimal.NewFromInt(20)},
		},
	}
	inv := []entity.InventoryItem{{ID: "inv-001", Nombre: "Cerveza Victoria"}}

	out, err := pdf.NewMarotoPDFGenerator().GenerateExpensePDF(context.Background(), exp, inv)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

package expense_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nyx-os/internal/application/expense"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
)

type fakeDocs struct {
	pdfFor   string
	pdfItems int
	xlsxLen  int
}

func (f *fakeDocs) GenerateExpensePDF(_ context.Context, e entity.Expense, inv []entity.InventoryItem) ([]byte, error) {
	f.pdfFor = e.ID
	f.pdfItems = len(inv)
	return []byte("%PDF"), nil
}

func (f *fakeDocs) InventoryXLSX(context.Context, []entity.InventoryItem) ([]byte, error) {
	return nil, nil
}

func (f *fakeDocs) ExpensesXLSX(_ context.Context, es []entity.Expense) ([]byte, error) {
	f.xlsxLen = len(es)
	return []byte("PK"), nil
}

func TestReportUseCase(t *testing.T) {
	store := newStore(t)
	store.AddExpense(entity.Expense{ID: "gasto-1", Total: decimal.NewFromInt(10)})
	docs := &fakeDocs{}
	uc := expense.NewReportUseCase(store, store, docs, docs)

	assert.Len(t, uc.List(), 1)

	_, err := uc.Get("gasto-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	pdf, err := uc.PDF(context.Background(), "gasto-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), pdf)
	assert.Equal(t, "gasto-1", docs.pdfFor)
	assert.Equal(t, 4, docs.pdfItems)

	_, err = uc.PDF(context.Background(), "gasto-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.XLSX(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, docs.xlsxLen)
}

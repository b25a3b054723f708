package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appinventory "github.com/jhoicas/nyx-os/internal/application/inventory"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/inventory"
	"github.com/jhoicas/nyx-os/internal/infrastructure/memory"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

type countingXLSX struct{ items int }

func (c *countingXLSX) InventoryXLSX(_ context.Context, items []entity.InventoryItem) ([]byte, error) {
	c.items = len(items)
	return []byte("PK"), nil
}

func (c *countingXLSX) ExpensesXLSX(context.Context, []entity.Expense) ([]byte, error) {
	return nil, nil
}

func newUseCase(t *testing.T) (*appinventory.UseCase, *memory.Store, *countingXLSX) {
	t.Helper()
	data, err := memory.DemoSeed(memory.SeedOptions{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	store := memory.NewStore(logger.Nop(), data)
	x := &countingXLSX{}
	return appinventory.NewUseCase(store, store, x), store, x
}

func TestValuation(t *testing.T) {
	uc, _, _ := newUseCase(t)

	v := uc.Valuation()
	require.Len(t, v.Items, 4)
	// 100×18.50 + 20×35 + 8×450 + 15×85
	assert.True(t, v.ValorTotal.Equal(decimal.RequireFromString("7425")), v.ValorTotal.String())
	assert.Equal(t, "$7,425.00", v.ValorTotalFormateado)
}

func TestHistory(t *testing.T) {
	uc, store, _ := newUseCase(t)

	_, err := store.DispatchInventory(inventory.UpdateCost{ItemID: "limon", NewCost: decimal.NewFromInt(40), ExpenseID: "gasto-1"})
	require.NoError(t, err)

	h, err := uc.History("limon")
	require.NoError(t, err)
	require.Len(t, h.Historial, 1)
	assert.Equal(t, "gasto-1", h.Historial[0].GastoID)
	assert.True(t, h.CostoUnitario.Equal(decimal.NewFromInt(40)))

	_, err = uc.History("nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchYProveedores(t *testing.T) {
	uc, _, x := newUseCase(t)

	assert.Len(t, uc.Search("E"), 3) // Cerveza Victoria, Rib Eye, Aguacate
	assert.Len(t, uc.Suppliers(), 2)

	_, err := uc.ExportXLSX(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, x.items)
}

package memory_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nyx-os/internal/domain/employee"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/inventory"
	"github.com/jhoicas/nyx-os/internal/infrastructure/memory"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

var fixedNow = time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC)

func newStore(t *testing.T, log *logger.Logger) *memory.Store {
	t.Helper()
	data, err := memory.DemoSeed(memory.SeedOptions{AdminPassword: "admin-pass", BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	return memory.NewStore(log, data, memory.WithClock(func() time.Time { return fixedNow }))
}

func TestDemoSeed_UsuariosYHashes(t *testing.T) {
	s := newStore(t, logger.Nop())

	u, err := s.FindByUsuario("juan.perez")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleEmpleado, u.Role)
	assert.Equal(t, "juan", u.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("4004")))

	admin, err := s.GetByID("admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	dev, err := s.GetByID("developer")
	require.NoError(t, err)
	assert.Nil(t, dev, "sin contraseña configurada el usuario developer no se siembra")
}

func TestDispatchEmployee_ClockInCambiaEstado(t *testing.T) {
	s := newStore(t, logger.Nop())

	changed, err := s.DispatchEmployee(employee.ClockIn{EmployeeID: "juan", Timestamp: fixedNow, Photo: "p"})
	require.NoError(t, err)
	assert.True(t, changed)

	e, ok := s.Employee("juan")
	require.True(t, ok)
	assert.True(t, e.OnShift())
}

func TestDispatchEmployee_SinImplementarSoloAdvierte(t *testing.T) {
	var buf bytes.Buffer
	s := newStore(t, logger.NewWriter(&buf, "debug"))
	before := s.Employees()

	changed, err := s.DispatchEmployee(employee.ApproveLoan{EmployeeID: "carlos"})
	require.NoError(t, err, "la superficie de dispatch acepta la acción")
	assert.False(t, changed)
	assert.Equal(t, before, s.Employees())
	assert.Contains(t, buf.String(), "APPROVE_LOAN")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestDispatchEmployee_IDDesconocidoNoCambia(t *testing.T) {
	s := newStore(t, logger.Nop())
	before := s.Employees()

	changed, err := s.DispatchEmployee(employee.ClockOut{EmployeeID: "nadie", Timestamp: fixedNow})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, before, s.Employees())
}

func TestDispatchInventory_EstampaFecha(t *testing.T) {
	s := newStore(t, logger.Nop())

	changed, err := s.DispatchInventory(inventory.UpdateCost{ItemID: "limon", NewCost: decimal.NewFromInt(40), ExpenseID: "gasto-x"})
	require.NoError(t, err)
	assert.True(t, changed)

	it, ok := s.InventoryItem("limon")
	require.True(t, ok)
	require.Len(t, it.CostHistory, 1)
	assert.True(t, it.CostHistory[0].Fecha.Equal(fixedNow))
}

func TestSnapshots_SonCopias(t *testing.T) {
	s := newStore(t, logger.Nop())

	snap := s.Inventory()
	snap[0].Nombre = "modificado"

	it, _ := s.InventoryItem(snap[0].ID)
	assert.NotEqual(t, "modificado", it.Nombre)
}

func TestAddSync_MasRecientePrimero(t *testing.T) {
	s := newStore(t, logger.Nop())

	s.AddSync(entity.SyncEntry{ID: "sync-3", Task: "Inventario"})

	h := s.SyncHistory()
	require.Len(t, h, 3)
	assert.Equal(t, "sync-3", h[0].ID)
	assert.Equal(t, "sync-1", h[1].ID)
}

func TestAddExpense(t *testing.T) {
	s := newStore(t, logger.Nop())

	s.AddExpense(entity.Expense{ID: "gasto-1", Total: decimal.NewFromInt(10)})

	got, ok := s.Expense("gasto-1")
	require.True(t, ok)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(10)))
	assert.Len(t, s.Expenses(), 1)
}

package apps_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nyx-os/internal/application/apps"
	"github.com/jhoicas/nyx-os/internal/application/checkin"
	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/expense"
	"github.com/jhoicas/nyx-os/internal/application/inventory"
	"github.com/jhoicas/nyx-os/internal/application/session"
	"github.com/jhoicas/nyx-os/internal/application/shell"
	"github.com/jhoicas/nyx-os/internal/application/usecase"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/infrastructure/memory"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

type nopMirror struct{}

func (nopMirror) MirrorJPEG(b []byte) ([]byte, error) { return b, nil }

type fixture struct {
	reg      *shell.Registry
	sessions *session.Manager
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	data, err := memory.DemoSeed(memory.SeedOptions{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	store := memory.NewStore(logger.Nop(), data)
	now := func() time.Time { return time.Date(2024, 7, 20, 15, 0, 0, 0, time.UTC) }

	sessions := session.NewManager(session.Config{
		Scheduler: shell.NewManualScheduler(),
		NewCapture: func() *expense.Workflow {
			return expense.NewWorkflow(expense.Deps{Inventory: store, Expenses: store})
		},
	}, logger.Nop())
	t.Cleanup(sessions.Shutdown)

	reg := apps.NewRegistry(apps.Deps{
		Captures:  sessions,
		Inventory: inventory.NewUseCase(store, store, nil),
		Items:     store,
		Menu:      usecase.NewMenuUseCase(store, store),
		Sync:      usecase.NewSyncUseCase(store, now),
		CheckIn:   checkin.NewService(store, nopMirror{}, logger.Nop(), now),
	})
	return fixture{reg: reg, sessions: sessions}
}

func render(t *testing.T, f fixture, u entity.User, appID string) shell.View {
	t.Helper()
	card := f.sessions.Get(u).Cards.Open(appID)
	v, err := f.reg.Render(context.Background(), shell.RenderContext{User: u, Card: card})
	require.NoError(t, err)
	return v
}

var (
	admin    = entity.User{ID: "admin", Role: entity.RoleAdmin}
	juan     = entity.User{ID: "juan", Role: entity.RoleEmpleado}
	fantasma = entity.User{ID: "fantasma", Role: entity.RoleEmpleado}
)

func TestLauncher_AppsDelRol(t *testing.T) {
	v := render(t, newFixture(t), juan, shell.LauncherID)
	assert.Equal(t, apps.KindLauncher, v.Kind)
	entries := v.Data.([]dto.DockEntry)
	require.Len(t, entries, 4)
	assert.Equal(t, dto.DockEntry{AppID: "checkIn", Title: "CheckIn"}, entries[3])
}

func TestGastos_VistaDeCaptura(t *testing.T) {
	v := render(t, newFixture(t), admin, "gastos")
	assert.Equal(t, apps.KindCapture, v.Kind)
	assert.Equal(t, expense.StateIdle, v.Data.(dto.CaptureResponse).Estado)
}

func TestInventario_Valuacion(t *testing.T) {
	v := render(t, newFixture(t), admin, "inventario")
	assert.Equal(t, "$7,425.00", v.Data.(dto.InventoryResponse).ValorTotalFormateado)
}

func TestMenu_Metricas(t *testing.T) {
	v := render(t, newFixture(t), admin, "menu")
	assert.Len(t, v.Data.([]dto.DishMetricsResponse), 2)
}

func TestCheckIn_Empleado(t *testing.T) {
	v := render(t, newFixture(t), juan, "checkIn")
	require.Equal(t, apps.KindCheckIn, v.Kind)
	resp := v.Data.(dto.CheckInResponse)
	assert.Equal(t, checkin.ModoEntrada, resp.Modo)
	assert.Equal(t, checkin.CameraNote, resp.Nota)
}

func TestCheckIn_SinEmpleadoQuedaCargando(t *testing.T) {
	f := newFixture(t)
	for _, u := range []entity.User{admin, fantasma} {
		v := render(t, f, u, "checkIn")
		assert.Equal(t, shell.KindPlaceholder, v.Kind)
		assert.Equal(t, apps.LoadingCheckIn, v.Message)
	}
}

func TestSincronizacion_Historial(t *testing.T) {
	v := render(t, newFixture(t), entity.User{ID: "developer", Role: entity.RoleDeveloper}, "sincronizacion")
	hist := v.Data.([]dto.SyncEntryResponse)
	require.Len(t, hist, 2)
	assert.Equal(t, "sync-1", hist[0].ID)
}

func TestPlaceholderYDesconocida(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "Dev Estado Content", render(t, f, admin, "estado").Message)
	assert.Equal(t, shell.KindNotFound, render(t, f, admin, "tetris").Kind)
}

package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/usecase"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/employee"
	"github.com/jhoicas/nyx-os/internal/infrastructure/memory"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	data, err := memory.DemoSeed(memory.SeedOptions{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	return memory.NewStore(logger.Nop(), data)
}

// ──────────────────────────────────────────────────────────────────────────────
// OCR
// ──────────────────────────────────────────────────────────────────────────────

type stubProvider struct {
	items    []dto.OCRItem
	err      error
	deadline bool
}

func (p *stubProvider) ExtractItems(ctx context.Context, _ dto.OCRImage, _ string) ([]dto.OCRItem, error) {
	_, p.deadline = ctx.Deadline()
	return p.items, p.err
}

type countingObserver struct {
	mu   sync.Mutex
	seen []string
}

func (o *countingObserver) ObserveOCR(source, outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, source+":"+outcome)
}

func TestOCRUseCase_ValidaEntrada(t *testing.T) {
	uc := usecase.NewOCRUseCase(&stubProvider{}, nil, logger.Nop(), time.Second)

	_, err := uc.ExtractItems(context.Background(), dto.OCRImage{}, "p")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ExtractItems(context.Background(), dto.OCRImage{Data: []byte{1}}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOCRUseCase_SinProveedor(t *testing.T) {
	uc := usecase.NewOCRUseCase(nil, nil, logger.Nop(), time.Second)
	_, err := uc.ExtractItems(context.Background(), dto.OCRImage{Data: []byte{1}}, "p")

	var um *domain.UserMessageError
	require.ErrorAs(t, err, &um)
	assert.Equal(t, usecase.OCRFailureMessage, um.Message)
	assert.ErrorIs(t, err, domain.ErrOCRUnavailable)
}

func TestOCRUseCase_ResultadosYMetricas(t *testing.T) {
	obs := &countingObserver{}
	p := &stubProvider{items: []dto.OCRItem{{Descripcion: "Limón", Cantidad: 2, Precio: 70}}}
	uc := usecase.NewOCRUseCase(p, obs, logger.Nop(), time.Second)

	items, err := uc.ExtractItems(context.Background(), dto.OCRImage{Data: []byte{1}}, "p")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.True(t, p.deadline, "la llamada al proveedor lleva timeout")

	p.items, p.err = nil, errors.Join(domain.ErrOCRFormat, errors.New("no es un array"))
	_, err = uc.ExtractItems(context.Background(), dto.OCRImage{Data: []byte{1}}, "p")
	var um *domain.UserMessageError
	require.ErrorAs(t, err, &um)
	assert.Equal(t, "Error al procesar la imagen con la IA.", um.Message)
	assert.ErrorIs(t, err, domain.ErrOCRFormat)

	p.err = errors.New("503")
	_, _ = uc.ExtractItems(context.Background(), dto.OCRImage{Data: []byte{1}}, "p")

	assert.Equal(t, []string{"api:ok", "api:formato", "api:error"}, obs.seen)
}

// ──────────────────────────────────────────────────────────────────────────────
// Empleados
// ──────────────────────────────────────────────────────────────────────────────

func TestActionFromRequest(t *testing.T) {
	now := time.Date(2024, 7, 20, 14, 0, 0, 0, time.UTC)

	a, err := usecase.ActionFromRequest(dto.EmployeeActionRequest{
		Type:    employee.TypeClockIn,
		Payload: []byte(`{"empleadoId":"juan","timestamp":1721484000000,"photo":"data:image/jpeg;base64,AA=="}`),
	}, now)
	require.NoError(t, err)
	ci, ok := a.(employee.ClockIn)
	require.True(t, ok)
	assert.Equal(t, "juan", ci.EmployeeID)
	assert.Equal(t, time.UnixMilli(1721484000000), ci.Timestamp)

	a, err = usecase.ActionFromRequest(dto.EmployeeActionRequest{Type: employee.TypeClockOut, Payload: []byte(`{"empleadoId":"juan"}`)}, now)
	require.NoError(t, err)
	assert.Equal(t, now, a.(employee.ClockOut).Timestamp)

	_, err = usecase.ActionFromRequest(dto.EmployeeActionRequest{Type: "FIRE"}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = usecase.ActionFromRequest(dto.EmployeeActionRequest{Type: employee.TypeDelete, Payload: []byte(`{`)}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeUseCase_EntradaYSalida(t *testing.T) {
	store := newStore(t)
	now := time.Date(2024, 7, 20, 14, 0, 0, 0, time.UTC)
	uc := usecase.NewEmployeeUseCase(store, func() time.Time { return now })

	out, err := uc.Dispatch(dto.EmployeeActionRequest{Type: employee.TypeClockIn, Payload: []byte(`{"empleadoId":"carlos"}`)})
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.True(t, out.Implementada)

	now = now.Add(90 * time.Minute)
	_, err = uc.Dispatch(dto.EmployeeActionRequest{Type: employee.TypeClockOut, Payload: []byte(`{"empleadoId":"carlos"}`)})
	require.NoError(t, err)

	e, err := uc.GetByID("carlos")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, e.HorasPendientes, 1e-9)
	assert.Nil(t, e.ClockInTime)

	_, err = uc.GetByID("nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Menú y sincronización
// ──────────────────────────────────────────────────────────────────────────────

func TestMenuUseCase_Metrics(t *testing.T) {
	store := newStore(t)
	got := usecase.NewMenuUseCase(store, store).Metrics()
	require.Len(t, got, 2)

	byID := map[string]dto.DishMetricsResponse{}
	for _, m := range got {
		byID[m.ID] = m
	}
	g := byID["guacamole"]
	assert.Equal(t, "27.25", g.Costo.String())
	assert.Equal(t, "profit-high", g.Clase)
	assert.Equal(t, "77.3%", g.MargenFormateado)

	taco := byID["taco-carne"]
	assert.Equal(t, "67.5", taco.Costo.String())
	assert.Equal(t, "profit-low", taco.Clase)
	assert.Equal(t, "$17.50", taco.UtilidadFormateada)
}

func TestSyncUseCase_Record(t *testing.T) {
	store := newStore(t)
	now := time.Date(2024, 7, 21, 9, 0, 0, 0, time.UTC)
	uc := usecase.NewSyncUseCase(store, func() time.Time { return now })

	e := uc.Record("developer", dto.RecordSyncRequest{Tarea: "Corte de Caja", Estado: "completado", Registros: 80})
	assert.Regexp(t, `^sync-[0-9a-f-]{36}$`, e.ID)
	assert.Equal(t, now, e.Fecha)

	h := uc.History()
	require.Len(t, h, 3)
	assert.Equal(t, e.ID, h[0].ID)
	assert.Equal(t, "sync-1", h[1].ID)
}

package employee_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/employee"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
)

func seed() []entity.Employee {
	return []entity.Employee{
		{ID: "juan", Nombre: "Juan Pérez García", PendingHours: 0},
		{ID: "maria", Nombre: "María López Hernández", PendingHours: 45},
	}
}

func sameBacking(a, b []entity.Employee) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func TestClockIn_AbreTurnoYGuardaFoto(t *testing.T) {
	prev := seed()
	t0 := time.Date(2024, 7, 20, 14, 0, 0, 0, time.UTC)

	next, err := employee.Reduce(prev, employee.ClockIn{EmployeeID: "juan", Timestamp: t0, Photo: "data:image/jpeg;base64,AAA"})
	require.NoError(t, err)

	require.NotNil(t, next[0].ClockInTime)
	assert.True(t, next[0].ClockInTime.Equal(t0))
	assert.Equal(t, "data:image/jpeg;base64,AAA", next[0].CapturedPhoto)
	assert.Nil(t, next[1].ClockInTime, "los demás empleados no cambian")

	assert.Nil(t, prev[0].ClockInTime, "el reducer no debe mutar la entrada")
	assert.False(t, sameBacking(prev, next))
}

func TestClockInThenClockOut_AcumulaHoras(t *testing.T) {
	prev := seed()
	prev[1].PendingHours = 45
	t0 := time.Date(2024, 7, 20, 13, 0, 0, 0, time.UTC)
	t2 := t0.Add(7*time.Hour + 30*time.Minute)

	afterIn, err := employee.Reduce(prev, employee.ClockIn{EmployeeID: "maria", Timestamp: t0})
	require.NoError(t, err)
	afterOut, err := employee.Reduce(afterIn, employee.ClockOut{EmployeeID: "maria", Timestamp: t2})
	require.NoError(t, err)

	want := 45 + float64(t2.Sub(t0).Milliseconds())/3_600_000
	assert.InDelta(t, want, afterOut[1].PendingHours, 1e-9)
	assert.Nil(t, afterOut[1].ClockInTime)
	assert.InDelta(t, 52.5, afterOut[1].PendingHours, 1e-9)
}

func TestClockOut_SinTurnoEsNoOp(t *testing.T) {
	prev := seed()

	next, err := employee.Reduce(prev, employee.ClockOut{EmployeeID: "juan", Timestamp: time.Now()})
	require.NoError(t, err)

	assert.Equal(t, prev, next)
	assert.True(t, sameBacking(prev, next), "un no-op debe devolver la misma colección")
}

func TestClockOut_RelojAtrasadoNoRestaHoras(t *testing.T) {
	t0 := time.Date(2024, 7, 20, 13, 0, 0, 0, time.UTC)
	prev := seed()
	prev[1].ClockInTime = &t0

	next, err := employee.Reduce(prev, employee.ClockOut{EmployeeID: "maria", Timestamp: t0.Add(-time.Hour)})
	require.NoError(t, err)

	assert.Equal(t, 45.0, next[1].PendingHours)
	assert.Nil(t, next[1].ClockInTime)
}

func TestReduce_IDDesconocidoDevuelveEntrada(t *testing.T) {
	prev := seed()
	now := time.Now()

	for _, a := range []employee.Action{
		employee.ClockIn{EmployeeID: "nadie", Timestamp: now},
		employee.ClockOut{EmployeeID: "nadie", Timestamp: now},
	} {
		next, err := employee.Reduce(prev, a)
		require.NoError(t, err, a.Type())
		assert.Equal(t, prev, next, a.Type())
		assert.True(t, sameBacking(prev, next), a.Type())
	}
}

func TestReduce_VariantesSinImplementar(t *testing.T) {
	prev := seed()
	actions := []employee.Action{
		employee.Add{Nombre: "Nuevo"},
		employee.Update{EmployeeID: "juan"},
		employee.Delete{EmployeeID: "juan"},
		employee.ToggleTask{EmployeeID: "juan", TaskID: 1},
		employee.AddTask{EmployeeID: "juan", TaskText: "Inventario"},
		employee.ApproveLoan{EmployeeID: "carlos"},
		employee.RejectLoan{EmployeeID: "carlos"},
	}
	for _, a := range actions {
		assert.False(t, a.Implemented(), a.Type())
		next, err := employee.Reduce(prev, a)
		assert.True(t, errors.Is(err, domain.ErrActionNotImplemented), a.Type())
		assert.True(t, sameBacking(prev, next), a.Type())
	}
}

package employee

import (
	"fmt"

	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
)

const msPerHour = 3_600_000

// Reduce aplica action sobre prev y devuelve la nueva colección.
//
// Nunca modifica prev. Si la acción no produce cambios (id inexistente, CLOCK_OUT
// sin turno abierto, variante sin implementar) devuelve prev tal cual.
// Las variantes sin implementar devuelven además domain.ErrActionNotImplemented.
func Reduce(prev []entity.Employee, action Action) ([]entity.Employee, error) {
	switch a := action.(type) {
	case ClockIn:
		return clockIn(prev, a), nil
	case ClockOut:
		return clockOut(prev, a), nil
	case Add, Update, Delete, ToggleTask, AddTask, ApproveLoan, RejectLoan:
		return prev, fmt.Errorf("%w: %s", domain.ErrActionNotImplemented, a.Type())
	default:
		return prev, fmt.Errorf("%w: acción de empleado desconocida %T", domain.ErrInvalidInput, action)
	}
}

func clockIn(prev []entity.Employee, a ClockIn) []entity.Employee {
	idx := indexOf(prev, a.EmployeeID)
	if idx < 0 {
		return prev
	}
	next := clone(prev)
	ts := a.Timestamp
	next[idx].ClockInTime = &ts
	next[idx].CapturedPhoto = a.Photo
	return next
}

func clockOut(prev []entity.Employee, a ClockOut) []entity.Employee {
	idx := indexOf(prev, a.EmployeeID)
	if idx < 0 || prev[idx].ClockInTime == nil {
		return prev
	}
	elapsedMs := a.Timestamp.Sub(*prev[idx].ClockInTime).Milliseconds()
	if elapsedMs < 0 {
		// reloj del cliente desfasado: se cierra el turno sin restar horas
		elapsedMs = 0
	}
	next := clone(prev)
	next[idx].PendingHours += float64(elapsedMs) / msPerHour
	next[idx].ClockInTime = nil
	return next
}

func indexOf(list []entity.Employee, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// clone copia el slice; los elementos que se modifican reciben valores nuevos,
// así que los slices internos (Tasks) pueden compartirse.
func clone(list []entity.Employee) []entity.Employee {
	out := make([]entity.Employee, len(list))
	copy(out, list)
	return out
}

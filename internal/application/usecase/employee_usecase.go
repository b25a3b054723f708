package usecase

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/employee"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
)

// EmployeeUseCase consulta de empleados y dispatch de acciones.
type EmployeeUseCase struct {
	store repository.EmployeeStore
	now   func() time.Time
}

// NewEmployeeUseCase construye el caso de uso. now nil = time.Now.
func NewEmployeeUseCase(store repository.EmployeeStore, now func() time.Time) *EmployeeUseCase {
	if now == nil {
		now = time.Now
	}
	return &EmployeeUseCase{store: store, now: now}
}

// List todos los empleados.
func (uc *EmployeeUseCase) List() []dto.EmployeeResponse {
	emps := uc.store.Employees()
	out := make([]dto.EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, ToEmployeeResponse(e))
	}
	return out
}

// GetByID obtiene un empleado.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	e, ok := uc.store.Employee(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	r := ToEmployeeResponse(e)
	return &r, nil
}

// Dispatch decodifica la acción etiquetada y la aplica al store.
func (uc *EmployeeUseCase) Dispatch(in dto.EmployeeActionRequest) (*dto.EmployeeActionResponse, error) {
	action, err := ActionFromRequest(in, uc.now())
	if err != nil {
		return nil, err
	}
	changed, err := uc.store.DispatchEmployee(action)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeActionResponse{Type: action.Type(), Changed: changed, Implementada: action.Implemented()}, nil
}

// ActionFromRequest construye la variante de employee.Action. Timestamp 0 = now.
func ActionFromRequest(in dto.EmployeeActionRequest, now time.Time) (employee.Action, error) {
	var p dto.EmployeeActionPayload
	if len(in.Payload) > 0 {
		if err := json.Unmarshal(in.Payload, &p); err != nil {
			return nil, fmt.Errorf("payload: %w", domain.ErrInvalidInput)
		}
	}
	ts := now
	if p.Timestamp > 0 {
		ts = time.UnixMilli(p.Timestamp)
	}

	switch in.Type {
	case employee.TypeClockIn:
		return employee.ClockIn{EmployeeID: p.EmpleadoID, Timestamp: ts, Photo: p.Photo}, nil
	case employee.TypeClockOut:
		return employee.ClockOut{EmployeeID: p.EmpleadoID, Timestamp: ts}, nil
	case employee.TypeAdd:
		return employee.Add{Nombre: p.Nombre, Puesto: p.Puesto}, nil
	case employee.TypeUpdate:
		return employee.Update{EmployeeID: p.EmpleadoID, Nombre: p.Nombre, Puesto: p.Puesto}, nil
	case employee.TypeDelete:
		return employee.Delete{EmployeeID: p.EmpleadoID}, nil
	case employee.TypeToggleTask:
		return employee.ToggleTask{EmployeeID: p.EmpleadoID, TaskID: p.TaskID}, nil
	case employee.TypeAddTask:
		return employee.AddTask{EmployeeID: p.EmpleadoID, TaskText: p.TaskText}, nil
	case employee.TypeApproveLoan:
		return employee.ApproveLoan{EmployeeID: p.EmpleadoID, WeeklyPayment: p.PagoSemanal}, nil
	case employee.TypeRejectLoan:
		return employee.RejectLoan{EmployeeID: p.EmpleadoID}, nil
	}
	return nil, fmt.Errorf("tipo de acción %q: %w", in.Type, domain.ErrInvalidInput)
}

// ToEmployeeResponse convierte al DTO público (sin credenciales).
func ToEmployeeResponse(e entity.Employee) dto.EmployeeResponse {
	tasks := make([]dto.TaskResponse, 0, len(e.Tasks))
	for _, t := range e.Tasks {
		tasks = append(tasks, dto.TaskResponse{ID: t.ID, Texto: t.Text, Completada: t.Completed})
	}
	return dto.EmployeeResponse{
		ID:               e.ID,
		Nombre:           e.Nombre,
		Puesto:           e.Puesto,
		RFC:              e.RFC,
		NSS:              e.NSS,
		FechaIngreso:     e.FechaIngreso,
		SueldoBruto:      e.SueldoBruto,
		PeriodicidadPago: e.PeriodicidadPago,
		Usuario:          e.Usuario,
		HoraEntrada:      e.HoraEntrada,
		HoraSalida:       e.HoraSalida,
		HorasPendientes:  e.PendingHours,
		ClockInTime:      e.ClockInTime,
		Rating:           e.Rating,
		Tareas:           tasks,
		Prestamo: dto.LoanResponse{
			Activo:      e.Loan.Active,
			Monto:       e.Loan.Amount,
			PagoSemanal: e.Loan.WeeklyPayment,
		},
		SolicitudPrestamo: dto.LoanRequestResponse{
			Pendiente: e.LoanRequest.Pending,
			Monto:     e.LoanRequest.Amount,
			Mensaje:   e.LoanRequest.Message,
		},
	}
}

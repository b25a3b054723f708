// Package employee contiene el reducer puro de la colección de empleados.
package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de acción tal como viajan en POST /api/empleados/acciones.
const (
	TypeClockIn     = "CLOCK_IN"
	TypeClockOut    = "CLOCK_OUT"
	TypeAdd         = "ADD"
	TypeUpdate      = "UPDATE"
	TypeDelete      = "DELETE"
	TypeToggleTask  = "TOGGLE_TASK"
	TypeAddTask     = "ADD_TASK"
	TypeApproveLoan = "APPROVE_LOAN"
	TypeRejectLoan  = "REJECT_LOAN"
)

// Action es la unión cerrada de acciones sobre empleados. Solo los tipos de este
// paquete la implementan (método no exportado).
type Action interface {
	Type() string
	// Implemented es false para variantes reconocidas que aún no cambian el estado.
	Implemented() bool
	isAction()
}

// ClockIn abre turno y guarda la foto de entrada.
type ClockIn struct {
	EmployeeID string
	Timestamp  time.Time
	Photo      string
}

// ClockOut cierra turno y acumula las horas trabajadas.
type ClockOut struct {
	EmployeeID string
	Timestamp  time.Time
}

// Variantes reconocidas sin implementar. Cada una es un tipo propio para que
// implementarla sea un cambio visible en el switch de Reduce.

// Add alta de empleado.
type Add struct {
	Nombre string
	Puesto string
}

// Update edición de empleado.
type Update struct {
	EmployeeID string
	Nombre     string
	Puesto     string
}

// Delete baja de empleado.
type Delete struct {
	EmployeeID string
}

// ToggleTask marca o desmarca una tarea.
type ToggleTask struct {
	EmployeeID string
	TaskID     int
}

// AddTask agrega una tarea.
type AddTask struct {
	EmployeeID string
	TaskText   string
}

// ApproveLoan aprueba la solicitud de préstamo pendiente.
type ApproveLoan struct {
	EmployeeID    string
	WeeklyPayment decimal.Decimal
}

// RejectLoan rechaza la solicitud de préstamo pendiente.
type RejectLoan struct {
	EmployeeID string
}

func (ClockIn) Type() string     { return TypeClockIn }
func (ClockOut) Type() string    { return TypeClockOut }
func (Add) Type() string         { return TypeAdd }
func (Update) Type() string      { return TypeUpdate }
func (Delete) Type() string      { return TypeDelete }
func (ToggleTask) Type() string  { return TypeToggleTask }
func (AddTask) Type() string     { return TypeAddTask }
func (ApproveLoan) Type() string { return TypeApproveLoan }
func (RejectLoan) Type() string  { return TypeRejectLoan }

func (ClockIn) Implemented() bool     { return true }
func (ClockOut) Implemented() bool    { return true }
func (Add) Implemented() bool         { return false }
func (Update) Implemented() bool      { return false }
func (Delete) Implemented() bool      { return false }
func (ToggleTask) Implemented() bool  { return false }
func (AddTask) Implemented() bool     { return false }
func (ApproveLoan) Implemented() bool { return false }
func (RejectLoan) Implemented() bool  { return false }

func (ClockIn) isAction()     {}
func (ClockOut) isAction()    {}
func (Add) isAction()         {}
func (Update) isAction()      {}
func (Delete) isAction()      {}
func (ToggleTask) isAction()  {}
func (AddTask) isAction()     {}
func (ApproveLoan) isAction() {}
func (RejectLoan) isAction()  {}

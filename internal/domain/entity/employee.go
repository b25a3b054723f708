package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Periodicidad de pago.
const (
	PagoSemanal   = "Semanal"
	PagoQuincenal = "Quincenal"
)

// Calificación de desempeño (semáforo).
const (
	RatingGreen  = "green"
	RatingYellow = "yellow"
	RatingRed    = "red"
)

// Employee representa un empleado del negocio.
// ClockInTime es nil si y solo si no hay turno activo.
type Employee struct {
	ID               string
	Nombre           string
	Puesto           string
	RFC              string
	NSS              string
	FechaIngreso     string // YYYY-MM-DD
	SueldoBruto      decimal.Decimal
	PeriodicidadPago string
	Usuario          string
	PasswordHash     string
	HoraEntrada      string  // HH:MM
	HoraSalida       string  // HH:MM
	PendingHours     float64 // horas trabajadas pendientes de pago
	ClockInTime      *time.Time
	Tasks            []Task
	Rating           string
	Loan             Loan
	LoanRequest      LoanRequest
	CapturedPhoto    string // data URL JPEG de la última entrada
}

// Task tarea asignada a un empleado.
type Task struct {
	ID        int
	Text      string
	Completed bool
}

// Loan préstamo activo.
type Loan struct {
	Active        bool
	Amount        decimal.Decimal
	WeeklyPayment decimal.Decimal
}

// LoanRequest solicitud de adelanto pendiente de aprobación.
type LoanRequest struct {
	Pending bool
	Amount  decimal.Decimal
	Message string
}

// OnShift informa si el empleado tiene un turno abierto.
func (e Employee) OnShift() bool {
	return e.ClockInTime != nil
}

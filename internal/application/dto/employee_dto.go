package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeResponse empleado sin credenciales.
type EmployeeResponse struct {
	ID                string              `json:"id"`
	Nombre            string              `json:"nombre"`
	Puesto            string              `json:"puesto"`
	RFC               string              `json:"rfc"`
	NSS               string              `json:"nss"`
	FechaIngreso      string              `json:"fecha_ingreso"`
	SueldoBruto       decimal.Decimal     `json:"sueldo_bruto"`
	PeriodicidadPago  string              `json:"periodicidad_pago"`
	Usuario           string              `json:"usuario"`
	HoraEntrada       string              `json:"hora_entrada"`
	HoraSalida        string              `json:"hora_salida"`
	HorasPendientes   float64             `json:"horas_pendientes"`
	ClockInTime       *time.Time          `json:"clock_in_time"`
	Rating            string              `json:"rating"`
	Tareas            []TaskResponse      `json:"tareas"`
	Prestamo          LoanResponse        `json:"prestamo"`
	SolicitudPrestamo LoanRequestResponse `json:"solicitud_prestamo"`
}

// TaskResponse tarea asignada.
type TaskResponse struct {
	ID         int    `json:"id"`
	Texto      string `json:"texto"`
	Completada bool   `json:"completada"`
}

// LoanResponse préstamo activo.
type LoanResponse struct {
	Activo      bool            `json:"activo"`
	Monto       decimal.Decimal `json:"monto"`
	PagoSemanal decimal.Decimal `json:"pago_semanal"`
}

// LoanRequestResponse solicitud de adelanto.
type LoanRequestResponse struct {
	Pendiente bool            `json:"pendiente"`
	Monto     decimal.Decimal `json:"monto"`
	Mensaje   string          `json:"mensaje"`
}

// EmployeeActionRequest acción etiquetada para POST /api/empleados/acciones.
type EmployeeActionRequest struct {
	Type    string          `json:"type" validate:"required,oneof=CLOCK_IN CLOCK_OUT ADD UPDATE DELETE TOGGLE_TASK ADD_TASK APPROVE_LOAN REJECT_LOAN"`
	Payload json.RawMessage `json:"payload"`
}

// EmployeeActionPayload campos posibles del payload; cada acción usa los suyos.
type EmployeeActionPayload struct {
	EmpleadoID  string          `json:"empleadoId"`
	Timestamp   int64           `json:"timestamp"` // epoch ms; 0 = ahora
	Photo       string          `json:"photo"`
	Nombre      string          `json:"nombre"`
	Puesto      string          `json:"puesto"`
	TaskID      int             `json:"taskId"`
	TaskText    string          `json:"taskText"`
	PagoSemanal decimal.Decimal `json:"pagoSemanal"`
}

// EmployeeActionResponse resultado de un dispatch.
type EmployeeActionResponse struct {
	Type         string `json:"type"`
	Changed      bool   `json:"changed"`
	Implementada bool   `json:"implementada"`
}

package dto

import "time"

// CheckInResponse vista de check-in: "entrada" sin turno activo, "salida" con turno.
type CheckInResponse struct {
	Modo         string     `json:"modo"`
	EmpleadoID   string     `json:"empleado_id"`
	Nombre       string     `json:"nombre"`
	Ahora        time.Time  `json:"ahora"`
	Nota         string     `json:"nota,omitempty"`
	Entrada      *time.Time `json:"entrada,omitempty"`
	Horas        int        `json:"horas"`
	Minutos      int        `json:"minutos"`
	Transcurrido string     `json:"transcurrido,omitempty"` // "3h 25m"
	Foto         string     `json:"foto,omitempty"`
}

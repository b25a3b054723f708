package dto

import "time"

// SyncEntryResponse entrada del historial de sincronización.
type SyncEntryResponse struct {
	ID        string    `json:"id"`
	Fecha     time.Time `json:"fecha"`
	Tarea     string    `json:"tarea"`
	Estado    string    `json:"estado"`
	Registros int       `json:"registros"`
	UsuarioID string    `json:"usuario_id"`
	Detalles  string    `json:"detalles"`
}

// RecordSyncRequest body para registrar una sincronización.
type RecordSyncRequest struct {
	Tarea     string `json:"tarea" validate:"required,max=100"`
	Estado    string `json:"estado" validate:"required,oneof=completado fallido"`
	Registros int    `json:"registros" validate:"min=0"`
	Detalles  string `json:"detalles" validate:"max=500"`
}

package entity

import "time"

// Estados de sincronización.
const (
	SyncCompletado = "completado"
	SyncFallido    = "fallido"
)

// SyncEntry registro del historial de sincronización (más reciente primero).
type SyncEntry struct {
	ID        string
	Fecha     time.Time
	Task      string
	Status    string
	ItemCount int
	UserID    string
	Details   string
}

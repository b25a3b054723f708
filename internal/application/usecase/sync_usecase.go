package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
)

// SyncUseCase historial de sincronizaciones con sistemas externos.
type SyncUseCase struct {
	store repository.SyncStore
	now   func() time.Time
}

// NewSyncUseCase construye el caso de uso. now nil = time.Now.
func NewSyncUseCase(store repository.SyncStore, now func() time.Time) *SyncUseCase {
	if now == nil {
		now = time.Now
	}
	return &SyncUseCase{store: store, now: now}
}

// History historial, más reciente primero.
func (uc *SyncUseCase) History() []dto.SyncEntryResponse {
	h := uc.store.SyncHistory()
	out := make([]dto.SyncEntryResponse, 0, len(h))
	for _, e := range h {
		out = append(out, toSyncResponse(e))
	}
	return out
}

// Record antepone una entrada con id, fecha y usuario de la sesión.
func (uc *SyncUseCase) Record(userID string, in dto.RecordSyncRequest) dto.SyncEntryResponse {
	e := entity.SyncEntry{
		ID:        "sync-" + uuid.NewString(),
		Fecha:     uc.now(),
		Task:      in.Tarea,
		Status:    in.Estado,
		ItemCount: in.Registros,
		UserID:    userID,
		Details:   in.Detalles,
	}
	uc.store.AddSync(e)
	return toSyncResponse(e)
}

func toSyncResponse(e entity.SyncEntry) dto.SyncEntryResponse {
	return dto.SyncEntryResponse{
		ID:        e.ID,
		Fecha:     e.Fecha,
		Tarea:     e.Task,
		Estado:    e.Status,
		Registros: e.ItemCount,
		UsuarioID: e.UserID,
		Detalles:  e.Details,
	}
}

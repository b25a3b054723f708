// Package checkin registra entradas y salidas de turno de los empleados.
package checkin

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/nyx-os/internal/application/dto"
	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/employee"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

// Modos de la vista.
const (
	ModoEntrada = "entrada"
	ModoSalida  = "salida"
)

// CameraNote aviso de la vista de entrada: la foto es obligatoria.
const CameraNote = "Se requiere acceso a la cámara para registrar la entrada. Revisa los permisos en tu navegador."

const dataURLPrefix = "data:image/jpeg;base64,"

// View estado de check-in de un empleado en un instante.
type View struct {
	Mode     string
	Employee entity.Employee
	Now      time.Time
	ClockIn  *time.Time
	Hours    int
	Minutes  int
	Photo    string
}

// Elapsed "Xh Ym".
func (v View) Elapsed() string {
	return fmt.Sprintf("%dh %dm", v.Hours, v.Minutes)
}

// ViewAt deriva la vista de e en now.
func ViewAt(e entity.Employee, now time.Time) View {
	v := View{Mode: ModoEntrada, Employee: e, Now: now}
	if !e.OnShift() {
		return v
	}
	v.Mode = ModoSalida
	at := *e.ClockInTime
	v.ClockIn = &at
	v.Photo = e.CapturedPhoto
	elapsed := now.Sub(at).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}
	v.Hours = int(elapsed / 3_600_000)
	v.Minutes = int(elapsed % 3_600_000 / 60_000)
	return v
}

// Service casos de uso de check-in.
type Service struct {
	store  repository.EmployeeStore
	photos ports.PhotoMirror
	log    *logger.Logger
	now    func() time.Time
}

// NewService construye el servicio. now nil = time.Now.
func NewService(store repository.EmployeeStore, photos ports.PhotoMirror, log *logger.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, photos: photos, log: log.Component("checkin"), now: now}
}

// View vista actual del empleado.
func (s *Service) View(employeeID string) (View, error) {
	e, ok := s.store.Employee(employeeID)
	if !ok {
		return View{}, fmt.Errorf("empleado %s: %w", employeeID, domain.ErrNotFound)
	}
	return ViewAt(e, s.now()), nil
}

// ClockIn espeja la foto, la guarda como data URL y abre el turno.
func (s *Service) ClockIn(_ context.Context, employeeID string, photo []byte) (View, error) {
	if len(photo) == 0 {
		return View{}, domain.ErrCameraUnavailable
	}
	e, ok := s.store.Employee(employeeID)
	if !ok {
		return View{}, fmt.Errorf("empleado %s: %w", employeeID, domain.ErrNotFound)
	}
	if e.OnShift() {
		return ViewAt(e, s.now()), fmt.Errorf("turno ya abierto: %w", domain.ErrConflict)
	}

	mirrored, err := s.photos.MirrorJPEG(photo)
	if err != nil {
		s.log.Warn().Err(err).Str("empleado_id", employeeID).Msg("foto de entrada inválida")
		return View{}, fmt.Errorf("%w: %v", domain.ErrCameraUnavailable, err)
	}

	now := s.now()
	if _, err := s.store.DispatchEmployee(employee.ClockIn{
		EmployeeID: employeeID,
		Timestamp:  now,
		Photo:      dataURLPrefix + base64.StdEncoding.EncodeToString(mirrored),
	}); err != nil {
		return View{}, err
	}
	s.log.Info().Str("empleado_id", employeeID).Msg("entrada registrada")
	return s.View(employeeID)
}

// ClockOut cierra el turno. Sin turno abierto no cambia nada.
func (s *Service) ClockOut(_ context.Context, employeeID string) (View, error) {
	if _, ok := s.store.Employee(employeeID); !ok {
		return View{}, fmt.Errorf("empleado %s: %w", employeeID, domain.ErrNotFound)
	}
	changed, err := s.store.DispatchEmployee(employee.ClockOut{EmployeeID: employeeID, Timestamp: s.now()})
	if err != nil {
		return View{}, err
	}
	if changed {
		s.log.Info().Str("empleado_id", employeeID).Msg("salida registrada")
	}
	return s.View(employeeID)
}

// Tick llama fn cada interval con la hora actual hasta que ctx termine o fn falle.
func (s *Service) Tick(ctx context.Context, interval time.Duration, fn func(now time.Time) error) error {
	if err := fn(s.now()); err != nil {
		return err
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := fn(s.now()); err != nil {
				return err
			}
		}
	}
}

// DecodeDataURL extrae los bytes de una foto enviada como data URL base64.
func DecodeDataURL(s string) ([]byte, error) {
	i := strings.Index(s, ";base64,")
	if !strings.HasPrefix(s, "data:image/") || i < 0 {
		return nil, errors.New("data URL de imagen inválida")
	}
	return base64.StdEncoding.DecodeString(s[i+len(";base64,"):])
}

// ToResponse proyecta la vista para la API.
func ToResponse(v View) dto.CheckInResponse {
	r := dto.CheckInResponse{
		Modo:       v.Mode,
		EmpleadoID: v.Employee.ID,
		Nombre:     v.Employee.Nombre,
		Ahora:      v.Now,
	}
	if v.Mode == ModoEntrada {
		r.Nota = CameraNote
		return r
	}
	r.Entrada = v.ClockIn
	r.Horas = v.Hours
	r.Minutos = v.Minutes
	r.Transcurrido = v.Elapsed()
	r.Foto = v.Photo
	return r
}

// Package session mantiene el estado de aplicación de cada usuario conectado:
// su escritorio de tarjetas y los flujos de captura ligados a cada tarjeta.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/nyx-os/internal/application/expense"
	"github.com/jhoicas/nyx-os/internal/application/shell"
	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

// CaptureAppID app cuyas tarjetas llevan un flujo de captura de gastos.
const CaptureAppID = "gastos"

// Config parámetros de las sesiones.
type Config struct {
	AnimationDelay time.Duration
	Scheduler      shell.Scheduler // nil = time.AfterFunc
	NewCapture     func() *expense.Workflow
}

// Session estado de un usuario.
type Session struct {
	User  entity.User
	Cards *shell.CardManager

	// mu se toma antes que el de Cards; los hooks de Cards corren sin su lock.
	mu         sync.Mutex
	captures   map[string]*expense.Workflow
	newCapture func() *expense.Workflow
}

// Capture flujo de captura de la tarjeta; se crea al primer uso. La tarjeta debe
// estar abierta, ser de gastos y no estar cerrándose.
func (s *Session) Capture(cardID string) (*expense.Workflow, error) {
	card, ok := s.Cards.Card(cardID)
	if !ok {
		return nil, fmt.Errorf("tarjeta %s: %w", cardID, domain.ErrNotFound)
	}
	if card.AppID != CaptureAppID {
		return nil, fmt.Errorf("la tarjeta %s no es de gastos: %w", cardID, domain.ErrInvalidInput)
	}
	if card.Anim == shell.AnimExiting {
		return nil, fmt.Errorf("tarjeta %s cerrándose: %w", cardID, domain.ErrConflict)
	}

	return s.attach(card)
}

// attach crea o reutiliza el flujo de una tarjeta ya validada. La tarjeta se
// vuelve a buscar con s.mu tomado: release no puede correr entre esa búsqueda y
// el alta en captures, así que ningún flujo queda ligado a una tarjeta retirada.
func (s *Session) attach(card shell.Card) (*expense.Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Cards.Card(card.ID); !ok {
		return nil, fmt.Errorf("tarjeta %s: %w", card.ID, domain.ErrNotFound)
	}
	w, ok := s.captures[card.ID]
	if !ok {
		w = s.newCapture()
		s.captures[card.ID] = w
	}
	return w, nil
}

func (s *Session) release(card shell.Card) {
	s.mu.Lock()
	w, ok := s.captures[card.ID]
	delete(s.captures, card.ID)
	s.mu.Unlock()
	if ok {
		w.Close()
	}
}

// Manager sesiones por id de usuario.
type Manager struct {
	cfg Config
	log *logger.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager crea el gestor.
func NewManager(cfg Config, log *logger.Logger) *Manager {
	return &Manager{cfg: cfg, log: log.Component("session"), sessions: make(map[string]*Session)}
}

// Get devuelve la sesión del usuario, creándola si no existe.
func (m *Manager) Get(u entity.User) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[u.ID]; ok {
		return s
	}

	opts := []shell.Option{}
	if m.cfg.Scheduler != nil {
		opts = append(opts, shell.WithScheduler(m.cfg.Scheduler))
	}
	s := &Session{
		User:       u,
		Cards:      shell.NewCardManager(m.cfg.AnimationDelay, opts...),
		captures:   make(map[string]*expense.Workflow),
		newCapture: m.cfg.NewCapture,
	}
	s.Cards.OnRemoved(s.release)
	m.sessions[u.ID] = s
	m.log.Debug().Str("user_id", u.ID).Str("role", u.Role).Msg("sesión creada")
	return s
}

// Lookup devuelve la sesión sin crearla.
func (m *Manager) Lookup(userID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	return s, ok
}

// End termina la sesión: cierra tarjetas y capturas.
func (m *Manager) End(userID string) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()
	if ok {
		s.Cards.Shutdown()
	}
}

// Shutdown termina todas las sesiones.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()
	for _, s := range all {
		s.Cards.Shutdown()
	}
}

// CaptureFor implementa la búsqueda de flujo usada por la vista de gastos.
func (m *Manager) CaptureFor(userID, cardID string) (*expense.Workflow, error) {
	s, ok := m.Lookup(userID)
	if !ok {
		return nil, fmt.Errorf("sesión %s: %w", userID, domain.ErrNotFound)
	}
	return s.Capture(cardID)
}

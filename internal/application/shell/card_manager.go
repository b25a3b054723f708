// Package shell modela el escritorio de una sesión: tarjetas abiertas con su
// ciclo de animación, el dock por rol y la resolución de app id a vista.
package shell

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Anim estado de animación de una tarjeta.
type Anim string

// Ciclo de vida: entering -> "" (estable) -> exiting -> eliminada.
const (
	AnimEntering Anim = "entering"
	AnimSteady   Anim = ""
	AnimExiting  Anim = "exiting"
)

// DefaultAnimationDelay duración de las animaciones de entrada y salida.
const DefaultAnimationDelay = 500 * time.Millisecond

// Card instancia abierta de una app.
type Card struct {
	ID    string
	AppID string
	Title string
	Anim  Anim
}

type cardEntry struct {
	card  Card
	timer Timer // transición pendiente; nil en estado estable
}

// CardManager tarjetas abiertas de una sesión. El orden de inserción es el
// orden z: la última tarjeta es la del frente.
type CardManager struct {
	mu    sync.Mutex
	delay time.Duration
	sched Scheduler
	now   func() time.Time
	seq   uint64
	cards []*cardEntry
	hooks []func(Card)
}

// Option configura el CardManager.
type Option func(*CardManager)

// WithScheduler reemplaza el scheduler (por defecto time.AfterFunc).
func WithScheduler(s Scheduler) Option {
	return func(m *CardManager) { m.sched = s }
}

// WithClock reemplaza time.Now para la generación de ids.
func WithClock(now func() time.Time) Option {
	return func(m *CardManager) { m.now = now }
}

// NewCardManager crea un gestor vacío.
func NewCardManager(delay time.Duration, opts ...Option) *CardManager {
	m := &CardManager{
		delay: delay,
		sched: RealScheduler{},
		now:   time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Open abre una tarjeta nueva al frente en estado entering. Se permiten varias
// tarjetas de la misma app.
func (m *CardManager) Open(appID string) Card {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	id := fmt.Sprintf("%s-%d-%d", appID, m.now().UnixMilli(), m.seq)
	e := &cardEntry{card: Card{ID: id, AppID: appID, Title: Title(appID), Anim: AnimEntering}}
	e.timer = m.sched.AfterFunc(m.delay, func() { m.settle(id) })
	m.cards = append(m.cards, e)
	return e.card
}

// Close pasa la tarjeta a exiting y programa su eliminación. Devuelve false si
// la tarjeta no existe o ya está cerrándose.
func (m *CardManager) Close(cardID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeLocked(cardID)
}

// Back cierra la tarjeta solo si es la del frente.
func (m *CardManager) Back(cardID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.cards)
	if n == 0 || m.cards[n-1].card.ID != cardID {
		return false
	}
	return m.closeLocked(cardID)
}

func (m *CardManager) closeLocked(cardID string) bool {
	e := m.find(cardID)
	if e == nil || e.card.Anim == AnimExiting {
		return false
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	e.card.Anim = AnimExiting
	id := e.card.ID
	e.timer = m.sched.AfterFunc(m.delay, func() { m.remove(id) })
	return true
}

func (m *CardManager) settle(cardID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.find(cardID)
	if e == nil || e.card.Anim != AnimEntering {
		return
	}
	e.card.Anim = AnimSteady
	e.timer = nil
}

func (m *CardManager) remove(cardID string) {
	m.mu.Lock()
	i := m.index(cardID)
	if i < 0 || m.cards[i].card.Anim != AnimExiting {
		m.mu.Unlock()
		return
	}
	card := m.cards[i].card
	m.cards = slices.Delete(m.cards, i, i+1)
	hooks := slices.Clone(m.hooks)
	m.mu.Unlock()

	for _, h := range hooks {
		h(card)
	}
}

// Cards snapshot ordenado (fondo primero).
func (m *CardManager) Cards() []Card {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Card, len(m.cards))
	for i, e := range m.cards {
		out[i] = e.card
	}
	return out
}

// Card busca una tarjeta abierta.
func (m *CardManager) Card(cardID string) (Card, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e := m.find(cardID); e != nil {
		return e.card, true
	}
	return Card{}, false
}

// OnRemoved registra un callback que se invoca cuando una tarjeta sale del escritorio.
func (m *CardManager) OnRemoved(fn func(Card)) {
	m.mu.Lock()
	m.hooks = append(m.hooks, fn)
	m.mu.Unlock()
}

// Shutdown cancela todas las transiciones y retira todas las tarjetas.
func (m *CardManager) Shutdown() {
	m.mu.Lock()
	removed := make([]Card, 0, len(m.cards))
	for _, e := range m.cards {
		if e.timer != nil {
			e.timer.Stop()
		}
		removed = append(removed, e.card)
	}
	m.cards = nil
	hooks := slices.Clone(m.hooks)
	m.mu.Unlock()

	for _, c := range removed {
		for _, h := range hooks {
			h(c)
		}
	}
}

func (m *CardManager) find(cardID string) *cardEntry {
	if i := m.index(cardID); i >= 0 {
		return m.cards[i]
	}
	return nil
}

func (m *CardManager) index(cardID string) int {
	return slices.IndexFunc(m.cards, func(e *cardEntry) bool { return e.card.ID == cardID })
}

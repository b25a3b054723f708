// Package memory implementa el Domain Store en memoria del proceso.
// No hay persistencia: al reiniciar se vuelve a los datos sembrados.
package memory

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/nyx-os/internal/domain"
	"github.com/jhoicas/nyx-os/internal/domain/employee"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/inventory"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

var _ repository.Store = (*Store)(nil)

// Store dueño exclusivo de todas las colecciones de negocio.
// Cada colección tiene su propio candado; los reducers se aplican bajo el candado
// de escritura, uno a la vez.
type Store struct {
	log *logger.Logger
	now func() time.Time

	empMu     sync.RWMutex
	employees []entity.Employee

	invMu     sync.RWMutex
	inventory []entity.InventoryItem

	expMu    sync.RWMutex
	expenses []entity.Expense

	syncMu sync.RWMutex
	syncs  []entity.SyncEntry

	// inmutables tras la siembra
	dishes    []entity.Dish
	suppliers []entity.Supplier
	users     map[string]*entity.User
	byUsuario map[string]*entity.User
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore crea un store con los datos de data.
func NewStore(log *logger.Logger, data SeedData, opts ...Option) *Store {
	s := &Store{
		log:       log.Component("store"),
		now:       time.Now,
		employees: slices.Clone(data.Employees),
		inventory: slices.Clone(data.Inventory),
		expenses:  slices.Clone(data.Expenses),
		syncs:     slices.Clone(data.SyncHistory),
		dishes:    slices.Clone(data.Dishes),
		suppliers: slices.Clone(data.Suppliers),
		users:     make(map[string]*entity.User, len(data.Users)),
		byUsuario: make(map[string]*entity.User, len(data.Users)),
	}
	for _, o := range opts {
		o(s)
	}
	for i := range data.Users {
		u := data.Users[i]
		s.users[u.ID] = &u
		s.byUsuario[u.Usuario] = &u
	}
	return s
}

// ── Empleados ─────────────────────────────────────────────────────────────────

// Employees snapshot de empleados.
func (s *Store) Employees() []entity.Employee {
	s.empMu.RLock()
	defer s.empMu.RUnlock()
	return slices.Clone(s.employees)
}

// Employee busca un empleado por id.
func (s *Store) Employee(id string) (entity.Employee, bool) {
	s.empMu.RLock()
	defer s.empMu.RUnlock()
	for _, e := range s.employees {
		if e.ID == id {
			return e, true
		}
	}
	return entity.Employee{}, false
}

// DispatchEmployee aplica el reducer de empleados.
func (s *Store) DispatchEmployee(action employee.Action) (bool, error) {
	s.empMu.Lock()
	defer s.empMu.Unlock()

	next, err := employee.Reduce(s.employees, action)
	if errors.Is(err, domain.ErrActionNotImplemented) {
		s.log.Warn().Str("action", action.Type()).Msg("acción de empleado no implementada; estado sin cambios")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	changed := !sameSlice(s.employees, next)
	s.employees = next
	s.log.Debug().Str("action", action.Type()).Bool("changed", changed).Msg("acción de empleado aplicada")
	return changed, nil
}

// ── Inventario ────────────────────────────────────────────────────────────────

// Inventory snapshot del inventario.
func (s *Store) Inventory() []entity.InventoryItem {
	s.invMu.RLock()
	defer s.invMu.RUnlock()
	return slices.Clone(s.inventory)
}

// InventoryItem busca un artículo por id.
func (s *Store) InventoryItem(id string) (entity.InventoryItem, bool) {
	s.invMu.RLock()
	defer s.invMu.RUnlock()
	return inventory.Find(s.inventory, id)
}

// DispatchInventory aplica el reducer de inventario. Si UpdateCost no trae fecha
// se estampa con el reloj del store.
func (s *Store) DispatchInventory(action inventory.Action) (bool, error) {
	if uc, ok := action.(inventory.UpdateCost); ok && uc.At.IsZero() {
		uc.At = s.now()
		action = uc
	}

	s.invMu.Lock()
	defer s.invMu.Unlock()

	next, err := inventory.Reduce(s.inventory, action)
	if err != nil {
		return false, err
	}
	changed := !sameSlice(s.inventory, next)
	s.inventory = next
	s.log.Debug().Str("action", action.Type()).Bool("changed", changed).Msg("acción de inventario aplicada")
	return changed, nil
}

// ── Gastos ────────────────────────────────────────────────────────────────────

// Expenses snapshot de gastos en orden de registro.
func (s *Store) Expenses() []entity.Expense {
	s.expMu.RLock()
	defer s.expMu.RUnlock()
	return slices.Clone(s.expenses)
}

// Expense busca un gasto por id.
func (s *Store) Expense(id string) (entity.Expense, bool) {
	s.expMu.RLock()
	defer s.expMu.RUnlock()
	for _, e := range s.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return entity.Expense{}, false
}

// AddExpense agrega un gasto al final.
func (s *Store) AddExpense(e entity.Expense) {
	e.Items = slices.Clone(e.Items)
	s.expMu.Lock()
	s.expenses = append(s.expenses, e)
	s.expMu.Unlock()
	s.log.Info().Str("gasto_id", e.ID).Str("total", e.Total.StringFixed(2)).Int("items", len(e.Items)).Msg("gasto registrado")
}

// ── Lectura ───────────────────────────────────────────────────────────────────

// Dishes snapshot de platillos.
func (s *Store) Dishes() []entity.Dish { return slices.Clone(s.dishes) }

// Suppliers snapshot de proveedores.
func (s *Store) Suppliers() []entity.Supplier { return slices.Clone(s.suppliers) }

// ── Sincronización ────────────────────────────────────────────────────────────

// SyncHistory snapshot del historial, más reciente primero.
func (s *Store) SyncHistory() []entity.SyncEntry {
	s.syncMu.RLock()
	defer s.syncMu.RUnlock()
	return slices.Clone(s.syncs)
}

// AddSync antepone una entrada al historial.
func (s *Store) AddSync(e entity.SyncEntry) {
	s.syncMu.Lock()
	next := make([]entity.SyncEntry, 0, len(s.syncs)+1)
	next = append(next, e)
	s.syncs = append(next, s.syncs...)
	s.syncMu.Unlock()
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// GetByID obtiene un usuario por id; (nil, nil) si no existe.
func (s *Store) GetByID(id string) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// FindByUsuario obtiene un usuario por nombre de acceso; (nil, nil) si no existe.
func (s *Store) FindByUsuario(usuario string) (*entity.User, error) {
	u, ok := s.byUsuario[usuario]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// sameSlice informa si a y b son la misma colección (mismo arreglo y longitud).
func sameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

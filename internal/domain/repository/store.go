package repository

import (
	"github.com/jhoicas/nyx-os/internal/domain/employee"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/inventory"
)

// Puertos del Domain Store (DIP). Cada colección expone un snapshot inmutable
// y, donde aplica, un dispatch que serializa la aplicación de su reducer.
// Los snapshots son copias: modificarlos no altera el store.

// EmployeeStore colección de empleados.
type EmployeeStore interface {
	Employees() []entity.Employee
	Employee(id string) (entity.Employee, bool)
	// DispatchEmployee aplica la acción. Devuelve true si el estado cambió.
	// Las acciones sin implementar no son error: se registran y devuelven false.
	DispatchEmployee(action employee.Action) (bool, error)
}

// InventoryStore colección de inventario.
type InventoryStore interface {
	Inventory() []entity.InventoryItem
	InventoryItem(id string) (entity.InventoryItem, bool)
	DispatchInventory(action inventory.Action) (bool, error)
}

// ExpenseStore gastos registrados (solo se agregan).
type ExpenseStore interface {
	Expenses() []entity.Expense
	Expense(id string) (entity.Expense, bool)
	AddExpense(e entity.Expense)
}

// DishStore platillos del menú (solo lectura).
type DishStore interface {
	Dishes() []entity.Dish
}

// SupplierStore proveedores (solo lectura).
type SupplierStore interface {
	Suppliers() []entity.Supplier
}

// SyncStore historial de sincronización, más reciente primero.
type SyncStore interface {
	SyncHistory() []entity.SyncEntry
	AddSync(e entity.SyncEntry)
}

// Store agrega todas las colecciones; lo implementa memory.Store.
type Store interface {
	EmployeeStore
	InventoryStore
	ExpenseStore
	DishStore
	SupplierStore
	SyncStore
	UserRepository
}

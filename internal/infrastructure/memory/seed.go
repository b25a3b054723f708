package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nyx-os/internal/domain/entity"
)

// SeedData colecciones iniciales del store.
type SeedData struct {
	Employees   []entity.Employee
	Suppliers   []entity.Supplier
	Inventory   []entity.InventoryItem
	Expenses    []entity.Expense
	Dishes      []entity.Dish
	SyncHistory []entity.SyncEntry
	Users       []entity.User
}

// SeedOptions contraseñas de usuarios no-empleado. Vacía = usuario no sembrado.
type SeedOptions struct {
	AdminPassword     string
	DeveloperPassword string
	BcryptCost        int // 0 = bcrypt.DefaultCost
}

type demoEmployee struct {
	entity.Employee
	password string
}

// DemoSeed datos de demostración del negocio (bar-restaurante en La Laguna).
func DemoSeed(opts SeedOptions) (SeedData, error) {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash := func(pass string) (string, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(pass), cost)
		if err != nil {
			return "", fmt.Errorf("seed: hashear contraseña: %w", err)
		}
		return string(h), nil
	}

	var data SeedData
	for _, d := range demoEmployees() {
		h, err := hash(d.password)
		if err != nil {
			return SeedData{}, err
		}
		e := d.Employee
		e.PasswordHash = h
		data.Employees = append(data.Employees, e)
		data.Users = append(data.Users, entity.User{ID: e.ID, Usuario: e.Usuario, PasswordHash: h, Role: entity.RoleEmpleado})
	}

	for _, u := range []struct{ id, pass, role string }{
		{"admin", opts.AdminPassword, entity.RoleAdmin},
		{"developer", opts.DeveloperPassword, entity.RoleDeveloper},
	} {
		if u.pass == "" {
			continue
		}
		h, err := hash(u.pass)
		if err != nil {
			return SeedData{}, err
		}
		data.Users = append(data.Users, entity.User{ID: u.id, Usuario: u.id, PasswordHash: h, Role: u.role})
	}

	data.Suppliers = []entity.Supplier{
		{ID: 1, Nombre: "Distribuidora de Vinos del Nazas", Contacto: "Juan Torres", Telefono: "871-555-0101", Categoria: "Bebidas"},
		{ID: 2, Nombre: "Carnes Finas La Laguna", Contacto: "Sofía Martínez", Telefono: "871-555-0102", Categoria: "Alimentos"},
	}

	data.Inventory = []entity.InventoryItem{
		{ID: "cerveza-victoria", Nombre: "Cerveza Victoria", Stock: decimal.NewFromInt(100), Categoria: "Bebidas", SupplierID: 1, UM: "pza", UnitCost: dec("18.50")},
		{ID: "limon", Nombre: "Limón", Stock: decimal.NewFromInt(20), Categoria: "Alimentos", SupplierID: 2, UM: "kg", UnitCost: dec("35.00")},
		{ID: "rib-eye", Nombre: "Rib Eye", Stock: decimal.NewFromInt(8), Categoria: "Alimentos", SupplierID: 2, UM: "kg", UnitCost: dec("450.00")},
		{ID: "aguacate", Nombre: "Aguacate", Stock: decimal.NewFromInt(15), Categoria: "Alimentos", SupplierID: 2, UM: "kg", UnitCost: dec("85.00")},
	}

	data.Dishes = []entity.Dish{
		{ID: "taco-carne", Nombre: "Taco de Rib Eye", PrecioVenta: decimal.NewFromInt(85), Ingredients: []entity.Ingredient{
			{InventoryID: "rib-eye", Cantidad: dec("0.150")},
		}},
		{ID: "guacamole", Nombre: "Guacamole", PrecioVenta: decimal.NewFromInt(120), Ingredients: []entity.Ingredient{
			{InventoryID: "aguacate", Cantidad: dec("0.300")},
			{InventoryID: "limon", Cantidad: dec("0.050")},
		}},
	}

	data.SyncHistory = []entity.SyncEntry{
		{ID: "sync-1", Fecha: time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC), Task: "Corte de Caja", Status: entity.SyncCompletado, ItemCount: 152, UserID: "admin", Details: "Se importaron 152 registros de ventas."},
		{ID: "sync-2", Fecha: time.Date(2024, 7, 19, 11, 30, 0, 0, time.UTC), Task: "Corte de Caja", Status: entity.SyncFallido, ItemCount: 0, UserID: "admin", Details: "Error de formato en el archivo CSV en la línea 42."},
	}

	return data, nil
}

func demoEmployees() []demoEmployee {
	return []demoEmployee{
		{password: "4004", Employee: entity.Employee{
			ID: "juan", Nombre: "Juan Pérez García", Puesto: "Bartender", RFC: "PEGA900101ABC", NSS: "12345678901",
			FechaIngreso: "2024-03-15", SueldoBruto: decimal.NewFromInt(2000), PeriodicidadPago: entity.PagoSemanal,
			Usuario: "juan.perez", HoraEntrada: "14:00", HoraSalida: "22:00",
			Tasks:  []entity.Task{{ID: 1, Text: "Limpiar barra principal"}},
			Rating: entity.RatingGreen,
		}},
		{password: "kraken2", Employee: entity.Employee{
			ID: "maria", Nombre: "María López Hernández", Puesto: "Mesera", RFC: "LOHM920510XYZ", NSS: "10987654321",
			FechaIngreso: "2023-11-01", SueldoBruto: decimal.NewFromInt(3750), PeriodicidadPago: entity.PagoQuincenal,
			Usuario: "maria.lopez", HoraEntrada: "13:00", HoraSalida: "21:00", PendingHours: 45,
			Rating: entity.RatingYellow,
			Loan:   entity.Loan{Active: true, Amount: decimal.NewFromInt(500), WeeklyPayment: decimal.NewFromInt(50)},
		}},
		{password: "kraken3", Employee: entity.Employee{
			ID: "carlos", Nombre: "Carlos Sánchez Ruiz", Puesto: "Cocinero", RFC: "SARC880320DEF", NSS: "23456789012",
			FechaIngreso: "2024-01-20", SueldoBruto: decimal.NewFromInt(2200), PeriodicidadPago: entity.PagoSemanal,
			Usuario: "carlos.sanchez", HoraEntrada: "12:00", HoraSalida: "20:00",
			Rating:      entity.RatingGreen,
			LoanRequest: entity.LoanRequest{Pending: true, Amount: decimal.NewFromInt(1000), Message: "Adelanto para una emergencia familiar."},
		}},
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

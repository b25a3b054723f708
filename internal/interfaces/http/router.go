package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nyx-os/internal/application/auth"
	"github.com/jhoicas/nyx-os/internal/application/checkin"
	"github.com/jhoicas/nyx-os/internal/application/expense"
	"github.com/jhoicas/nyx-os/internal/application/inventory"
	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/internal/application/session"
	"github.com/jhoicas/nyx-os/internal/application/shell"
	"github.com/jhoicas/nyx-os/internal/application/usecase"
	"github.com/jhoicas/nyx-os/internal/domain/entity"
	"github.com/jhoicas/nyx-os/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	OCR        ports.TicketExtractor
	OCRLimiter *RateLimiter // nil = sin límite
	Sessions   *session.Manager
	Registry   *shell.Registry
	Items      repository.InventoryStore
	Employees  *usecase.EmployeeUseCase
	CheckIn    *checkin.Service
	Inventory  *inventory.UseCase
	Expenses   *expense.ReportUseCase
	Menu       *usecase.MenuUseCase
	Sync       *usecase.SyncUseCase
	JWTSecret  string
	Life       context.Context // vida del servidor; corta los streams SSE al apagar
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authed := AuthMiddleware(deps.JWTSecret)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/me", authed, authHandler.Me)
	api.Post("/auth/logout", authed, authHandler.Logout)

	// OCR (público, limitado por IP)
	ocrHandler := NewOCRHandler(deps.OCR)
	if deps.OCRLimiter != nil {
		api.Post("/ocr", deps.OCRLimiter.Handler(), ocrHandler.Extract)
	} else {
		api.Post("/ocr", ocrHandler.Extract)
	}

	// Escritorio y captura de gastos
	shellHandler := NewShellHandler(deps.AuthUC, deps.Sessions, deps.Registry, deps.Items)
	sh := api.Group("/shell", authed)
	sh.Get("/", shellHandler.Get)
	sh.Post("/cards", shellHandler.Open)
	sh.Get("/cards/:id", shellHandler.View)
	sh.Delete("/cards/:id", shellHandler.Close)
	sh.Post("/cards/:id/back", shellHandler.Back)
	capture := sh.Group("/cards/:id/gastos", RequireApp("gastos"))
	capture.Post("/imagen", shellHandler.SelectImage)
	capture.Get("/inventario", shellHandler.SearchInventory)
	capture.Post("/items/:item/vincular", shellHandler.Link)
	capture.Post("/guardar", shellHandler.Save)

	// Empleados (admin)
	employeeHandler := NewEmployeeHandler(deps.Employees)
	emp := api.Group("/empleados", authed, RequireApp("empleados"))
	emp.Get("/", employeeHandler.List)
	emp.Post("/acciones", employeeHandler.Dispatch)
	emp.Get("/:id", employeeHandler.GetByID)

	// Check-in (empleado de la sesión)
	checkInHandler := NewCheckInHandler(deps.CheckIn, deps.Life)
	ci := api.Group("/checkin", authed, RequireRole(entity.RoleEmpleado))
	ci.Get("/", checkInHandler.View)
	ci.Post("/entrada", checkInHandler.ClockIn)
	ci.Post("/salida", checkInHandler.ClockOut)
	ci.Get("/reloj", checkInHandler.Clock)

	// Inventario y proveedores
	inventoryHandler := NewInventoryHandler(deps.Inventory)
	inv := api.Group("/inventario", authed, RequireApp("inventario"))
	inv.Get("/", inventoryHandler.Valuation)
	inv.Get("/export.xlsx", inventoryHandler.Export)
	inv.Get("/:id/historial", inventoryHandler.History)
	api.Get("/proveedores", authed, RequireApp("inventario"), inventoryHandler.Suppliers)

	// Gastos registrados
	expenseHandler := NewExpenseHandler(deps.Expenses)
	gastos := api.Group("/gastos", authed, RequireApp("gastos"))
	gastos.Get("/", expenseHandler.List)
	gastos.Get("/export.xlsx", expenseHandler.Export)
	gastos.Get("/:id", expenseHandler.GetByID)
	gastos.Get("/:id/pdf", expenseHandler.PDF)

	// Menú
	menuHandler := NewMenuHandler(deps.Menu)
	api.Get("/menu", authed, RequireApp("menu"), menuHandler.Metrics)

	// Sincronización (developer)
	syncHandler := NewSyncHandler(deps.Sync)
	sync := api.Group("/sync", authed, RequireApp("sincronizacion"))
	sync.Get("/", syncHandler.History)
	sync.Post("/", syncHandler.Record)
}

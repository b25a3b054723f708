package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/nyx-os/docs"
	"github.com/jhoicas/nyx-os/internal/application/apps"
	"github.com/jhoicas/nyx-os/internal/application/auth"
	"github.com/jhoicas/nyx-os/internal/application/checkin"
	"github.com/jhoicas/nyx-os/internal/application/expense"
	"github.com/jhoicas/nyx-os/internal/application/inventory"
	"github.com/jhoicas/nyx-os/internal/application/ports"
	"github.com/jhoicas/nyx-os/internal/application/session"
	"github.com/jhoicas/nyx-os/internal/application/shell"
	"github.com/jhoicas/nyx-os/internal/application/usecase"
	infraai "github.com/jhoicas/nyx-os/internal/infrastructure/ai"
	"github.com/jhoicas/nyx-os/internal/infrastructure/memory"
	"github.com/jhoicas/nyx-os/internal/infrastructure/metrics"
	infraocr "github.com/jhoicas/nyx-os/internal/infrastructure/ocr"
	infrapdf "github.com/jhoicas/nyx-os/internal/infrastructure/pdf"
	"github.com/jhoicas/nyx-os/internal/infrastructure/photo"
	"github.com/jhoicas/nyx-os/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/nyx-os/internal/interfaces/http"
	"github.com/jhoicas/nyx-os/pkg/config"
	"github.com/jhoicas/nyx-os/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("ai_provider", cfg.AI.Provider).
		Str("ocr_mode", cfg.OCR.Mode).
		Msg("iniciando aplicación")

	life, stopLife := context.WithCancel(context.Background())
	defer stopLife()

	seed, err := memory.DemoSeed(memory.SeedOptions{
		AdminPassword:     cfg.Seed.AdminPassword,
		DeveloperPassword: cfg.Seed.DeveloperPassword,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar datos iniciales")
	}
	if cfg.Seed.AdminPassword == "" || cfg.Seed.DeveloperPassword == "" {
		log.Warn().Msg("ADMIN_PASSWORD o DEVELOPER_PASSWORD vacío: ese usuario no se siembra")
	}
	store := memory.NewStore(log, seed)
	m := metrics.New()

	// Proveedor de IA del endpoint /api/ocr. Sin API key el endpoint responde 500.
	provider, err := infraai.NewFromConfig(life, cfg.AI)
	if err != nil {
		log.Warn().Err(err).Msg("proveedor de IA no disponible")
	}
	ocrUC := usecase.NewOCRUseCase(provider, m, log, cfg.OCR.Timeout)

	// Extractor del flujo de captura: en proceso o contra otro servidor Nyx.
	var extractor ports.TicketExtractor = ocrUC
	source := "direct"
	if cfg.OCR.Mode == "remote" {
		extractor = infraocr.NewRemoteOCRClient(cfg.OCR.RemoteURL, &http.Client{Timeout: cfg.OCR.Timeout})
		source = "remote"
	}

	sessions := session.NewManager(session.Config{
		AnimationDelay: cfg.Shell.AnimationDelay,
		Scheduler:      shell.RealScheduler{},
		NewCapture: func() *expense.Workflow {
			return expense.NewWorkflow(expense.Deps{
				Extractor: extractor,
				Inventory: store,
				Expenses:  store,
				Observer:  m,
				Log:       log.Component("gastos"),
				Timeout:   cfg.OCR.Timeout,
				Source:    source,
			})
		},
	}, log)

	exporter := xlsx.NewExporter()
	inventoryUC := inventory.NewUseCase(store, store, exporter)
	menuUC := usecase.NewMenuUseCase(store, store)
	syncUC := usecase.NewSyncUseCase(store, nil)
	checkInSvc := checkin.NewService(store, photo.NewMirror(), log, nil)
	reportUC := expense.NewReportUseCase(store, store, infrapdf.NewMarotoPDFGenerator(), exporter)
	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	registry := apps.NewRegistry(apps.Deps{
		Captures:  sessions,
		Inventory: inventoryUC,
		Items:     store,
		Menu:      menuUC,
		Sync:      syncUC,
		CheckIn:   checkInSvc,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    12 * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.OCR.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
		Immutable:    true,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.MetricsMiddleware(m))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerPath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     cfg.HTTP.SwaggerPath,
			Title:    "Nyx OS API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		OCR:        ocrUC,
		OCRLimiter: httpRouter.NewRateLimiter(cfg.OCR.RatePerMin, 5, log),
		Sessions:   sessions,
		Registry:   registry,
		Items:      store,
		Employees:  usecase.NewEmployeeUseCase(store, nil),
		CheckIn:    checkInSvc,
		Inventory:  inventoryUC,
		Expenses:   reportUC,
		Menu:       menuUC,
		Sync:       syncUC,
		JWTSecret:  cfg.JWT.Secret,
		Life:       life,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Cortar streams SSE y capturas en curso antes de esperar conexiones.
	stopLife()
	sessions.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

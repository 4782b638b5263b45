package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/invorya/stockledger/internal/application/alerts"
	"github.com/invorya/stockledger/internal/application/inventory"
	"github.com/invorya/stockledger/internal/application/reports"
	"github.com/invorya/stockledger/internal/application/usecase"
	"github.com/invorya/stockledger/internal/domain/repository"
	"github.com/invorya/stockledger/internal/infrastructure/memory"
	"github.com/invorya/stockledger/internal/infrastructure/postgres"
	httpRouter "github.com/invorya/stockledger/internal/interfaces/http"
	"github.com/invorya/stockledger/pkg/config"
	"github.com/invorya/stockledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		itemRepo   repository.ItemRepository
		movRepo    repository.MovementRepository
		alertRepo  repository.AlertRepository
		reportRepo repository.ReportRepository
		txRunner   inventory.TxRunner
	)
	switch cfg.App.Storage {
	case "memory":
		// Adaptador en memoria: desarrollo y demos sin PostgreSQL
		store := memory.NewStore()
		itemRepo = memory.NewItemRepository(store)
		movRepo = memory.NewMovementRepository(store)
		alertRepo = memory.NewAlertRepository(store)
		reportRepo = memory.NewReportRepository(store)
		txRunner = memory.NewTxRunner(store)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		itemRepo = postgres.NewItemRepository(pool)
		movRepo = postgres.NewMovementRepository(pool)
		alertRepo = postgres.NewAlertRepository(pool)
		reportRepo = postgres.NewReportRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	itemUC := usecase.NewItemUseCase(itemRepo)
	alertUC := alerts.NewAlertUseCase(alertRepo, log)
	ledgerUC := inventory.NewLedgerUseCase(txRunner, movRepo, alertUC, log)
	reportUC := reports.NewReportUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stockledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:   itemUC,
		LedgerUC: ledgerUC,
		AlertUC:  alertUC,
		ReportUC: reportUC,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}

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
	"github.com/jhoicas/hogar-api/internal/application/category"
	"github.com/jhoicas/hogar-api/internal/application/inventory"
	"github.com/jhoicas/hogar-api/internal/application/records"
	"github.com/jhoicas/hogar-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/hogar-api/internal/interfaces/http"
	"github.com/jhoicas/hogar-api/pkg/config"
	"github.com/jhoicas/hogar-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	cabinetRepo := postgres.NewCabinetRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	recordRepo := postgres.NewRecordRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	itemUC := inventory.NewItemUseCase(txRunner, itemRepo, cabinetRepo, categoryRepo, ledgerRepo)
	cabinetUC := inventory.NewCabinetUseCase(txRunner, cabinetRepo)
	transferUC := inventory.NewTransferUseCase(txRunner, itemRepo, cabinetRepo)
	ledgerUC := inventory.NewLedgerUseCase(ledgerRepo, itemRepo)
	categoryUC := category.NewUseCase(txRunner, categoryRepo, cfg.Inventory.MaxCategoryLevel)
	recordUC := records.NewUseCase(recordRepo)

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
		Title:    "Hogar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:     itemUC,
		CabinetUC:  cabinetUC,
		TransferUC: transferUC,
		LedgerUC:   ledgerUC,
		CategoryUC: categoryUC,
		RecordUC:   recordUC,
		JWTSecret:  cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}

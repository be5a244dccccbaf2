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
	"github.com/jhoicas/CajaDiaria-api/internal/application/auth"
	"github.com/jhoicas/CajaDiaria-api/internal/application/events"
	"github.com/jhoicas/CajaDiaria-api/internal/application/report"
	"github.com/jhoicas/CajaDiaria-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/CajaDiaria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/CajaDiaria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/CajaDiaria-api/internal/interfaces/http"
	"github.com/jhoicas/CajaDiaria-api/pkg/config"
	"github.com/jhoicas/CajaDiaria-api/pkg/logger"
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hub := events.NewHub()

	authUC := auth.NewAuthUseCase(userRepo, profileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	profileUC := usecase.NewProfileUseCase(profileRepo, hub)
	entryUC := usecase.NewEntryUseCase(entryRepo, profileRepo, hub)
	adminUC := usecase.NewAdminUseCase(userRepo, profileRepo, entryRepo, txRunner, hub, usecase.ResetPhrases{
		DataOnly: cfg.Reset.DataPhrase,
		Complete: cfg.Reset.CompletePhrase,
	}, log)
	statementUC := report.NewStatementUseCase(entryRepo, profileRepo, infrapdf.NewMarotoStatementGenerator())

	// WriteTimeout queda en cero: /api/events mantiene la respuesta abierta.
	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Caja Diaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProfileUC: profileUC,
		EntryUC:   entryUC,
		AdminUC:   adminUC,
		ReportUC:  statementUC,
		Hub:       hub,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
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

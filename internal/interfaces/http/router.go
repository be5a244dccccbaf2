package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CajaDiaria-api/internal/application/auth"
	"github.com/jhoicas/CajaDiaria-api/internal/application/events"
	"github.com/jhoicas/CajaDiaria-api/internal/application/report"
	"github.com/jhoicas/CajaDiaria-api/internal/application/usecase"
	"github.com/jhoicas/CajaDiaria-api/pkg/jwt"
	"github.com/jhoicas/CajaDiaria-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProfileUC *usecase.ProfileUseCase
	EntryUC   *usecase.EntryUseCase
	AdminUC   *usecase.AdminUseCase
	ReportUC  *report.StatementUseCase
	Hub       *events.Hub
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Perfil (protegido)
	profileHandler := NewProfileHandler(deps.ProfileUC, deps.AuthUC)
	protected.Post("/profile", profileHandler.Create)
	protected.Get("/profile", profileHandler.Get)

	// Movimientos diarios (protegido)
	entries := protected.Group("/entries")
	entryHandler := NewEntryHandler(deps.EntryUC)
	entries.Put("/", entryHandler.Upsert)
	entries.Get("/", entryHandler.List)
	entries.Get("/advances", entryHandler.Advances)
	entries.Get("/summary", entryHandler.Summary)
	entries.Delete("/:id", entryHandler.Delete)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/monthly", reportHandler.Monthly)

	// Stream de cambios (protegido)
	eventsHandler := NewEventsHandler(deps.Hub, deps.ProfileUC, deps.Log)
	protected.Get("/events", eventsHandler.Stream)

	// Administración: RequireRole filtra por el rol del token; cada caso de uso
	// vuelve a verificar el flag de admin contra la base.
	admin := protected.Group("/admin", RequireRole(jwt.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id/username", adminHandler.UpdateUsername)
	admin.Put("/users/:id/deductions", adminHandler.UpdateDeductions)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/summary", adminHandler.Summary)
	admin.Post("/reset/data", adminHandler.ResetData)
	admin.Post("/reset/complete", adminHandler.ResetComplete)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-portal/internal/api/http/handlers"
	"github.com/spec-kit/staff-portal/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health            *handlers.HealthHandler
	Auth              *handlers.AuthHandler
	Notes             *handlers.NotesHandler
	Admin             *handlers.AdminHandler
	Forms             *handlers.FormsHandler
	SessionMiddleware *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/login", cfg.Auth.Login)
	api.Post("/logout", cfg.Auth.Logout)

	// Guards are attached per route: Group("", mw) would mount the
	// middleware on the whole /api prefix and shadow the admin routes.
	api.Get("/me", cfg.SessionMiddleware.RequireStaff, cfg.Auth.Me)
	api.Get("/notes", cfg.SessionMiddleware.RequireStaff, cfg.Notes.Get)
	api.Post("/notes", cfg.SessionMiddleware.RequireStaff, cfg.Notes.Save)

	admin := api.Group("/admin")
	admin.Post("/login", cfg.Admin.Login)
	admin.Post("/logout", cfg.SessionMiddleware.RequireAdmin, cfg.Admin.Logout)
	admin.Post("/create-user", cfg.SessionMiddleware.RequireAdmin, cfg.Admin.CreateUser)

	app.Get("/secure-form/:type", cfg.SessionMiddleware.RequireAdmin, cfg.Forms.Fetch)
}

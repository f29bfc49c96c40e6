package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/issue-dashboard/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Dashboard *handlers.DashboardHandler
	Refresh   *handlers.RefreshHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/dashboard", cfg.Dashboard.Dashboard)
	api.Get("/issues", cfg.Dashboard.Issues)
	api.Get("/summary", cfg.Dashboard.Summary)
	api.Get("/filters", cfg.Dashboard.FilterOptions)
	api.Get("/unresolved", cfg.Dashboard.Unresolved)
	api.Get("/export", cfg.Dashboard.Export)
	api.Post("/refresh", cfg.Refresh.Trigger)
}

package routes

import (
	"venuereport/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/healthz", h.HandleHealth)

	api := app.Group("/api/v1")

	// --- Query Routes ---
	api.Get("/days", h.HandleGetDays)
	api.Get("/venues", h.HandleGetVenues)
	api.Get("/orders", h.HandleGetOrders)

	// --- Report Routes ---
	api.Post("/reports", h.HandleSendReport)
}

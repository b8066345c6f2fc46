// handlers/event.go
package handlers

import (
	"wish-platform-server/middleware"
	"wish-platform-server/services"

	"github.com/gofiber/fiber/v2"
)

func SetupEventRoutes(app *fiber.App, eventService *services.EventService) {
	// 🔓 Public fundraising pages
	app.Get("/events", eventService.GetActiveEvents)
	app.Get("/campaigns", eventService.GetActiveCampaigns)

	// 🔒 Admin event management
	admin := app.Group("/admin", middleware.AdminContextMiddleware())
	admin.Get("/events", eventService.GetAllEvents)
	admin.Post("/events", eventService.CreateEvent)
	admin.Put("/events/:id", eventService.UpdateEvent)
	admin.Delete("/events/:id", eventService.DeleteEvent)
}

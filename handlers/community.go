// handlers/community.go
package handlers

import (
	"wish-platform-server/middleware"
	"wish-platform-server/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCommunityRoutes(app *fiber.App, communityService *services.CommunityService) {
	// 🔓 Public
	app.Post("/newsletter/subscribe", communityService.Subscribe)
	app.Get("/testimonials", communityService.GetActiveTestimonials)

	// 🔒 Admin
	admin := app.Group("/admin", middleware.AdminContextMiddleware())
	admin.Get("/subscribers", communityService.GetSubscribers)
	admin.Get("/subscribers/export", communityService.ExportSubscribers)
	admin.Post("/testimonials", communityService.CreateTestimonial)
	admin.Delete("/testimonials/:id", communityService.DeleteTestimonial)
}

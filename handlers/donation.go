// handlers/donation.go
package handlers

import (
	"wish-platform-server/middleware"
	"wish-platform-server/services"

	"github.com/gofiber/fiber/v2"
)

func SetupDonationRoutes(app *fiber.App, donationService *services.DonationService) {
	// 🔓 Public checkout — returns the hosted payment page URL
	app.Post("/donations/checkout", donationService.CreateCheckout)

	// 🔒 Admin view
	admin := app.Group("/admin", middleware.AdminContextMiddleware())
	admin.Get("/donations", donationService.GetAllDonations)
}

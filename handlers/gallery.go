// handlers/gallery.go
package handlers

import (
	"wish-platform-server/middleware"
	"wish-platform-server/services"

	"github.com/gofiber/fiber/v2"
)

func SetupGalleryRoutes(app *fiber.App, galleryService *services.GalleryService) {
	// 🔓 Public gallery
	app.Get("/gallery", galleryService.GetGallery)

	// 🔒 Admin CRUD + ordering
	admin := app.Group("/admin", middleware.AdminContextMiddleware())
	admin.Post("/gallery", galleryService.CreateItem)
	admin.Put("/gallery/:id", galleryService.UpdateItem)
	admin.Delete("/gallery/:id", galleryService.DeleteItem)
	admin.Patch("/gallery/:id/feature", galleryService.ToggleFeatured)
	admin.Post("/gallery/reorder", galleryService.ReorderGallery)
}

// handlers/referral.go
package handlers

import (
	"wish-platform-server/middleware"
	"wish-platform-server/services"

	"github.com/gofiber/fiber/v2"
)

func SetupReferralRoutes(app *fiber.App, referralService *services.ReferralService) {
	// 🔓 Public intake — no user context, but still behind Gateway auth
	app.Post("/referrals", referralService.SubmitReferral)
	app.Post("/referrals/uploads", referralService.UploadAttachment)

	// Draft autosave slots
	app.Get("/referrals/draft/:slot", referralService.GetDraft)
	app.Put("/referrals/draft/:slot", referralService.SaveDraft)
	app.Delete("/referrals/draft/:slot", referralService.ClearDraft)

	// 🔒 Admin review
	admin := app.Group("/admin", middleware.AdminContextMiddleware())
	admin.Get("/referrals", referralService.GetAdminReferrals)
	admin.Get("/referrals/export", referralService.ExportReferrals)
	admin.Patch("/referrals/:id", referralService.UpdateReferral)
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"wish-platform-server/handlers"
	"wish-platform-server/middleware"
	"wish-platform-server/models"
	"wish-platform-server/services"
	"wish-platform-server/utils"
	"wish-platform-server/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 12 * 1024 * 1024, // attachments are capped at 10MB each
	})

	// 🔐 GLOBAL: only Gateway requests allowed — public pages included
	app.Use(middleware.GatewayAuthMiddleware())

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, User-Agent, Cache-Control, X-User-ID, X-User-Roles",
		ExposeHeaders:    "Content-Length, Content-Type, Content-Disposition, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Referral{},
		&models.ReferralFile{},
		&models.ReferralDraft{},
		&models.GalleryItem{},
		&models.FundraisingEvent{},
		&models.FundraisingCampaign{},
		&models.Donation{},
		&models.NewsletterSubscriber{},
		&models.Testimonial{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := utils.InitR2(); err != nil {
		log.Printf("⚠️  R2 disabled (%v) — uploads will be stored locally", err)
		if err := utils.EnsureUploadDir(); err != nil {
			log.Fatal("failed to ensure upload dir:", err)
		}
	}

	referralService := services.NewReferralService(db, services.NewGormDraftStore(db))
	galleryService := services.NewGalleryService(db)
	eventService := services.NewEventService(db)
	donationService := services.NewDonationService(db)
	communityService := services.NewCommunityService(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Follow-up reminders poll hourly; dates only resolve per day anyway.
	followUpNotifier := workers.NewFollowUpNotifier(db)
	go workers.PollFollowUps(ctx, followUpNotifier, 1*time.Hour)

	eventService.StartEventScheduler()

	handlers.SetupReferralRoutes(app, referralService)
	handlers.SetupGalleryRoutes(app, galleryService)
	handlers.SetupEventRoutes(app, eventService)
	handlers.SetupDonationRoutes(app, donationService)
	handlers.SetupCommunityRoutes(app, communityService)

	app.Static("/uploads", "./uploads")

	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Follow-up reminder worker running (hourly)")
	log.Println("✅ Event scheduler running (every 1m)")
	log.Println("✅ GatewayAuthMiddleware enforced globally — all requests must come from Gateway")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}

package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"log"
	"time"

	"wish-platform-server/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunityService covers the small public-engagement entities: newsletter
// subscribers and testimonials.
type CommunityService struct {
	DB *gorm.DB
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{DB: db}
}

func (s *CommunityService) Subscribe(c *fiber.Ctx) error {
	type Req struct {
		Email string `json:"email"`
	}
	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	email := trimmed(req.Email)
	if !IsValidEmail(email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fiber.Map{"email": "Please enter a valid email address"}})
	}

	var existing models.NewsletterSubscriber
	err := s.DB.First(&existing, "email = ?", email).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "already subscribed"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to check subscription"})
	}

	sub := &models.NewsletterSubscriber{ID: uuid.NewString(), Email: email}
	if err := s.DB.Create(sub).Error; err != nil {
		log.Printf("ERROR creating subscriber: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to subscribe"})
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (s *CommunityService) GetSubscribers(c *fiber.Ctx) error {
	var subs []models.NewsletterSubscriber
	if err := s.DB.Order("created_at DESC").Find(&subs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch subscribers"})
	}
	return c.JSON(subs)
}

func (s *CommunityService) ExportSubscribers(c *fiber.Ctx) error {
	var subs []models.NewsletterSubscriber
	if err := s.DB.Order("created_at DESC").Find(&subs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch subscribers"})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "email", "created_date"})
	for _, sub := range subs {
		_ = w.Write([]string{sub.ID, sub.Email, sub.CreatedAt.Format(time.RFC3339)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build export"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="subscribers.csv"`)
	return c.Send(buf.Bytes())
}

func (s *CommunityService) GetActiveTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	err := s.DB.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch testimonials"})
	}
	return c.JSON(testimonials)
}

func (s *CommunityService) CreateTestimonial(c *fiber.Ctx) error {
	type Req struct {
		AuthorName string `json:"author_name"`
		Role       string `json:"role"`
		Quote      string `json:"quote"`
	}
	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if trimmed(req.AuthorName) == "" || trimmed(req.Quote) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "author_name and quote are required"})
	}

	t := &models.Testimonial{
		ID:         uuid.NewString(),
		AuthorName: trimmed(req.AuthorName),
		Role:       req.Role,
		Quote:      trimmed(req.Quote),
		IsActive:   true,
	}
	if err := s.DB.Create(t).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create testimonial"})
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (s *CommunityService) DeleteTestimonial(c *fiber.Ctx) error {
	result := s.DB.Delete(&models.Testimonial{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB delete failed"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "testimonial not found"})
	}
	return c.JSON(fiber.Map{"message": "testimonial deleted"})
}

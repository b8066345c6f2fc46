package services

import (
	"log"
	"time"

	"wish-platform-server/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

func withProgress(events []models.FundraisingEvent) []models.FundraisingEvent {
	for i := range events {
		events[i].Progress = events[i].ComputeProgress()
	}
	return events
}

// GetActiveEvents returns active events soonest-first with computed funding
// progress.
func (s *EventService) GetActiveEvents(c *fiber.Ctx) error {
	var events []models.FundraisingEvent
	err := s.DB.Where("is_active = ?", true).
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		log.Printf("ERROR fetching events: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch events"})
	}
	return c.JSON(withProgress(events))
}

// GetAllEvents is the admin view: every event, newest first.
func (s *EventService) GetAllEvents(c *fiber.Ctx) error {
	var events []models.FundraisingEvent
	if err := s.DB.Order("created_at DESC").Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch events"})
	}
	return c.JSON(withProgress(events))
}

type eventInput struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ImageURL        string     `json:"image_url"`
	EventDate       *time.Time `json:"event_date"`
	Location        string     `json:"location"`
	FundraisingGoal float64    `json:"fundraising_goal"`
	IsActive        *bool      `json:"is_active"`
}

func (in eventInput) validate() map[string]string {
	errs := map[string]string{}
	if trimmed(in.Title) == "" {
		errs["title"] = "Title is required"
	}
	if in.EventDate == nil {
		errs["event_date"] = "Event date and time are required"
	}
	if trimmed(in.Location) == "" {
		errs["location"] = "Location is required"
	}
	if in.FundraisingGoal < 0 {
		errs["fundraising_goal"] = "Please enter a valid, non-negative goal"
	}
	return errs
}

func (s *EventService) CreateEvent(c *fiber.Ctx) error {
	var in eventInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if errs := in.validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	event := &models.FundraisingEvent{
		ID:              uuid.NewString(),
		Title:           trimmed(in.Title),
		Slug:            slug.Make(in.Title),
		Description:     in.Description,
		ImageURL:        in.ImageURL,
		EventDate:       *in.EventDate,
		Location:        trimmed(in.Location),
		FundraisingGoal: in.FundraisingGoal,
		IsActive:        active,
	}
	if err := s.DB.Create(event).Error; err != nil {
		log.Printf("ERROR creating event: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create event"})
	}

	event.Progress = event.ComputeProgress()
	return c.Status(fiber.StatusCreated).JSON(event)
}

// UpdateEvent rewrites the editable fields. AmountRaised is reconciled
// externally and deliberately not accepted here.
func (s *EventService) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	var in eventInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if errs := in.validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	updates := map[string]interface{}{
		"title":            trimmed(in.Title),
		"slug":             slug.Make(in.Title),
		"description":      in.Description,
		"image_url":        in.ImageURL,
		"event_date":       *in.EventDate,
		"location":         trimmed(in.Location),
		"fundraising_goal": in.FundraisingGoal,
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	result := s.DB.Model(&models.FundraisingEvent{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB update failed"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
	}

	var updated models.FundraisingEvent
	s.DB.First(&updated, "id = ?", id)
	updated.Progress = updated.ComputeProgress()
	return c.JSON(updated)
}

func (s *EventService) DeleteEvent(c *fiber.Ctx) error {
	result := s.DB.Delete(&models.FundraisingEvent{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB delete failed"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
	}
	return c.JSON(fiber.Map{"message": "event deleted"})
}

// GetActiveCampaigns lists long-running appeals for the fundraising page.
func (s *EventService) GetActiveCampaigns(c *fiber.Ctx) error {
	var campaigns []models.FundraisingCampaign
	err := s.DB.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&campaigns).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch campaigns"})
	}
	return c.JSON(campaigns)
}

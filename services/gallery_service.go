package services

import (
	"errors"
	"fmt"
	"log"

	"wish-platform-server/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type GalleryService struct {
	DB *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{DB: db}
}

// GetGallery returns items in display order for the public page, optionally
// narrowed by category or featured flag.
func (s *GalleryService) GetGallery(c *fiber.Ctx) error {
	query := s.DB.Order("display_order ASC").Limit(100)

	if category := c.Query("category"); category != "" && category != "all" {
		if !models.GalleryCategory(category).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown category"})
		}
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	var items []models.GalleryItem
	if err := query.Find(&items).Error; err != nil {
		log.Printf("ERROR fetching gallery: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch gallery"})
	}
	return c.JSON(items)
}

type galleryItemInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	MediaURL      string `json:"media_url"`
	MediaType     string `json:"media_type"`
	IsExternalURL bool   `json:"is_external_url"`
	Category      string `json:"category"`
	ChildName     string `json:"child_name"`
	ChildAge      *int   `json:"child_age"`
	IsFeatured    bool   `json:"is_featured"`
}

func (in galleryItemInput) validate() map[string]string {
	errs := map[string]string{}
	if trimmed(in.Title) == "" {
		errs["title"] = "Title is required"
	}
	if trimmed(in.MediaURL) == "" {
		errs["media_url"] = "Media URL is required"
	}
	if in.MediaType != "" && !models.MediaType(in.MediaType).IsValid() {
		errs["media_type"] = "Unknown media type"
	}
	if in.Category != "" && !models.GalleryCategory(in.Category).IsValid() {
		errs["category"] = "Unknown category"
	}
	return errs
}

// CreateItem appends a gallery item at the end of the display order.
func (s *GalleryService) CreateItem(c *fiber.Ctx) error {
	var in galleryItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if errs := in.validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	mediaType := models.MediaType(in.MediaType)
	if in.MediaType == "" {
		mediaType = models.InferMediaType(in.MediaURL)
	}
	category := models.GalleryCategory(in.Category)
	if in.Category == "" {
		category = models.CategoryWishesGranted
	}

	item := &models.GalleryItem{
		ID:            uuid.NewString(),
		Title:         trimmed(in.Title),
		Slug:          slug.Make(in.Title),
		Description:   in.Description,
		MediaURL:      in.MediaURL,
		MediaType:     mediaType,
		IsExternalURL: in.IsExternalURL,
		Category:      category,
		ChildName:     in.ChildName,
		ChildAge:      in.ChildAge,
		IsFeatured:    in.IsFeatured,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// New items go to the end: max(display_order)+1, 0 for an empty list.
		var next int
		row := tx.Model(&models.GalleryItem{}).Select("COALESCE(MAX(display_order)+1, 0)").Row()
		if err := row.Scan(&next); err != nil {
			return err
		}
		item.DisplayOrder = next
		return tx.Create(item).Error
	})
	if err != nil {
		log.Printf("ERROR creating gallery item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create gallery item"})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem replaces the editable fields of an item. Display order is not
// editable here — reordering has its own endpoint.
func (s *GalleryService) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	var in galleryItemInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if errs := in.validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	mediaType := models.MediaType(in.MediaType)
	if in.MediaType == "" {
		mediaType = models.InferMediaType(in.MediaURL)
	}

	updates := map[string]interface{}{
		"title":           trimmed(in.Title),
		"slug":            slug.Make(in.Title),
		"description":     in.Description,
		"media_url":       in.MediaURL,
		"media_type":      mediaType,
		"is_external_url": in.IsExternalURL,
		"child_name":      in.ChildName,
		"child_age":       in.ChildAge,
		"is_featured":     in.IsFeatured,
	}
	if in.Category != "" {
		updates["category"] = in.Category
	}

	result := s.DB.Model(&models.GalleryItem{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB update failed"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "gallery item not found"})
	}

	var updated models.GalleryItem
	s.DB.First(&updated, "id = ?", id)
	return c.JSON(updated)
}

func (s *GalleryService) DeleteItem(c *fiber.Ctx) error {
	result := s.DB.Delete(&models.GalleryItem{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB delete failed"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "gallery item not found"})
	}
	return c.JSON(fiber.Map{"message": "gallery item deleted"})
}

// ToggleFeatured sets the featured flag, update-then-refetch like every
// other gallery mutation.
func (s *GalleryService) ToggleFeatured(c *fiber.Ctx) error {
	type Req struct {
		IsFeatured bool `json:"is_featured"`
	}
	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	result := s.DB.Model(&models.GalleryItem{}).
		Where("id = ?", c.Params("id")).
		Update("is_featured", req.IsFeatured)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB update failed"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "gallery item not found"})
	}

	var updated models.GalleryItem
	s.DB.First(&updated, "id = ?", c.Params("id"))
	return c.JSON(updated)
}

type orderUpdate struct {
	ID           string `json:"id"`
	DisplayOrder int    `json:"display_order"`
}

var errIndexOutOfRange = errors.New("index out of range")

// moveItem removes the item at src and reinserts it at dst, preserving the
// relative order of everything else.
func moveItem(items []models.GalleryItem, src, dst int) ([]models.GalleryItem, error) {
	if src < 0 || src >= len(items) || dst < 0 || dst >= len(items) {
		return nil, errIndexOutOfRange
	}
	out := make([]models.GalleryItem, 0, len(items))
	out = append(out, items[:src]...)
	out = append(out, items[src+1:]...)

	tail := append([]models.GalleryItem{items[src]}, out[dst:]...)
	out = append(out[:dst], tail...)
	return out, nil
}

// changedOrders returns an update for every item whose stored display_order
// differs from its position in the reordered sequence — and only those.
func changedOrders(items []models.GalleryItem) []orderUpdate {
	var updates []orderUpdate
	for i, item := range items {
		if item.DisplayOrder != i {
			updates = append(updates, orderUpdate{ID: item.ID, DisplayOrder: i})
		}
	}
	return updates
}

// ReorderGallery moves the item at source_index to destination_index within
// the full display-ordered list and renumbers in a single transaction, so a
// reorder is either fully applied or not at all.
func (s *GalleryService) ReorderGallery(c *fiber.Ctx) error {
	type Req struct {
		SourceIndex      int `json:"source_index"`
		DestinationIndex int `json:"destination_index"`
	}
	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	var applied []orderUpdate
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var items []models.GalleryItem
		if err := tx.Order("display_order ASC").Find(&items).Error; err != nil {
			return err
		}

		reordered, err := moveItem(items, req.SourceIndex, req.DestinationIndex)
		if err != nil {
			return err
		}

		applied = changedOrders(reordered)
		for _, u := range applied {
			if err := tx.Model(&models.GalleryItem{}).
				Where("id = ?", u.ID).
				Update("display_order", u.DisplayOrder).Error; err != nil {
				return fmt.Errorf("failed to renumber item %s: %w", u.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errIndexOutOfRange) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "index out of range"})
		}
		log.Printf("ERROR reordering gallery: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to reorder gallery"})
	}

	return c.JSON(fiber.Map{"updated": applied})
}

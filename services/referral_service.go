package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"time"

	"wish-platform-server/models"
	"wish-platform-server/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MaxAttachmentSize = 10 * 1024 * 1024 // 10MB per file
	MinWishLength     = 20
	MinChildAge       = 3
	MaxChildAge       = 18

	defaultReferralPageSize = 50
	maxReferralPageSize     = 200
)

type ReferralService struct {
	DB     *gorm.DB
	Drafts DraftStore
}

func NewReferralService(db *gorm.DB, drafts DraftStore) *ReferralService {
	return &ReferralService{DB: db, Drafts: drafts}
}

// ReferralInput is the public intake payload. Status is never accepted from
// the client — the store assigns the pending default.
type ReferralInput struct {
	ChildName       string `json:"child_name"`
	ChildAge        int    `json:"child_age"`
	GuardianName    string `json:"guardian_name"`
	GuardianEmail   string `json:"guardian_email"`
	GuardianPhone   string `json:"guardian_phone,omitempty"`
	WishDescription string `json:"wish_description"`
	ReferralSource  string `json:"referral_source,omitempty"`
	UrgencyLevel    string `json:"urgency_level,omitempty"`
	Consent         bool   `json:"consent"`

	UploadedFiles []UploadedFile `json:"uploaded_files,omitempty"`

	// DraftSlot, when present, names the autosave slot to clear after a
	// confirmed successful submission.
	DraftSlot string `json:"draft_slot,omitempty"`
}

type UploadedFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// ValidateReferralInput applies the intake rules and returns field-keyed
// error messages. An empty map means the input is submittable.
func ValidateReferralInput(in ReferralInput) map[string]string {
	errs := map[string]string{}

	if trimmed(in.ChildName) == "" {
		errs["child_name"] = "Child's name is required"
	}
	if in.ChildAge == 0 {
		errs["child_age"] = "Child's age is required"
	} else if in.ChildAge < MinChildAge || in.ChildAge > MaxChildAge {
		errs["child_age"] = "Child must be between 3 and 18 years old"
	}

	if trimmed(in.GuardianName) == "" {
		errs["guardian_name"] = "Guardian's name is required"
	}
	if trimmed(in.GuardianEmail) == "" {
		errs["guardian_email"] = "Guardian's email is required"
	} else if !IsValidEmail(trimmed(in.GuardianEmail)) {
		errs["guardian_email"] = "Please enter a valid email address"
	}

	if trimmed(in.WishDescription) == "" {
		errs["wish_description"] = "Please describe the child's creative wish"
	} else if len(trimmed(in.WishDescription)) < MinWishLength {
		errs["wish_description"] = "Please provide more detail about the child's wish (at least 20 characters)"
	}

	if in.GuardianPhone != "" && !IsValidPhone(in.GuardianPhone) {
		errs["guardian_phone"] = "Please enter a valid phone number"
	}

	if in.UrgencyLevel != "" && !models.UrgencyLevel(in.UrgencyLevel).IsValid() {
		errs["urgency_level"] = "Unknown urgency level"
	}

	for _, f := range in.UploadedFiles {
		if f.Size > MaxAttachmentSize {
			errs["uploaded_files"] = fmt.Sprintf("File %s is too large. Maximum size is 10MB.", f.Name)
			break
		}
	}

	if !in.Consent {
		errs["consent"] = "Please confirm you have permission to share this information"
	}

	return errs
}

// SubmitReferral handles the public intake form. Validation failures block
// the create entirely; the draft is left intact for resubmission.
func (s *ReferralService) SubmitReferral(c *fiber.Ctx) error {
	var in ReferralInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	if errs := ValidateReferralInput(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	urgency := models.UrgencyLevel(in.UrgencyLevel)
	if in.UrgencyLevel == "" {
		urgency = models.UrgencyMedium
	}

	referral := &models.Referral{
		ID:              uuid.NewString(),
		ChildName:       trimmed(in.ChildName),
		ChildAge:        in.ChildAge,
		GuardianName:    trimmed(in.GuardianName),
		GuardianEmail:   trimmed(in.GuardianEmail),
		GuardianPhone:   FormatPhoneNumber(in.GuardianPhone),
		WishDescription: trimmed(in.WishDescription),
		ReferralSource:  trimmed(in.ReferralSource),
		UrgencyLevel:    urgency,
		// Status is store-assigned: the column default yields pending.
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(referral).Error; err != nil {
			return err
		}

		var files []models.ReferralFile
		for _, f := range in.UploadedFiles {
			files = append(files, models.ReferralFile{
				ID:         uuid.NewString(),
				ReferralID: referral.ID,
				Name:       f.Name,
				URL:        f.URL,
				Size:       f.Size,
			})
		}
		if len(files) > 0 {
			if err := tx.Create(&files).Error; err != nil {
				return fmt.Errorf("failed to save uploaded files: %v", err)
			}
		}

		return tx.Preload("UploadedFiles").First(referral, "id = ?", referral.ID).Error
	})
	if err != nil {
		log.Printf("ERROR creating referral: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to submit referral"})
	}

	// Draft is cleared only after the create is confirmed.
	if in.DraftSlot != "" {
		if err := s.Drafts.Clear(in.DraftSlot); err != nil {
			log.Printf("⚠️  Failed to clear draft slot %s: %v", in.DraftSlot, err)
		}
	}

	go utils.SendAdminEmail(
		"New wish referral: "+referral.ChildName,
		utils.NewReferralEmailBody(referral.ChildName, referral.ChildAge, referral.GuardianName, string(referral.UrgencyLevel)),
	)

	return c.Status(fiber.StatusCreated).JSON(referral)
}

// UploadAttachment receives one multipart file, enforces the 10MB ceiling,
// and returns the stored file's public URL.
func (s *ReferralService) UploadAttachment(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	if fileHeader.Size > MaxAttachmentSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file too large (max 10MB)"})
	}

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".bin"
	}
	filename := uuid.NewString() + ext

	var url string
	if utils.R2Enabled() {
		url, err = utils.UploadFileToR2(fileHeader, "referrals/"+filename)
	} else {
		url, err = utils.SaveFileLocally(fileHeader, "referrals/"+filename)
	}
	if err != nil {
		log.Printf("ERROR storing attachment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store file"})
	}

	return c.JSON(UploadedFile{
		Name: fileHeader.Filename,
		URL:  url,
		Size: fileHeader.Size,
	})
}

// GetDraft returns the saved form payload for a slot, 404 when absent.
func (s *ReferralService) GetDraft(c *fiber.Ctx) error {
	payload, err := s.Drafts.Load(c.Params("slot"))
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no draft saved"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load draft"})
	}
	c.Set("Content-Type", "application/json")
	return c.Send(payload)
}

// SaveDraft persists the payload verbatim. The client calls this on every
// change; there is no server-side debounce.
func (s *ReferralService) SaveDraft(c *fiber.Ctx) error {
	slot := c.Params("slot")
	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty draft payload"})
	}
	if err := s.Drafts.Save(slot, c.Body()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save draft"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *ReferralService) ClearDraft(c *fiber.Ctx) error {
	if err := s.Drafts.Clear(c.Params("slot")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to clear draft"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAdminReferrals lists referrals most-recent-first with independent,
// AND-combined status and urgency filters. Both default to all.
func (s *ReferralService) GetAdminReferrals(c *fiber.Ctx) error {
	limit := defaultReferralPageSize
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxReferralPageSize {
		limit = maxReferralPageSize
	}

	query := s.DB.Preload("UploadedFiles").Order("created_at DESC").Limit(limit)

	if status := c.Query("status"); status != "" && status != "all" {
		if !models.ReferralStatus(status).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown status filter"})
		}
		query = query.Where("status = ?", status)
	}
	if urgency := c.Query("urgency"); urgency != "" && urgency != "all" {
		if !models.UrgencyLevel(urgency).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown urgency filter"})
		}
		query = query.Where("urgency_level = ?", urgency)
	}

	var referrals []models.Referral
	if err := query.Find(&referrals).Error; err != nil {
		log.Printf("ERROR fetching referrals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch referrals"})
	}
	return c.JSON(referrals)
}

// UpdateReferral applies the admin review: exactly status, admin_notes and
// follow_up_date. Any status may follow any other.
func (s *ReferralService) UpdateReferral(c *fiber.Ctx) error {
	id := c.Params("id")
	type Req struct {
		Status       string  `json:"status"`
		AdminNotes   string  `json:"admin_notes"`
		FollowUpDate *string `json:"follow_up_date"` // "2006-01-02" or null
	}
	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if !models.ReferralStatus(req.Status).IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}

	var followUp *time.Time
	if req.FollowUpDate != nil && *req.FollowUpDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.FollowUpDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid follow_up_date, expected YYYY-MM-DD"})
		}
		followUp = &parsed
	}

	updates := map[string]interface{}{
		"status":         req.Status,
		"admin_notes":    req.AdminNotes,
		"follow_up_date": followUp,
	}

	result := s.DB.Model(&models.Referral{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		log.Printf("ERROR updating referral %s: %v", id, result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB update failed"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "referral not found"})
	}

	var updated models.Referral
	s.DB.Preload("UploadedFiles").First(&updated, "id = ?", id)
	return c.JSON(updated)
}

// ExportReferrals streams the referral list as a CSV download.
func (s *ReferralService) ExportReferrals(c *fiber.Ctx) error {
	var referrals []models.Referral
	if err := s.DB.Order("created_at DESC").Find(&referrals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch referrals"})
	}

	data, err := referralsToCSV(referrals)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to build export"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="referrals.csv"`)
	return c.Send(data)
}

var referralCSVHeader = []string{
	"id", "child_name", "child_age", "guardian_name", "guardian_email",
	"guardian_phone", "wish_description", "referral_source", "urgency_level",
	"status", "admin_notes", "follow_up_date", "created_date",
}

func referralsToCSV(referrals []models.Referral) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(referralCSVHeader); err != nil {
		return nil, err
	}
	for _, r := range referrals {
		followUp := ""
		if r.FollowUpDate != nil {
			followUp = r.FollowUpDate.Format("2006-01-02")
		}
		row := []string{
			r.ID,
			r.ChildName,
			strconv.Itoa(r.ChildAge),
			r.GuardianName,
			r.GuardianEmail,
			r.GuardianPhone,
			r.WishDescription,
			r.ReferralSource,
			string(r.UrgencyLevel),
			string(r.Status),
			r.AdminNotes,
			followUp,
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

package services

import (
	"log"
	"math"
	"os"
	"strconv"

	"wish-platform-server/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"gorm.io/gorm"
)

type DonationService struct {
	DB *gorm.DB
}

func NewDonationService(db *gorm.DB) *DonationService {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("⚠️  STRIPE_SECRET_KEY not set — donation checkout will fail until configured")
	}
	return &DonationService{DB: db}
}

// CreateCheckout records a pending donation and returns the hosted checkout
// URL. The donor leaves this system for the payment page and only comes back
// via the success/cancel redirects; completion is reconciled externally.
func (s *DonationService) CreateCheckout(c *fiber.Ctx) error {
	type Req struct {
		Amount          float64 `json:"amount"`
		DonorName       string  `json:"donor_name"`
		DonorEmail      string  `json:"donor_email"`
		Frequency       string  `json:"donation_frequency"`
		FundDesignation string  `json:"fund_designation"`
		SuccessURL      string  `json:"success_url"`
		CancelURL       string  `json:"cancel_url"`
	}
	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}

	errs := map[string]string{}
	if req.Amount <= 0 {
		errs["amount"] = "Donation amount must be greater than zero"
	}
	if trimmed(req.DonorName) == "" {
		errs["donor_name"] = "Donor name is required"
	}
	if !IsValidEmail(trimmed(req.DonorEmail)) {
		errs["donor_email"] = "Please enter a valid email address"
	}
	frequency := models.DonationFrequency(req.Frequency)
	if req.Frequency == "" {
		frequency = models.FrequencyOneTime
	} else if !frequency.IsValid() {
		errs["donation_frequency"] = "Unknown donation frequency"
	}
	if req.SuccessURL == "" || req.CancelURL == "" {
		errs["redirect_urls"] = "success_url and cancel_url are required"
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	donation := &models.Donation{
		ID:                uuid.NewString(),
		DonorName:         trimmed(req.DonorName),
		DonorEmail:        trimmed(req.DonorEmail),
		Amount:            req.Amount,
		DonationFrequency: frequency,
		FundDesignation:   req.FundDesignation,
		PaymentStatus:     models.PaymentPending,
	}
	if err := s.DB.Create(donation).Error; err != nil {
		log.Printf("ERROR creating donation record: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record donation"})
	}

	amountCents := int64(math.Round(req.Amount * 100))
	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency:   stripe.String("usd"),
		UnitAmount: stripe.Int64(amountCents),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String("Donation"),
		},
	}
	mode := stripe.CheckoutSessionModePayment
	if frequency == models.FrequencyMonthly {
		mode = stripe.CheckoutSessionModeSubscription
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String("month"),
		}
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(mode)),
		SuccessURL:    stripe.String(req.SuccessURL),
		CancelURL:     stripe.String(req.CancelURL),
		CustomerEmail: stripe.String(donation.DonorEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity:  stripe.Int64(1),
			PriceData: priceData,
		}},
	}
	params.AddMetadata("donation_id", donation.ID)
	if req.FundDesignation != "" {
		params.AddMetadata("fund_designation", req.FundDesignation)
	}

	sess, err := session.New(params)
	if err != nil {
		log.Printf("ERROR creating checkout session: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to start checkout, please try again"})
	}

	if err := s.DB.Model(donation).Update("stripe_session_id", sess.ID).Error; err != nil {
		log.Printf("⚠️  Failed to attach session id to donation %s: %v", donation.ID, err)
	}

	return c.JSON(fiber.Map{"checkout_url": sess.URL})
}

// GetAllDonations is the admin view, most recent first.
func (s *DonationService) GetAllDonations(c *fiber.Ctx) error {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	var donations []models.Donation
	err := s.DB.Order("created_at DESC").Limit(limit).Find(&donations).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch donations"})
	}
	return c.JSON(donations)
}

package models

type DonationFrequency string

const (
	FrequencyOneTime DonationFrequency = "one-time"
	FrequencyMonthly DonationFrequency = "monthly"
)

func (f DonationFrequency) IsValid() bool {
	return f == FrequencyOneTime || f == FrequencyMonthly
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Donation is created pending when a checkout session is opened. Completion
// is reconciled externally by the payment processor — this service never
// flips payment_status itself.
type Donation struct {
	ID         string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DonorName  string  `json:"donor_name" gorm:"not null"`
	DonorEmail string  `json:"donor_email" gorm:"not null;index"`
	Amount     float64 `json:"amount" gorm:"not null"`

	DonationFrequency DonationFrequency `json:"donation_frequency" gorm:"type:varchar(16);default:'one-time'"`
	FundDesignation   string            `json:"fund_designation,omitempty"`

	PaymentStatus   PaymentStatus `json:"payment_status" gorm:"type:varchar(16);default:'pending';index"`
	StripeSessionID string        `json:"stripe_payment_id,omitempty" gorm:"index"`

	Timestamps
}

package models

import "time"

// ReferralStatus is admin-discretionary: any status may follow any other,
// there is no enforced transition order.
type ReferralStatus string

const (
	StatusPending   ReferralStatus = "pending"
	StatusReviewing ReferralStatus = "reviewing"
	StatusApproved  ReferralStatus = "approved"
	StatusCompleted ReferralStatus = "completed"
	StatusDeclined  ReferralStatus = "declined"
)

func (s ReferralStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusApproved, StatusCompleted, StatusDeclined:
		return true
	}
	return false
}

type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

func (u UrgencyLevel) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// Referral is a request describing a child and a creative wish, submitted by
// a guardian through the public intake form and reviewed by admins.
// Referrals are never deleted.
type Referral struct {
	ID            string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ChildName     string `json:"child_name" gorm:"not null"`
	ChildAge      int    `json:"child_age" gorm:"not null"`
	GuardianName  string `json:"guardian_name" gorm:"not null"`
	GuardianEmail string `json:"guardian_email" gorm:"not null"`
	GuardianPhone string `json:"guardian_phone,omitempty"` // stored formatted: (NNN) NNN-NNNN

	WishDescription string `json:"wish_description" gorm:"type:text;not null"`
	ReferralSource  string `json:"referral_source,omitempty"`

	UrgencyLevel UrgencyLevel   `json:"urgency_level" gorm:"type:varchar(16);default:'medium';index"`
	Status       ReferralStatus `json:"status" gorm:"type:varchar(16);default:'pending';index"`

	UploadedFiles []ReferralFile `json:"uploaded_files" gorm:"foreignKey:ReferralID"`

	// Admin review fields — only ever mutated through the admin update path.
	AdminNotes   string     `json:"admin_notes,omitempty" gorm:"type:text"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty" gorm:"index"`

	Timestamps
}

// ReferralFile records an attachment already uploaded to object storage.
type ReferralFile struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReferralID string `json:"referral_id" gorm:"index;not null"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
}

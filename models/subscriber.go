package models

// NewsletterSubscriber holds a single opted-in email address.
type NewsletterSubscriber struct {
	ID    string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email string `json:"email" gorm:"uniqueIndex;not null"`

	Timestamps
}

package models

type Testimonial struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AuthorName string `json:"author_name" gorm:"not null"`
	Role       string `json:"role,omitempty"` // e.g. "parent", "mentor"
	Quote      string `json:"quote" gorm:"type:text;not null"`
	IsActive   bool   `json:"is_active" gorm:"default:true;index"`

	Timestamps
}

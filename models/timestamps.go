package models

import "time"

// Timestamps is embedded by every entity. JSON names follow the public API
// contract (created_date / updated_date).
type Timestamps struct {
	CreatedAt time.Time `json:"created_date" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_date" gorm:"autoUpdateTime"`
}

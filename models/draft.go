package models

import "time"

// ReferralDraft holds an in-progress intake form keyed by a fixed client
// slot. The payload is stored verbatim; it is cleared only on a confirmed
// successful submission.
type ReferralDraft struct {
	SlotKey   string    `json:"slot_key" gorm:"primaryKey"`
	Payload   string    `json:"payload" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

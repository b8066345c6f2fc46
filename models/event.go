package models

import "time"

// FundraisingEvent is a dated fundraiser with a goal. AmountRaised is
// written externally by the payment processor's reconciliation, never by
// this service.
type FundraisingEvent struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `json:"title" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"index"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url"`
	EventDate   time.Time `json:"event_date" gorm:"not null;index"`
	Location    string    `json:"location" gorm:"not null"`

	FundraisingGoal float64 `json:"fundraising_goal" gorm:"default:0"`
	AmountRaised    float64 `json:"amount_raised" gorm:"default:0"`
	IsActive        bool    `json:"is_active" gorm:"default:true;index"`

	// Calculated, not stored
	Progress float64 `json:"progress" gorm:"-"`

	Timestamps
}

// ComputeProgress returns the funding percentage clamped to [0, 100].
// A zero goal yields 0, never a division by zero.
func (e *FundraisingEvent) ComputeProgress() float64 {
	if e.FundraisingGoal <= 0 {
		return 0
	}
	p := e.AmountRaised / e.FundraisingGoal * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// FundraisingCampaign is a long-running appeal without a date or location.
type FundraisingCampaign struct {
	ID           string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title        string  `json:"title" gorm:"not null"`
	Description  string  `json:"description" gorm:"type:text"`
	GoalAmount   float64 `json:"goal_amount" gorm:"default:0"`
	RaisedAmount float64 `json:"raised_amount" gorm:"default:0"`
	IsActive     bool    `json:"is_active" gorm:"default:true;index"`

	Timestamps
}

package services

import (
	"errors"

	"wish-platform-server/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftStore persists in-progress intake forms keyed by a fixed client slot.
// The interface exists so handlers can take a test double.
type DraftStore interface {
	Save(slot string, payload []byte) error
	Load(slot string) ([]byte, error)
	Clear(slot string) error
}

type GormDraftStore struct {
	DB *gorm.DB
}

func NewGormDraftStore(db *gorm.DB) *GormDraftStore {
	return &GormDraftStore{DB: db}
}

func (s *GormDraftStore) Save(slot string, payload []byte) error {
	draft := models.ReferralDraft{SlotKey: slot, Payload: string(payload)}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		UpdateAll: true,
	}).Create(&draft).Error
}

func (s *GormDraftStore) Load(slot string) ([]byte, error) {
	var draft models.ReferralDraft
	if err := s.DB.First(&draft, "slot_key = ?", slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	return []byte(draft.Payload), nil
}

func (s *GormDraftStore) Clear(slot string) error {
	return s.DB.Delete(&models.ReferralDraft{}, "slot_key = ?", slot).Error
}

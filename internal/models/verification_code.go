package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationCode is a one-time SMS code tied to a phone number. A code is
// usable at most once and only while expires_at is in the future; expired
// rows are excluded at lookup time and purged periodically.
type VerificationCode struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	PhoneNumber string    `json:"phone_number" gorm:"not null;index"`
	CountryCode string    `json:"country_code" gorm:"not null"`
	Code        string    `json:"code" gorm:"not null"`
	ExpiresAt   time.Time `json:"expires_at" gorm:"not null"`
	IsUsed      bool      `json:"is_used" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}

func (v *VerificationCode) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

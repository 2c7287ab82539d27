package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking represents a confirmed appointment. Rows are created only by the
// confirmation workflow, always with IsVerified=true, so the composite unique
// index on (barber_id, booking_date, booking_time) is what guarantees at most
// one verified booking per slot even under concurrent confirms.
type Booking struct {
	ID       string `json:"id" gorm:"primaryKey"`
	BarberID string `json:"barber_id" gorm:"uniqueIndex:idx_barber_slot;not null"`

	// Selected service IDs from the static catalog
	Services ServiceIDs `json:"services" gorm:"serializer:json"`

	// Slot, as the customer picked it: ISO date + 24h time
	BookingDate string `json:"booking_date" gorm:"uniqueIndex:idx_barber_slot;not null"` // YYYY-MM-DD
	BookingTime string `json:"booking_time" gorm:"uniqueIndex:idx_barber_slot;not null"` // HH:mm

	TotalPrice float64 `json:"total_price"`

	// Verified contact details
	PhoneNumber string `json:"phone_number" gorm:"not null;index"`
	CountryCode string `json:"country_code" gorm:"not null"`
	IsVerified  bool   `json:"is_verified" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceIDs is a JSON-serialized list of catalog service IDs.
type ServiceIDs []string

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Date and time layouts used everywhere a slot is persisted or compared.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

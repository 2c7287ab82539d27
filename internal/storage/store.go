package storage

import (
	"errors"
	"time"

	"github.com/zeelias/barbershop-backend/internal/models"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSlot is returned when inserting a booking whose
	// (barber, date, time) tuple is already taken. Backed by the composite
	// unique index; this is the real mutual exclusion between concurrent
	// customers, the workflow's conflict re-check only narrows the window.
	ErrDuplicateSlot = errors.New("slot already booked")
)

// Store defines the interface for storage operations
type Store interface {
	// Booking operations
	CreateBooking(booking *models.Booking) (*models.Booking, error)
	GetVerifiedBookings(date, barberID string) ([]*models.Booking, error)
	FindVerifiedBooking(barberID, date, timeOfDay string) (*models.Booking, error)
	ListVerifiedBookings() ([]*models.Booking, error)
	DeleteBooking(id string) error

	// Verification code operations
	CreateVerificationCode(code *models.VerificationCode) (*models.VerificationCode, error)
	GetActiveVerificationCode(phone, country, code string, now time.Time) (*models.VerificationCode, error)
	MarkVerificationCodeUsed(id string) error
	DeleteExpiredVerificationCodes(now time.Time) error
}

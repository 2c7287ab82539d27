package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/zeelias/barbershop-backend/internal/models"
)

// DatabaseStore is the PostgreSQL-backed store. The connection must be opened
// with TranslateError enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store backed by the given gorm connection
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Booking operations

func (s *DatabaseStore) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	if err := s.db.Create(booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlot
		}
		return nil, err
	}
	return booking, nil
}

func (s *DatabaseStore) GetVerifiedBookings(date, barberID string) ([]*models.Booking, error) {
	query := s.db.Where("booking_date = ? AND is_verified = ?", date, true)
	if barberID != "" {
		query = query.Where("barber_id = ?", barberID)
	}

	var bookings []*models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *DatabaseStore) FindVerifiedBooking(barberID, date, timeOfDay string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.
		Where("barber_id = ? AND booking_date = ? AND booking_time = ? AND is_verified = ?",
			barberID, date, timeOfDay, true).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *DatabaseStore) ListVerifiedBookings() ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := s.db.
		Where("is_verified = ?", true).
		Order("booking_date ASC").
		Order("booking_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *DatabaseStore) DeleteBooking(id string) error {
	result := s.db.Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Verification code operations

func (s *DatabaseStore) CreateVerificationCode(code *models.VerificationCode) (*models.VerificationCode, error) {
	if err := s.db.Create(code).Error; err != nil {
		return nil, err
	}
	return code, nil
}

func (s *DatabaseStore) GetActiveVerificationCode(phone, country, code string, now time.Time) (*models.VerificationCode, error) {
	var v models.VerificationCode
	err := s.db.
		Where("phone_number = ? AND country_code = ? AND code = ? AND is_used = ? AND expires_at > ?",
			phone, country, code, false, now).
		Order("created_at DESC").
		First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (s *DatabaseStore) MarkVerificationCodeUsed(id string) error {
	result := s.db.Model(&models.VerificationCode{}).
		Where("id = ?", id).
		Update("is_used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DatabaseStore) DeleteExpiredVerificationCodes(now time.Time) error {
	return s.db.Delete(&models.VerificationCode{}, "expires_at <= ?", now).Error
}

package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zeelias/barbershop-backend/internal/models"
)

// MemoryStore holds all data in memory. Used for tests and local development
// (USE_MEMORY_STORE=true); it enforces the same slot uniqueness the database
// enforces with its composite index, so concurrency behavior matches.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings map[string]*models.Booking
	codes    map[string]*models.VerificationCode
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings: make(map[string]*models.Booking),
		codes:    make(map[string]*models.VerificationCode),
	}
}

// Booking operations

func (m *MemoryStore) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Same guarantee as the database's unique index on (barber, date, time)
	for _, b := range m.bookings {
		if b.IsVerified &&
			b.BarberID == booking.BarberID &&
			b.BookingDate == booking.BookingDate &&
			b.BookingTime == booking.BookingTime {
			return nil, ErrDuplicateSlot
		}
	}

	stored := *booking
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	m.bookings[stored.ID] = &stored
	return &stored, nil
}

func (m *MemoryStore) GetVerifiedBookings(date, barberID string) ([]*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var bookings []*models.Booking
	for _, b := range m.bookings {
		if !b.IsVerified || b.BookingDate != date {
			continue
		}
		if barberID != "" && b.BarberID != barberID {
			continue
		}
		copied := *b
		bookings = append(bookings, &copied)
	}
	return bookings, nil
}

func (m *MemoryStore) FindVerifiedBooking(barberID, date, timeOfDay string) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, b := range m.bookings {
		if b.IsVerified && b.BarberID == barberID && b.BookingDate == date && b.BookingTime == timeOfDay {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) ListVerifiedBookings() ([]*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var bookings []*models.Booking
	for _, b := range m.bookings {
		if !b.IsVerified {
			continue
		}
		copied := *b
		bookings = append(bookings, &copied)
	}

	// Date ascending, then time ascending
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].BookingDate != bookings[j].BookingDate {
			return bookings[i].BookingDate < bookings[j].BookingDate
		}
		return bookings[i].BookingTime < bookings[j].BookingTime
	})
	return bookings, nil
}

func (m *MemoryStore) DeleteBooking(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.bookings[id]; !exists {
		return ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

// Verification code operations

func (m *MemoryStore) CreateVerificationCode(code *models.VerificationCode) (*models.VerificationCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *code
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	m.codes[stored.ID] = &stored
	return &stored, nil
}

func (m *MemoryStore) GetActiveVerificationCode(phone, country, code string, now time.Time) (*models.VerificationCode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Most-recently-created match wins, matching the database's
	// ORDER BY created_at DESC LIMIT 1
	var latest *models.VerificationCode
	for _, v := range m.codes {
		if v.PhoneNumber != phone || v.CountryCode != country || v.Code != code {
			continue
		}
		if v.IsUsed || !v.ExpiresAt.After(now) {
			continue
		}
		if latest == nil || v.CreatedAt.After(latest.CreatedAt) {
			latest = v
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	copied := *latest
	return &copied, nil
}

func (m *MemoryStore) MarkVerificationCodeUsed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	code, exists := m.codes[id]
	if !exists {
		return ErrNotFound
	}
	code.IsUsed = true
	return nil
}

func (m *MemoryStore) DeleteExpiredVerificationCodes(now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, v := range m.codes {
		if !v.ExpiresAt.After(now) {
			delete(m.codes, id)
		}
	}
	return nil
}

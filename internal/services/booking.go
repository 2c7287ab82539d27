package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/zeelias/barbershop-backend/internal/models"
	"github.com/zeelias/barbershop-backend/internal/storage"
)

var nonDigits = regexp.MustCompile(`\D`)

// BookingDraft carries everything a customer selected before verification.
type BookingDraft struct {
	BarberID    string
	Services    []string
	Date        string // YYYY-MM-DD
	Time        string // HH:mm
	PhoneNumber string
	CountryCode string
}

// BookingService orchestrates the confirmation workflow: freshness check
// before a code goes out, then the conflict re-check + code validation +
// insert when the customer submits the code. It keeps no state between calls;
// every correctness-critical check re-reads the store immediately before the
// write it guards.
type BookingService struct {
	store        storage.Store
	availability *AvailabilityService
	verification *VerificationService
	logger       *zap.Logger
}

// NewBookingService creates the booking workflow service
func NewBookingService(store storage.Store, availability *AvailabilityService, verification *VerificationService, logger *zap.Logger) *BookingService {
	return &BookingService{
		store:        store,
		availability: availability,
		verification: verification,
		logger:       logger,
	}
}

// RequestCode validates the draft, re-checks that the chosen slot is still
// free, and sends a verification code to the customer's phone. When the slot
// disappeared it returns ErrSlotUnavailable together with the refreshed slot
// list so the UI can re-render choices.
func (s *BookingService) RequestCode(draft BookingDraft) ([]string, error) {
	date, err := s.validateDraft(draft)
	if err != nil {
		return nil, err
	}

	if !s.availability.IsSlotAvailable(date, draft.BarberID, draft.Time) {
		return s.availability.AvailableSlots(date, draft.BarberID), ErrSlotUnavailable
	}

	if err := s.verification.IssueCode(draft.PhoneNumber, draft.CountryCode); err != nil {
		return nil, err
	}
	return nil, nil
}

// Confirm runs the critical section: conflict re-check, code validation,
// insert. Order matters — the slot is checked before the code is consumed so
// a customer who loses the race keeps a valid code for another slot. Once
// VerifyCode succeeds the code is spent regardless of what the insert does;
// after any later failure the caller must request a fresh code.
func (s *BookingService) Confirm(draft BookingDraft, code string) (*models.Booking, error) {
	if _, err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	if len(code) != 6 || nonDigits.MatchString(code) {
		return nil, fmt.Errorf("%w: code must be 6 digits", ErrValidation)
	}

	// Final conflict re-check before trusting the code
	_, err := s.store.FindVerifiedBooking(draft.BarberID, draft.Date, draft.Time)
	if err == nil {
		return nil, ErrSlotTaken
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}

	valid, err := s.verification.VerifyCode(draft.PhoneNumber, draft.CountryCode, code)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrInvalidCode
	}

	booking := &models.Booking{
		BarberID:    draft.BarberID,
		Services:    draft.Services,
		BookingDate: draft.Date,
		BookingTime: draft.Time,
		TotalPrice:  models.TotalPrice(draft.Services),
		PhoneNumber: draft.PhoneNumber,
		CountryCode: draft.CountryCode,
		IsVerified:  true,
	}

	created, err := s.store.CreateBooking(booking)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateSlot) {
			// Another customer won the race inside the re-check window;
			// the unique index is the authority
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		zap.String("booking_id", created.ID),
		zap.String("barber_id", created.BarberID),
		zap.String("date", created.BookingDate),
		zap.String("time", created.BookingTime))
	return created, nil
}

// validateDraft checks the draft is complete and well-formed and returns the
// parsed booking date.
func (s *BookingService) validateDraft(draft BookingDraft) (time.Time, error) {
	if draft.BarberID == "" || draft.Date == "" || draft.Time == "" ||
		draft.PhoneNumber == "" || draft.CountryCode == "" {
		return time.Time{}, fmt.Errorf("%w: all booking fields are required", ErrValidation)
	}
	if len(draft.Services) == 0 {
		return time.Time{}, fmt.Errorf("%w: at least one service is required", ErrValidation)
	}

	if _, ok := models.GetBarber(draft.BarberID); !ok {
		return time.Time{}, fmt.Errorf("%w: unknown barber %q", ErrValidation, draft.BarberID)
	}
	for _, id := range draft.Services {
		if _, ok := models.GetService(id); !ok {
			return time.Time{}, fmt.Errorf("%w: unknown service %q", ErrValidation, id)
		}
	}

	if digits := nonDigits.ReplaceAllString(draft.PhoneNumber, ""); len(digits) < 8 {
		return time.Time{}, fmt.Errorf("%w: phone number must have at least 8 digits", ErrValidation)
	}

	date, err := time.ParseInLocation(models.DateLayout, draft.Date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid booking date %q", ErrValidation, draft.Date)
	}
	if _, err := time.Parse(models.TimeLayout, draft.Time); err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid booking time %q", ErrValidation, draft.Time)
	}

	if !s.availability.Hours().IsOpenOn(date) {
		return time.Time{}, fmt.Errorf("%w: shop is closed on %s", ErrValidation, date.Weekday())
	}

	return date, nil
}

package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/zeelias/barbershop-backend/internal/models"
	"github.com/zeelias/barbershop-backend/internal/schedule"
	"github.com/zeelias/barbershop-backend/internal/storage"
)

// AvailabilityService produces the bookable slots for a date by generating
// candidates from business hours and removing times already taken by verified
// bookings.
type AvailabilityService struct {
	store  storage.Store
	hours  schedule.BusinessHours
	logger *zap.Logger
	now    func() time.Time
}

// NewAvailabilityService creates an availability service
func NewAvailabilityService(store storage.Store, hours schedule.BusinessHours, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		store:  store,
		hours:  hours,
		logger: logger,
		now:    time.Now,
	}
}

// Hours returns the business-hours rules the service filters against.
func (s *AvailabilityService) Hours() schedule.BusinessHours {
	return s.hours
}

// AvailableSlots returns the still-free "HH:mm" slots for the date, for one
// barber when barberID is set or across all barbers when it is empty. A store
// failure degrades to the unfiltered candidates rather than blocking the UI;
// the confirmation workflow's final conflict check catches anything a stale
// list lets through.
func (s *AvailabilityService) AvailableSlots(date time.Time, barberID string) []string {
	candidates := s.hours.Slots(date, s.now())
	if len(candidates) == 0 {
		return candidates
	}

	bookings, err := s.store.GetVerifiedBookings(date.Format(models.DateLayout), barberID)
	if err != nil {
		s.logger.Warn("availability filter degraded to unfiltered candidates",
			zap.String("date", date.Format(models.DateLayout)),
			zap.String("barber_id", barberID),
			zap.Error(err))
		return candidates
	}

	booked := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		booked[b.BookingTime] = true
	}

	available := candidates[:0]
	for _, slot := range candidates {
		if !booked[slot] {
			available = append(available, slot)
		}
	}
	return available
}

// IsSlotAvailable reports whether a specific slot is still in the available
// set for the barber. Used by the workflow's pre-send freshness check.
func (s *AvailabilityService) IsSlotAvailable(date time.Time, barberID, timeOfDay string) bool {
	for _, slot := range s.AvailableSlots(date, barberID) {
		if slot == timeOfDay {
			return true
		}
	}
	return false
}

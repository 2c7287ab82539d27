package services

import (
	"errors"
	"regexp"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zeelias/barbershop-backend/internal/models"
	"github.com/zeelias/barbershop-backend/internal/schedule"
	"github.com/zeelias/barbershop-backend/internal/storage"
)

type sentMessage struct {
	To   string
	Body string
}

// fakeSMS records outgoing messages instead of talking to Twilio.
type fakeSMS struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (f *fakeSMS) SendSMS(to, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{To: to, Body: body})
	return nil
}

var codePattern = regexp.MustCompile(`\d{6}`)

// lastCode extracts the 6-digit code from the most recent message sent to the
// given number.
func (f *fakeSMS) lastCode(to string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.sent) - 1; i >= 0; i-- {
		if f.sent[i].To == to {
			return codePattern.FindString(f.sent[i].Body)
		}
	}
	return ""
}

// failingStore wraps a store and fails reads of verified bookings, for
// exercising the availability filter's degraded path.
type failingStore struct {
	storage.Store
}

var errStoreDown = errors.New("store unreachable")

func (f *failingStore) GetVerifiedBookings(date, barberID string) ([]*models.Booking, error) {
	return nil, errStoreDown
}

// 2025-06-02 is a Monday.
func testDate() time.Time {
	return time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
}

// morningOf pins "now" to 08:00 on the given date so every slot of the day is
// still in the future.
func morningOf(date time.Time) func() time.Time {
	now := time.Date(date.Year(), date.Month(), date.Day(), 8, 0, 0, 0, date.Location())
	return func() time.Time { return now }
}

type testEnv struct {
	store        *storage.MemoryStore
	sms          *fakeSMS
	availability *AvailabilityService
	verification *VerificationService
	booking      *BookingService
}

func newTestEnv() *testEnv {
	store := storage.NewMemoryStore()
	sms := &fakeSMS{}
	logger := zap.NewNop()

	availability := NewAvailabilityService(store, schedule.DefaultBusinessHours(), logger)
	availability.now = morningOf(testDate())

	verification := NewVerificationService(store, sms, logger)
	booking := NewBookingService(store, availability, verification, logger)

	return &testEnv{
		store:        store,
		sms:          sms,
		availability: availability,
		verification: verification,
		booking:      booking,
	}
}

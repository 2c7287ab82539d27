package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zeelias/barbershop-backend/internal/models"
	"github.com/zeelias/barbershop-backend/internal/storage"
	"github.com/zeelias/barbershop-backend/internal/utils"
)

// CodeTTL is how long a verification code stays valid. Enforced by comparison
// at read time, not by a background timer.
const CodeTTL = 10 * time.Minute

// VerificationService issues, validates, and purges one-time SMS codes.
type VerificationService struct {
	store  storage.Store
	sms    SMSSender
	logger *zap.Logger
	now    func() time.Time
}

// NewVerificationService creates a verification service. sms may be nil when
// Twilio is not configured; IssueCode then fails with ErrSMSNotConfigured.
func NewVerificationService(store storage.Store, sms SMSSender, logger *zap.Logger) *VerificationService {
	return &VerificationService{
		store:  store,
		sms:    sms,
		logger: logger,
		now:    time.Now,
	}
}

// IssueCode generates a 6-digit code for the phone number, persists it with a
// 10 minute expiry, and dispatches it over SMS. The code value is never
// returned to the caller; it only travels in the SMS body.
func (s *VerificationService) IssueCode(phone, country string) error {
	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	// Best-effort cleanup before inserting; a failed purge never blocks the send
	if err := s.store.DeleteExpiredVerificationCodes(s.now()); err != nil {
		s.logger.Warn("failed to purge expired verification codes", zap.Error(err))
	}

	_, err = s.store.CreateVerificationCode(&models.VerificationCode{
		PhoneNumber: phone,
		CountryCode: country,
		Code:        code,
		ExpiresAt:   s.now().Add(CodeTTL),
		IsUsed:      false,
	})
	if err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	if s.sms == nil {
		return ErrSMSNotConfigured
	}

	to := country + phone
	body := fmt.Sprintf("Your Ze Elias Barbershop verification code is: %s. This code expires in 10 minutes.", code)
	if err := s.sms.SendSMS(to, body); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	return nil
}

// VerifyCode checks the submitted code against the most recently created
// unused, unexpired row for the phone number (most recent wins, so a re-sent
// code implicitly supersedes earlier ones). A match is marked used before
// returning true; once consumed a code never verifies again.
func (s *VerificationService) VerifyCode(phone, country, code string) (bool, error) {
	v, err := s.store.GetActiveVerificationCode(phone, country, code, s.now())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up verification code: %w", err)
	}

	if err := s.store.MarkVerificationCodeUsed(v.ID); err != nil {
		return false, fmt.Errorf("failed to mark verification code used: %w", err)
	}

	return true, nil
}

// PurgeExpired deletes codes past their expiry. Called periodically by the
// cleanup job; correctness never depends on it since lookups filter on
// expires_at themselves.
func (s *VerificationService) PurgeExpired() error {
	return s.store.DeleteExpiredVerificationCodes(s.now())
}

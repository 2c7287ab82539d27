// Package services holds the booking domain logic: availability filtering,
// SMS verification codes, and the booking confirmation workflow. The sentinel
// errors below let handlers distinguish failure classes; everything else that
// bubbles up is a store or provider fault and maps to a 500.
package services

import "errors"

// ErrValidation is returned for missing or malformed input. User-correctable,
// no retry needed beyond fixing the request.
var ErrValidation = errors.New("validation failed")

// ErrSlotUnavailable is returned when the chosen slot disappeared between the
// customer picking it and requesting a code. Benign concurrency outcome;
// surfaced with a refreshed slot list.
var ErrSlotUnavailable = errors.New("slot no longer available")

// ErrSlotTaken is returned when the pre-confirm re-check (or the store's
// unique index) finds a verified booking already occupying the slot. The
// verification code is not consumed in the re-check case.
var ErrSlotTaken = errors.New("slot already taken")

// ErrInvalidCode is returned when a submitted code does not match any unused,
// unexpired code for the phone number. Terminal for this code.
var ErrInvalidCode = errors.New("invalid or expired verification code")

// ErrSMSNotConfigured is returned when Twilio credentials are absent. A
// configuration error, not a runtime fault to retry.
var ErrSMSNotConfigured = errors.New("sms service not configured")

// ErrTransport is returned when the SMS provider rejects the send.
var ErrTransport = errors.New("failed to send sms")

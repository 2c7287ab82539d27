// Package schedule computes candidate appointment slots from the shop's
// business-hours rules. Everything here is pure: slots are recomputed per
// request and never persisted.
package schedule

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// BusinessHours describes when the shop takes appointments.
type BusinessHours struct {
	OpenHour    int // first bookable hour, inclusive
	CloseHour   int // slots stop before this hour
	SlotMinutes int // slot granularity, 60 or 30
	ClosedDays  map[time.Weekday]bool
}

// Default hours: 9:00-19:00, hourly slots, closed Sunday and Thursday.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpenHour:    9,
		CloseHour:   19,
		SlotMinutes: 60,
		ClosedDays: map[time.Weekday]bool{
			time.Sunday:   true,
			time.Thursday: true,
		},
	}
}

// BusinessHoursFromEnv returns the default hours with the slot granularity
// optionally overridden by SLOT_MINUTES (accepted values: 30, 60).
func BusinessHoursFromEnv() BusinessHours {
	hours := DefaultBusinessHours()
	if v := os.Getenv("SLOT_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && (minutes == 30 || minutes == 60) {
			hours.SlotMinutes = minutes
		}
	}
	return hours
}

// IsOpenOn reports whether the shop takes bookings on the given date.
func (h BusinessHours) IsOpenOn(date time.Time) bool {
	return !h.ClosedDays[date.Weekday()]
}

// Slots returns the ordered "HH:mm" labels for the given date that are still
// bookable at the moment `now`. Slots at or before `now` are excluded, so
// same-day slots are always strictly in the future. Closed days yield nil.
func (h BusinessHours) Slots(date time.Time, now time.Time) []string {
	if !h.IsOpenOn(date) {
		return nil
	}

	var slots []string
	step := time.Duration(h.SlotMinutes) * time.Minute
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), h.OpenHour, 0, 0, 0, date.Location())
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), h.CloseHour, 0, 0, 0, date.Location())

	for t := dayStart; t.Before(dayEnd); t = t.Add(step) {
		if !t.After(now) {
			continue
		}
		slots = append(slots, fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
	}
	return slots
}

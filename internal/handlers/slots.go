package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zeelias/barbershop-backend/internal/models"
	"github.com/zeelias/barbershop-backend/internal/services"
)

// SlotsHandler serves available appointment slots and the slot-freshness
// check used when a customer starts the verification flow.
type SlotsHandler struct {
	availability *services.AvailabilityService
	booking      *services.BookingService
}

// NewSlotsHandler creates a new slots handler
func NewSlotsHandler(availability *services.AvailabilityService, booking *services.BookingService) *SlotsHandler {
	return &SlotsHandler{
		availability: availability,
		booking:      booking,
	}
}

// List returns the available slots for ?date=YYYY-MM-DD, optionally filtered
// to ?barberId=. Closed days return an empty list with closed=true.
func (h *SlotsHandler) List(c *fiber.Ctx) error {
	dateParam := c.Query("date")
	if dateParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Date is required",
		})
	}

	date, err := time.ParseInLocation(models.DateLayout, dateParam, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Date must be in YYYY-MM-DD format",
		})
	}

	barberID := c.Query("barberId")
	if barberID != "" {
		if _, ok := models.GetBarber(barberID); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown barber",
			})
		}
	}

	if !h.availability.Hours().IsOpenOn(date) {
		return c.JSON(fiber.Map{
			"date":   dateParam,
			"closed": true,
			"slots":  []string{},
		})
	}

	slots := h.availability.AvailableSlots(date, barberID)
	if slots == nil {
		slots = []string{}
	}
	return c.JSON(fiber.Map{
		"date":   dateParam,
		"closed": false,
		"slots":  slots,
	})
}

// RequestCode runs the draft validation + freshness check and sends the
// verification SMS when the chosen slot is still free.
func (h *SlotsHandler) RequestCode(c *fiber.Ctx) error {
	var req struct {
		BarberID    string   `json:"barberId"`
		Services    []string `json:"services"`
		BookingDate string   `json:"bookingDate"`
		BookingTime string   `json:"bookingTime"`
		PhoneNumber string   `json:"phoneNumber"`
		CountryCode string   `json:"countryCode"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	draft := services.BookingDraft{
		BarberID:    req.BarberID,
		Services:    req.Services,
		Date:        req.BookingDate,
		Time:        req.BookingTime,
		PhoneNumber: req.PhoneNumber,
		CountryCode: req.CountryCode,
	}

	refreshed, err := h.booking.RequestCode(draft)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, services.ErrSlotUnavailable):
			if refreshed == nil {
				refreshed = []string{}
			}
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "This slot is no longer available",
				"slots": refreshed,
			})
		case errors.Is(err, services.ErrSMSNotConfigured), errors.Is(err, services.ErrTransport):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to send SMS",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to request verification code",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Verification code sent successfully",
	})
}

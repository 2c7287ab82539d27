package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zeelias/barbershop-backend/internal/services"
)

// VerifyHandler handles code verification + booking confirmation
type VerifyHandler struct {
	booking *services.BookingService
}

// NewVerifyHandler creates a new verify handler
func NewVerifyHandler(booking *services.BookingService) *VerifyHandler {
	return &VerifyHandler{booking: booking}
}

type verifyRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	CountryCode string `json:"countryCode"`
	Code        string `json:"code"`
	BookingData struct {
		BarberID    string   `json:"barberId"`
		Services    []string `json:"services"`
		BookingDate string   `json:"bookingDate"`
		BookingTime string   `json:"bookingTime"`
		TotalPrice  float64  `json:"totalPrice"`
	} `json:"bookingData"`
}

// Confirm validates the submitted code and creates the verified booking.
func (h *VerifyHandler) Confirm(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.PhoneNumber == "" || req.CountryCode == "" || req.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "All fields are required",
		})
	}

	draft := services.BookingDraft{
		BarberID:    req.BookingData.BarberID,
		Services:    req.BookingData.Services,
		Date:        req.BookingData.BookingDate,
		Time:        req.BookingData.BookingTime,
		PhoneNumber: req.PhoneNumber,
		CountryCode: req.CountryCode,
	}

	booking, err := h.booking.Confirm(draft, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, services.ErrInvalidCode):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid or expired verification code",
			})
		case errors.Is(err, services.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "This slot has just been booked by someone else",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create booking",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking confirmed successfully",
		"booking": booking,
	})
}

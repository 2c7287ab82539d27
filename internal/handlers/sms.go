package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zeelias/barbershop-backend/internal/services"
)

// SMSHandler handles verification code dispatch requests
type SMSHandler struct {
	verification *services.VerificationService
}

// NewSMSHandler creates a new SMS handler
func NewSMSHandler(verification *services.VerificationService) *SMSHandler {
	return &SMSHandler{verification: verification}
}

// Send generates a verification code for the phone number and texts it out.
// The response never contains the code value.
func (h *SMSHandler) Send(c *fiber.Ctx) error {
	var req struct {
		PhoneNumber string `json:"phoneNumber"`
		CountryCode string `json:"countryCode"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.PhoneNumber == "" || req.CountryCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone number and country code are required",
		})
	}

	if err := h.verification.IssueCode(req.PhoneNumber, req.CountryCode); err != nil {
		if errors.Is(err, services.ErrSMSNotConfigured) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "SMS service not configured",
			})
		}
		if errors.Is(err, services.ErrTransport) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to send SMS",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store verification code",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Verification code sent successfully",
	})
}

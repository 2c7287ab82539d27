package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/zeelias/barbershop-backend/internal/storage"
)

// BookingsHandler handles the admin view over confirmed bookings
type BookingsHandler struct {
	store storage.Store
}

// NewBookingsHandler creates a new bookings handler
func NewBookingsHandler(store storage.Store) *BookingsHandler {
	return &BookingsHandler{store: store}
}

// List returns all verified bookings ordered by date then time.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	bookings, err := h.store.ListVerifiedBookings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// Delete removes a booking unconditionally. No undo.
func (h *BookingsHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Booking ID is required",
		})
	}

	if err := h.store.DeleteBooking(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Booking not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete booking",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking deleted successfully",
	})
}

package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/zeelias/barbershop-backend/internal/models"
	"github.com/zeelias/barbershop-backend/internal/schedule"
)

// CatalogHandler serves the static business info the booking form renders:
// services, barbers, and opening hours.
type CatalogHandler struct {
	hours schedule.BusinessHours
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(hours schedule.BusinessHours) *CatalogHandler {
	return &CatalogHandler{hours: hours}
}

// Services returns the service catalog with prices.
func (h *CatalogHandler) Services(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"services": models.Services,
	})
}

// Barbers returns the barber catalog.
func (h *CatalogHandler) Barbers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"barbers": models.Barbers,
	})
}

// Info returns opening hours and closed days for the business-info display.
func (h *CatalogHandler) Info(c *fiber.Ctx) error {
	closedDays := make([]string, 0, len(h.hours.ClosedDays))
	for day, closed := range h.hours.ClosedDays {
		if closed {
			closedDays = append(closedDays, day.String())
		}
	}
	sort.Strings(closedDays)

	return c.JSON(fiber.Map{
		"name":         "Ze Elias Barbershop",
		"open_hour":    h.hours.OpenHour,
		"close_hour":   h.hours.CloseHour,
		"slot_minutes": h.hours.SlotMinutes,
		"closed_days":  closedDays,
	})
}

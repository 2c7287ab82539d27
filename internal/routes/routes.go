package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zeelias/barbershop-backend/internal/handlers"
	"github.com/zeelias/barbershop-backend/internal/middleware"
	"github.com/zeelias/barbershop-backend/internal/schedule"
	"github.com/zeelias/barbershop-backend/internal/services"
	"github.com/zeelias/barbershop-backend/internal/storage"
)

// Deps bundles everything the routes need.
type Deps struct {
	Store        storage.Store
	Hours        schedule.BusinessHours
	Availability *services.AvailabilityService
	Verification *services.VerificationService
	Booking      *services.BookingService
	Sessions     *services.SessionService
}

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, deps Deps) {
	healthHandler := handlers.NewHealthHandler("1.0.0")
	catalogHandler := handlers.NewCatalogHandler(deps.Hours)
	slotsHandler := handlers.NewSlotsHandler(deps.Availability, deps.Booking)
	smsHandler := handlers.NewSMSHandler(deps.Verification)
	verifyHandler := handlers.NewVerifyHandler(deps.Booking)
	bookingsHandler := handlers.NewBookingsHandler(deps.Store)
	authHandler := handlers.NewAuthHandler(deps.Sessions)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// Business info for the booking form
	api.Get("/services", catalogHandler.Services)
	api.Get("/barbers", catalogHandler.Barbers)
	api.Get("/info", catalogHandler.Info)

	// Customer booking flow
	api.Get("/slots", slotsHandler.List)
	api.Post("/slots/request-code", slotsHandler.RequestCode)
	api.Post("/sms/send", smsHandler.Send)
	api.Post("/verify", verifyHandler.Confirm)

	// Admin dashboard
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)
	admin.Get("/bookings", middleware.AdminAuth(deps.Sessions), bookingsHandler.List)
	admin.Delete("/bookings/:id", middleware.AdminAuth(deps.Sessions), bookingsHandler.Delete)
}

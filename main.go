package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/zeelias/barbershop-backend/database"
	"github.com/zeelias/barbershop-backend/internal/app"
	"github.com/zeelias/barbershop-backend/internal/jobs"
	"github.com/zeelias/barbershop-backend/internal/models"
	"github.com/zeelias/barbershop-backend/internal/routes"
	"github.com/zeelias/barbershop-backend/internal/schedule"
	"github.com/zeelias/barbershop-backend/internal/services"
	"github.com/zeelias/barbershop-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		if err := godotenv.Load(".env"); err != nil {
			// Fall back to plain environment variables
			_ = godotenv.Load("environments/.env.development")
		}
	}

	log := app.NewLogger(os.Getenv("ENV"))
	defer log.Sync()

	// Initialize storage
	var store storage.Store

	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Warn("using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Info("connecting to PostgreSQL database")
		database.Connect()

		err := database.DB.AutoMigrate(
			&models.Booking{},
			&models.VerificationCode{},
		)
		if err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
		log.Info("database migrations completed")

		store = storage.NewDatabaseStore(database.DB)
	}

	// Initialize Twilio; the booking flow still serves slots without it, only
	// code dispatch is unavailable
	var smsSender services.SMSSender
	twilioService, err := services.NewTwilioService(log)
	if err != nil {
		log.Warn("Twilio not configured, SMS dispatch disabled", zap.Error(err))
	} else {
		smsSender = twilioService
		log.Info("Twilio service initialized")
	}

	sessionService, err := services.NewSessionService()
	if err != nil {
		log.Fatal("failed to initialize admin sessions", zap.Error(err))
	}

	// Wire up the domain services
	hours := schedule.BusinessHoursFromEnv()
	availabilityService := services.NewAvailabilityService(store, hours, log)
	verificationService := services.NewVerificationService(store, smsSender, log)
	bookingService := services.NewBookingService(store, availabilityService, verificationService, log)

	purgeJob := jobs.NewPurgeJob(verificationService, log, 30*time.Minute)
	purgeJob.Start()

	// Create fiber app
	fiberApp := fiber.New(fiber.Config{
		AppName: "Barbershop Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	fiberApp.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	routes.SetupRoutes(fiberApp, routes.Deps{
		Store:        store,
		Hours:        hours,
		Availability: availabilityService,
		Verification: verificationService,
		Booking:      bookingService,
		Sessions:     sessionService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("gracefully shutting down")
		purgeJob.Stop()
		_ = fiberApp.Shutdown()
	}()

	log.Info("barbershop backend starting",
		zap.String("port", port),
		zap.Bool("sms_configured", smsSender != nil))

	if err := fiberApp.Listen(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

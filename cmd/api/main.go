package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"bluehawks_backend/internal/controller"
	"bluehawks_backend/internal/middleware"
	"bluehawks_backend/internal/model"
	"bluehawks_backend/pkg/config"
	"bluehawks_backend/pkg/cron"
	"bluehawks_backend/pkg/database"
	"bluehawks_backend/pkg/email"
	"bluehawks_backend/pkg/seed"
	"bluehawks_backend/pkg/utils/jwt"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Public form intake
	api.Post("/contact", controller.SubmitContact)
	api.Post("/airport-booking", controller.SubmitBooking)

	// Public service catalog
	api.Get("/services", controller.ListServices)
	api.Get("/services/:slug", controller.GetServiceBySlug)

	// Search engines
	app.Get("/sitemap.xml", controller.Sitemap)
	app.Get("/robots.txt", controller.Robots)

	// Operator surface
	admin := api.Group("/admin")
	admin.Post("/login", controller.Login)

	protected := admin.Use(middleware.AuthMiddleware())
	protected.Get("/contact-submissions", controller.ListContactSubmissions)
	protected.Put("/contact-submissions/:id", controller.UpdateContactSubmission)
	protected.Post("/contact-submissions/mark-processed", controller.MarkSubmissionsProcessed)
	protected.Get("/airport-bookings", controller.ListAirportBookings)
	protected.Get("/services", controller.ListAllServices)
	protected.Post("/services", controller.CreateService)
	protected.Put("/services/:id", controller.UpdateService)
	protected.Delete("/services/:id", controller.DeleteService)
}

func main() {
	cfg := config.Load()

	jwt.Init(cfg.JWT.Secret)

	if cfg.Email.ResendAPIKey != "" {
		if err := email.InitEmailService(cfg.Email.ResendAPIKey, cfg.Email.From); err != nil {
			log.Fatal("Could not initialize email service:", err)
		}
		log.Println("Email service initialized")
	} else {
		log.Println("RESEND_API_KEY not set, email notifications disabled")
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	database.InitDB(cfg.DatabaseURL)
	err := database.MigrateDatabase(
		&model.ContactSubmission{},
		&model.AirportBooking{},
		&model.Service{},
		&model.Operator{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	seed.SeedServices(database.GetDB())

	controller.InitContactController(cfg)
	controller.InitSEOController(cfg)
	cron.InitDailyDigestCron(cfg.Admin.Email)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}

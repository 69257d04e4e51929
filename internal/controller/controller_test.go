package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bluehawks_backend/internal/middleware"
	"bluehawks_backend/internal/model"
	"bluehawks_backend/pkg/config"
	"bluehawks_backend/pkg/database"
	"bluehawks_backend/pkg/utils/jwt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not get database instance: %v", err)
	}
	// One connection keeps the in-memory database alive and shared.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.ContactSubmission{},
		&model.AirportBooking{},
		&model.Service{},
		&model.Operator{},
	)
	if err != nil {
		t.Fatalf("could not migrate test database: %v", err)
	}

	database.SetDB(db)
	return db
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)

	cfg := &config.Config{BaseURL: "https://bluehawks.com"}
	cfg.Admin.Email = "ops@bluehawks.com"
	cfg.JWT.Secret = "test-secret"
	InitContactController(cfg)
	InitSEOController(cfg)
	jwt.Init(cfg.JWT.Secret)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/contact", SubmitContact)
	api.Post("/airport-booking", SubmitBooking)
	api.Get("/services", ListServices)
	api.Get("/services/:slug", GetServiceBySlug)
	app.Get("/sitemap.xml", Sitemap)
	app.Get("/robots.txt", Robots)

	admin := api.Group("/admin")
	admin.Post("/login", Login)
	protected := admin.Use(middleware.AuthMiddleware())
	protected.Get("/contact-submissions", ListContactSubmissions)
	protected.Put("/contact-submissions/:id", UpdateContactSubmission)
	protected.Post("/contact-submissions/mark-processed", MarkSubmissionsProcessed)
	protected.Get("/airport-bookings", ListAirportBookings)
	protected.Post("/services", CreateService)
	protected.Put("/services/:id", UpdateService)
	protected.Delete("/services/:id", DeleteService)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}, headers map[string]string) *http.Response {
	return postJSONWithMethod(t, app, http.MethodPost, path, payload, headers)
}

func postJSONWithMethod(t *testing.T, app *fiber.App, method, path string, payload interface{}, headers map[string]string) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("could not marshal payload: %v", err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("could not read response body: %v", err)
	}
	resp.Body.Close()

	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("could not decode response %q: %v", string(body), err)
	}
}

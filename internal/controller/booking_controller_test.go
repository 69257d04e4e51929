package controller

import (
	"net/http"
	"testing"
	"time"

	"bluehawks_backend/internal/model"
)

func TestSubmitBookingEndToEnd(t *testing.T) {
	app, db := setupTestApp(t)

	resp := postJSON(t, app, "/api/airport-booking", map[string]string{
		"name":           "jane smith",
		"email":          "Jane@Example.com",
		"phone":          "0300-123-4567",
		"passengers":     "2",
		"pickup_airport": "Islamabad International Airport",
		"destination":    "F-7, Islamabad",
		"travel_date":    "2026-10-01",
	}, nil)

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var out struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &out)
	if out.Message != "Your airport booking request has been sent successfully!" {
		t.Errorf("unexpected success message: %q", out.Message)
	}

	var stored model.AirportBooking
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("expected a stored booking: %v", err)
	}
	if stored.Name != "Jane Smith" {
		t.Errorf("expected normalized name, got %q", stored.Name)
	}
	if stored.Email != "jane@example.com" {
		t.Errorf("expected lowercased email, got %q", stored.Email)
	}
	if stored.Phone != "0300-123-4567" {
		t.Errorf("expected phone formatting to be kept, got %q", stored.Phone)
	}
	want := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	if !stored.TravelDate.Equal(want) {
		t.Errorf("expected travel date %v, got %v", want, stored.TravelDate)
	}
}

func TestSubmitBookingMissingRequiredFields(t *testing.T) {
	app, db := setupTestApp(t)

	resp := postJSON(t, app, "/api/airport-booking", map[string]string{
		"name":    "Jane Smith",
		"email":   "jane@example.com",
		"message": "no phone, airport or date",
	}, nil)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var out struct {
		Errors map[string][]string `json:"errors"`
	}
	decodeBody(t, resp, &out)
	for _, field := range []string{"phone", "pickup_airport", "destination", "travel_date"} {
		if len(out.Errors[field]) == 0 {
			t.Errorf("expected a %s error, got %v", field, out.Errors)
		}
	}

	var count int64
	db.Model(&model.AirportBooking{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected booking must not be persisted, found %d rows", count)
	}
}

func TestSubmitBookingNotRateLimited(t *testing.T) {
	// Bookings have no abuse gate; prior contact activity from the
	// same address must not block them.
	app, db := setupTestApp(t)
	seedSubmissions(t, db, "1.2.3.4", 3, 10*time.Minute)

	resp := postJSON(t, app, "/api/airport-booking", map[string]string{
		"name":           "Jane Smith",
		"email":          "jane@example.com",
		"phone":          "03001234567",
		"pickup_airport": "Lahore Airport",
		"destination":    "DHA, Lahore",
		"travel_date":    "2026-10-01",
	}, map[string]string{
		"X-Forwarded-For": "1.2.3.4",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
}

package forms

import (
	"testing"
	"time"
)

func validBookingInput() BookingInput {
	return BookingInput{
		Name:          "John Doe",
		Email:         "john@example.com",
		Phone:         "03001234567",
		Passengers:    "4",
		PickupAirport: "Islamabad International Airport",
		Destination:   "Blue Area, Islamabad",
		TravelDate:    "2026-09-15",
		Message:       "",
	}
}

func TestValidateBookingSuccess(t *testing.T) {
	form, errs := ValidateBooking(validBookingInput())
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
	want := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if !form.TravelDate.Equal(want) {
		t.Errorf("travel date: expected %v, got %v", want, form.TravelDate)
	}
	if form.Name != "John Doe" {
		t.Errorf("expected normalized name, got %q", form.Name)
	}
}

func TestValidateBookingRequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*BookingInput)
	}{
		{"name", func(in *BookingInput) { in.Name = "" }},
		{"email", func(in *BookingInput) { in.Email = "" }},
		{"phone", func(in *BookingInput) { in.Phone = "" }},
		{"pickup_airport", func(in *BookingInput) { in.PickupAirport = "" }},
		{"destination", func(in *BookingInput) { in.Destination = "" }},
		{"travel_date", func(in *BookingInput) { in.TravelDate = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			in := validBookingInput()
			tt.mutate(&in)
			_, errs := ValidateBooking(in)
			if errs == nil || len(errs[tt.field]) == 0 {
				t.Fatalf("expected a %s error, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateBookingPhoneShape(t *testing.T) {
	in := validBookingInput()
	in.Phone = "12345"
	_, errs := ValidateBooking(in)
	if errs == nil || len(errs["phone"]) == 0 {
		t.Fatal("expected an invalid phone to be rejected")
	}
}

func TestValidateBookingInvalidDate(t *testing.T) {
	for _, date := range []string{"15-09-2026", "2026/09/15", "not a date"} {
		in := validBookingInput()
		in.TravelDate = date
		if _, errs := ValidateBooking(in); errs == nil || len(errs["travel_date"]) == 0 {
			t.Errorf("expected travel date %q to be rejected", date)
		}
	}
}

func TestValidateBookingMessageUnconstrained(t *testing.T) {
	// Booking messages carry none of the contact message rules: short,
	// empty and keyword-bearing messages all pass.
	for _, msg := range []string{"", "ok", "we won the lottery, back from vegas"} {
		in := validBookingInput()
		in.Message = msg
		if _, errs := ValidateBooking(in); errs != nil {
			t.Errorf("expected booking message %q to be accepted, got %v", msg, errs)
		}
	}
}

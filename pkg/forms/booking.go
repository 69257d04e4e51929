package forms

import (
	"strings"
	"time"
	"unicode/utf8"
)

// BookingInput is the raw airport booking payload.
type BookingInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Passengers    string `json:"passengers"`
	PickupAirport string `json:"pickup_airport"`
	Destination   string `json:"destination"`
	TravelDate    string `json:"travel_date"`
	Message       string `json:"message"`
}

// BookingForm is a normalized, accepted airport booking. The message
// is trimmed only: booking messages carry no length or spam rules.
type BookingForm struct {
	Name          string
	Email         string
	Phone         string
	Passengers    string
	PickupAirport string
	Destination   string
	TravelDate    time.Time
	Message       string
}

// ValidateBooking applies the contact-form shape rules to name, email
// and phone (phone required here) plus the booking-specific required
// fields.
func ValidateBooking(in BookingInput) (*BookingForm, Errors) {
	errs := Errors{}
	form := &BookingForm{}

	name := strings.TrimSpace(in.Name)
	if normalized, msg := checkName(name); msg != "" {
		errs.Add("name", msg)
	} else {
		form.Name = normalized
	}

	email := strings.TrimSpace(in.Email)
	if normalized, msg := checkEmail(email); msg != "" {
		errs.Add("email", msg)
	} else {
		form.Email = normalized
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		errs.Add("phone", "Phone number is required.")
	} else if normalized, msg := checkPhone(phone); msg != "" {
		errs.Add("phone", msg)
	} else {
		form.Phone = normalized
	}

	passengers := strings.TrimSpace(in.Passengers)
	if utf8.RuneCountInString(passengers) > 10 {
		errs.Add("passengers", "Passenger count is too long.")
	} else {
		form.Passengers = passengers
	}

	pickup := strings.TrimSpace(in.PickupAirport)
	if pickup == "" {
		errs.Add("pickup_airport", "Pickup airport is required.")
	} else if utf8.RuneCountInString(pickup) > 100 {
		errs.Add("pickup_airport", "Pickup airport name is too long.")
	} else {
		form.PickupAirport = pickup
	}

	destination := strings.TrimSpace(in.Destination)
	if destination == "" {
		errs.Add("destination", "Destination is required.")
	} else if utf8.RuneCountInString(destination) > 200 {
		errs.Add("destination", "Destination is too long.")
	} else {
		form.Destination = destination
	}

	travelDate := strings.TrimSpace(in.TravelDate)
	if travelDate == "" {
		errs.Add("travel_date", "Travel date is required.")
	} else if parsed, err := time.Parse("2006-01-02", travelDate); err != nil {
		errs.Add("travel_date", "Please enter a valid travel date (YYYY-MM-DD).")
	} else {
		form.TravelDate = parsed
	}

	form.Message = strings.TrimSpace(in.Message)

	if len(errs) > 0 {
		return nil, errs
	}
	return form, nil
}

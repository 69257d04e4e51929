package model

import "time"

// AirportBooking is a transportation request from the airport booking
// form. Like contact submissions it is append-only from the public path.
type AirportBooking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:50;not null"`
	Email         string    `json:"email" gorm:"size:100;not null"`
	Phone         string    `json:"phone" gorm:"size:20;not null"`
	Passengers    string    `json:"passengers" gorm:"size:10"`
	PickupAirport string    `json:"pickup_airport" gorm:"size:100;not null"`
	Destination   string    `json:"destination" gorm:"size:200;not null"`
	TravelDate    time.Time `json:"travel_date" gorm:"type:date;not null"`
	Message       string    `json:"message" gorm:"type:text"`
	SubmittedAt   time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}

package controller

import (
	"log"

	"bluehawks_backend/internal/model"
	"bluehawks_backend/pkg/database"
	"bluehawks_backend/pkg/email"
	"bluehawks_backend/pkg/forms"

	"github.com/gofiber/fiber/v2"
)

// SubmitBooking runs the airport booking pipeline. Bookings skip the
// abuse gate and the message spam rules; see the booking validator.
func SubmitBooking(c *fiber.Ctx) error {
	input := new(forms.BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	form, errs := forms.ValidateBooking(*input)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Please check your input and try again.",
			"errors":  errs,
		})
	}

	booking := model.AirportBooking{
		Name:          form.Name,
		Email:         form.Email,
		Phone:         form.Phone,
		Passengers:    form.Passengers,
		PickupAirport: form.PickupAirport,
		Destination:   form.Destination,
		TravelDate:    form.TravelDate,
		Message:       form.Message,
	}

	if err := database.GetDB().Create(&booking).Error; err != nil {
		log.Printf("Could not create airport booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save your booking request. Please try again later.",
		})
	}

	go notifyBooking(booking)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your airport booking request has been sent successfully!",
	})
}

func notifyBooking(booking model.AirportBooking) {
	if email.GlobalEmailService == nil {
		return
	}

	err := email.GlobalEmailService.SendBookingNotification(adminEmail, email.BookingNotificationData{
		Name:          booking.Name,
		Email:         booking.Email,
		Phone:         booking.Phone,
		Passengers:    booking.Passengers,
		PickupAirport: booking.PickupAirport,
		Destination:   booking.Destination,
		TravelDate:    booking.TravelDate,
		Message:       booking.Message,
		SubmittedAt:   booking.SubmittedAt,
	})
	if err != nil {
		log.Printf("Could not send booking notification email: %v", err)
	}
}

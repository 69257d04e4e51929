package controller

import (
	"log"
	"time"

	"bluehawks_backend/internal/model"
	"bluehawks_backend/pkg/config"
	"bluehawks_backend/pkg/database"
	"bluehawks_backend/pkg/email"
	"bluehawks_backend/pkg/forms"
	"bluehawks_backend/pkg/utils/clientip"

	"github.com/gofiber/fiber/v2"
)

// Contact-form rate limit. Bookings carry no limit on purpose; keep
// the knobs per pipeline.
const (
	contactRateLimit  = 3
	contactRateWindow = time.Hour
)

var adminEmail string

func InitContactController(cfg *config.Config) {
	adminEmail = cfg.Admin.Email
}

// SubmitContact runs the public contact pipeline: abuse gate, field
// validation, insert, then detached notification mail. The gate count
// and the insert share one transaction.
func SubmitContact(c *fiber.Ctx) error {
	input := new(forms.ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	ip := clientip.FromRequest(c)

	tx := database.GetDB().Begin()
	if tx.Error != nil {
		log.Printf("Could not begin transaction: %v", tx.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save your message. Please try again later.",
		})
	}

	count, err := model.CountRecentFromIP(tx, ip, contactRateWindow)
	if err != nil {
		tx.Rollback()
		log.Printf("Could not count recent submissions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save your message. Please try again later.",
		})
	}
	if count >= contactRateLimit {
		tx.Rollback()
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Too many submissions from your address. Please try again later.",
		})
	}

	form, errs := forms.ValidateContact(*input)
	if errs != nil {
		tx.Rollback()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Please check your input and try again.",
			"errors":  errs,
		})
	}

	submission := model.ContactSubmission{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		City:      form.City,
		Message:   form.Message,
		IPAddress: ip,
		UserAgent: c.Get("User-Agent"),
	}

	if err := tx.Create(&submission).Error; err != nil {
		tx.Rollback()
		log.Printf("Could not create contact submission: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save your message. Please try again later.",
		})
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Could not commit contact submission: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save your message. Please try again later.",
		})
	}

	go notifyContact(submission)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your message has been sent successfully!",
	})
}

// notifyContact runs detached from the request. The submission is
// already accepted; mail failures are logged and swallowed.
func notifyContact(submission model.ContactSubmission) {
	if email.GlobalEmailService == nil {
		return
	}

	err := email.GlobalEmailService.SendContactNotification(adminEmail, email.ContactNotificationData{
		Name:        submission.Name,
		Email:       submission.Email,
		Phone:       submission.Phone,
		City:        submission.City,
		Message:     submission.Message,
		SubmittedAt: submission.SubmittedAt,
	})
	if err != nil {
		log.Printf("Could not send contact notification email: %v", err)
	}

	err = email.GlobalEmailService.SendContactConfirmation(submission.Email, email.ContactConfirmationData{
		Name:    submission.Name,
		Message: submission.Message,
	})
	if err != nil {
		log.Printf("Could not send contact confirmation email: %v", err)
	}
}

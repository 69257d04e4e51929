package controller

import (
	"log"
	"strconv"
	"strings"

	"bluehawks_backend/internal/model"
	"bluehawks_backend/pkg/database"

	"github.com/gofiber/fiber/v2"
)

var contactSortColumns = map[string]bool{
	"submitted_at": true,
	"name":         true,
	"email":        true,
	"city":         true,
	"is_processed": true,
}

var bookingSortColumns = map[string]bool{
	"submitted_at":   true,
	"name":           true,
	"travel_date":    true,
	"pickup_airport": true,
}

// orderClause turns a "?sort=column [asc|desc]" value into an ORDER BY
// clause. Only allowlisted columns make it into SQL; anything else
// falls back to the default ordering.
func orderClause(raw string, allowed map[string]bool, fallback string) string {
	parts := strings.Fields(raw)
	if len(parts) == 0 || len(parts) > 2 || !allowed[parts[0]] {
		return fallback
	}
	clause := parts[0]
	if len(parts) == 2 {
		dir := strings.ToLower(parts[1])
		if dir != "asc" && dir != "desc" {
			return fallback
		}
		clause += " " + dir
	}
	return clause
}

// ListContactSubmissions is the operator's review queue. Filters:
// ?processed=true|false, ?sort=<column> [asc|desc]; newest first by
// default.
func ListContactSubmissions(c *fiber.Ctx) error {
	var submissions []model.ContactSubmission
	query := database.GetDB().Model(&model.ContactSubmission{})

	if processed := c.Query("processed"); processed != "" {
		value, err := strconv.ParseBool(processed)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid processed filter, expected true or false",
			})
		}
		query = query.Where("is_processed = ?", value)
	}

	query = query.Order(orderClause(c.Query("sort"), contactSortColumns, "submitted_at desc"))

	if err := query.Find(&submissions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch submissions",
		})
	}

	return c.JSON(submissions)
}

// UpdateContactSubmission changes the operator fields of one
// submission. Only is_processed and notes are writable; submitted form
// content stays immutable.
func UpdateContactSubmission(c *fiber.Ctx) error {
	var submission model.ContactSubmission
	if err := database.GetDB().First(&submission, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Submission not found",
		})
	}

	input := struct {
		IsProcessed *bool   `json:"is_processed"`
		Notes       *string `json:"notes"`
	}{}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	updates := map[string]interface{}{}
	if input.IsProcessed != nil {
		updates["is_processed"] = *input.IsProcessed
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nothing to update",
		})
	}

	if err := database.GetDB().Model(&submission).Updates(updates).Error; err != nil {
		log.Printf("Could not update submission %d: %v", submission.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update submission",
		})
	}

	database.GetDB().First(&submission, submission.ID)

	return c.JSON(fiber.Map{
		"message":    "Submission updated successfully",
		"submission": submission,
	})
}

// MarkSubmissionsProcessed is the bulk action: one UPDATE over the
// given ids.
func MarkSubmissionsProcessed(c *fiber.Ctx) error {
	input := struct {
		IDs []uint `json:"ids"`
	}{}

	if err := c.BodyParser(&input); err != nil || len(input.IDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A non-empty list of ids is required",
		})
	}

	result := database.GetDB().Model(&model.ContactSubmission{}).
		Where("id IN ?", input.IDs).
		Update("is_processed", true)
	if result.Error != nil {
		log.Printf("Could not mark submissions processed: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update submissions",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Submissions marked as processed",
		"updated": result.RowsAffected,
	})
}

// ListAirportBookings lists booking requests for the operator,
// newest first by default.
func ListAirportBookings(c *fiber.Ctx) error {
	var bookings []model.AirportBooking
	query := database.GetDB().Model(&model.AirportBooking{}).
		Order(orderClause(c.Query("sort"), bookingSortColumns, "submitted_at desc"))

	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch bookings",
		})
	}

	return c.JSON(bookings)
}

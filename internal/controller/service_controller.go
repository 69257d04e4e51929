package controller

import (
	"log"

	"bluehawks_backend/internal/model"
	"bluehawks_backend/pkg/database"

	"github.com/gofiber/fiber/v2"
)

type ServiceInput struct {
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	Image            string `json:"image"`
	Icon             string `json:"icon"`
	IsActive         *bool  `json:"is_active"`
}

// ListServices returns active services in creation order. This is the
// public catalog listing.
func ListServices(c *fiber.Ctx) error {
	var services []model.Service
	if err := database.GetDB().
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch services",
		})
	}

	return c.JSON(services)
}

// GetServiceBySlug returns one active service for its detail page.
func GetServiceBySlug(c *fiber.Ctx) error {
	var service model.Service
	if err := database.GetDB().
		Where("slug = ? AND is_active = ?", c.Params("slug"), true).
		First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	return c.JSON(service)
}

// ListAllServices is the admin listing; inactive services included.
func ListAllServices(c *fiber.Ctx) error {
	var services []model.Service
	if err := database.GetDB().Order("created_at ASC").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch services",
		})
	}

	return c.JSON(services)
}

func CreateService(c *fiber.Ctx) error {
	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service name is required",
		})
	}

	service := model.Service{
		Name:             input.Name,
		Slug:             input.Slug, // empty slug is derived from the name
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Image:            input.Image,
		Icon:             input.Icon,
		IsActive:         true,
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := database.GetDB().Create(&service).Error; err != nil {
		log.Printf("Could not create service: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create service",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService edits a catalog entry. The slug stays as-is unless the
// operator explicitly sends a new one.
func UpdateService(c *fiber.Ctx) error {
	var service model.Service
	if err := database.GetDB().First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name != "" {
		service.Name = input.Name
	}
	if input.Slug != "" {
		service.Slug = input.Slug
	}
	if input.Description != "" {
		service.Description = input.Description
	}
	if input.ShortDescription != "" {
		service.ShortDescription = input.ShortDescription
	}
	if input.Image != "" {
		service.Image = input.Image
	}
	if input.Icon != "" {
		service.Icon = input.Icon
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := database.GetDB().Save(&service).Error; err != nil {
		log.Printf("Could not update service: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update service",
		})
	}

	return c.JSON(service)
}

func DeleteService(c *fiber.Ctx) error {
	var service model.Service
	if err := database.GetDB().First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	if err := database.GetDB().Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete service",
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

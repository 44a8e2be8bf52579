// handlers/users.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shovetrainer/models"
)

// CreateUser registers a new app user and returns its generated id.
func CreateUser(c *fiber.Ctx) error {
	var user models.AppUser
	if err := c.BodyParser(&user); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := user.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := store.Users.Create(&user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{"id": user.ID})
}

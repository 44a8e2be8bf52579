// handlers/attempts.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shovetrainer/models"
)

// ShareAttempt stores a shared attempt post and returns its generated id.
func ShareAttempt(c *fiber.Ctx) error {
	var attempt models.Attempt
	if err := c.BodyParser(&attempt); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := attempt.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := store.Attempts.Create(&attempt); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store attempt"})
	}

	return c.JSON(fiber.Map{"id": attempt.ID})
}

// ListAttempts returns shared attempts in store order, truncated to limit.
// GET /api/attempts?limit=20
func ListAttempts(c *fiber.Ctx) error {
	limit := limitParam(c, 20)

	attempts, err := store.Attempts.List(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attempts"})
	}

	if attempts == nil {
		attempts = []models.Attempt{}
	}
	return c.JSON(attempts)
}

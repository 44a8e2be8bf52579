// handlers/tutorial.go
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shovetrainer/models"
)

// GetTutorial returns the fixed three-step shove tutorial.
func GetTutorial(c *fiber.Ctx) error {
	return c.JSON(models.TutorialSteps)
}

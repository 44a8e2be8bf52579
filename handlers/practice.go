// handlers/practice.go
package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"shovetrainer/models"
	"shovetrainer/services"
)

// LogPractice stores a practice session and returns the derived progression
// feedback. The session insert, the history read and the achievement inserts
// are separate store calls; a failed achievement write after the session is
// stored is logged and otherwise accepted.
func LogPractice(c *fiber.Ctx) error {
	var session models.PracticeSession
	if err := c.BodyParser(&session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := session.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := store.Sessions.Create(&session); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store practice session"})
	}

	history, err := store.Sessions.ListByUser(session.UserID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load practice history"})
	}

	today := time.Now().UTC()
	feedback := services.BuildFeedback(&session, history, today)

	for _, badge := range feedback.BadgesUnlocked {
		if err := store.Achievements.Create(services.AchievementFor(session.UserID, badge, today)); err != nil {
			log.Printf("Failed to record achievement %q for user %s: %v", badge, session.UserID, err)
		}
	}

	return c.JSON(feedback)
}

// handlers/handlers.go
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"shovetrainer/storage"
)

var store *storage.Store

// Init wires the handler package to its backing store. Call once at startup
// before registering routes.
func Init(s *storage.Store) {
	store = s
}

// RegisterRoutes mounts every route on the app.
func RegisterRoutes(app *fiber.App) {
	app.Get("/", Root)
	app.Get("/test", TestDatabase)
	app.Get("/health", Health)

	api := app.Group("/api")
	api.Get("/tutorial", GetTutorial)
	api.Post("/users", CreateUser)
	api.Post("/practice", LogPractice)
	api.Post("/attempts", ShareAttempt)
	api.Get("/attempts", ListAttempts)
	api.Get("/leaderboard", GetLeaderboard)
}

// Root answers the landing probe.
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Shove Trainer API running"})
}

// Health is the load-balancer health check.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"version":   "1.0.0",
	})
}

func limitParam(c *fiber.Ctx, def int) int {
	limit := c.QueryInt("limit", def)
	if limit < 1 {
		limit = def
	}
	return limit
}

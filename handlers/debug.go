// handlers/debug.go - Store connectivity diagnostics
package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"shovetrainer/database"
)

// TestDatabase reports backend and store connectivity. Not a stable
// contract; intended for deployment troubleshooting.
// GET /test
func TestDatabase(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if db := database.GetDB(); db != nil {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"

		if tables, err := db.Migrator().GetTables(); err == nil {
			if len(tables) > 10 {
				tables = tables[:10]
			}
			response["collections"] = tables
			response["database"] = "✅ Connected & Working"
		} else {
			msg := err.Error()
			if len(msg) > 50 {
				msg = msg[:50]
			}
			response["database"] = "⚠️  Connected but Error: " + msg
		}
	}

	if os.Getenv("DATABASE_URL") != "" {
		response["database_url"] = "✅ Set"
	}
	if os.Getenv("DB_NAME") != "" {
		response["database_name"] = "✅ Set"
	}

	return c.JSON(response)
}

// handlers/leaderboard.go
package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"
)

// LeaderboardEntry is one ranked row of the points leaderboard.
type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
	Rank   int    `json:"rank"`
}

// GetLeaderboard aggregates every practice session into per-user points
// (technique_score plus attempts/10 per session) and returns the top users.
// Ties are broken by user_id ascending so the ordering is stable.
// GET /api/leaderboard?limit=20
func GetLeaderboard(c *fiber.Ctx) error {
	limit := limitParam(c, 20)

	sessions, err := store.Sessions.ListAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	points := make(map[string]int)
	for _, s := range sessions {
		points[s.UserID] += s.TechniqueScore + s.Attempts/10
	}

	entries := make([]LeaderboardEntry, 0, len(points))
	for userID, pts := range points {
		entries = append(entries, LeaderboardEntry{UserID: userID, Points: pts})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return c.JSON(entries)
}

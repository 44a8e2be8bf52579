// database/migrate.go - Database Migration Runner
package database

import (
	"log"
	"shovetrainer/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	if db == nil {
		return
	}
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.AppUser{},
		&models.PracticeSession{},
		&models.Attempt{},
		&models.Achievement{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes for hot query paths
func createIndexes() {
	db := GetDB()

	// Practice sessions are scanned per user for streak computation
	db.Exec("CREATE INDEX IF NOT EXISTS idx_practicesession_user ON practicesession(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_attempt_created ON attempt(created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_achievement_user ON achievement(user_id)")
}

// storage/gorm.go - GORM-backed store implementations
package storage

import (
	"gorm.io/gorm"

	"shovetrainer/database"
	"shovetrainer/models"
)

// NewGormStore returns a Store backed by the shared GORM connection. The
// connection is resolved per call so the server can come up before the
// database does.
func NewGormStore() *Store {
	return &Store{
		Users:        gormUserStore{},
		Sessions:     gormSessionStore{},
		Attempts:     gormAttemptStore{},
		Achievements: gormAchievementStore{},
	}
}

func conn() (*gorm.DB, error) {
	db := database.GetDB()
	if db == nil {
		return nil, ErrUnavailable
	}
	return db, nil
}

type gormUserStore struct{}

func (gormUserStore) Create(user *models.AppUser) error {
	db, err := conn()
	if err != nil {
		return err
	}
	return db.Create(user).Error
}

type gormSessionStore struct{}

func (gormSessionStore) Create(session *models.PracticeSession) error {
	db, err := conn()
	if err != nil {
		return err
	}
	return db.Create(session).Error
}

func (gormSessionStore) ListByUser(userID string) ([]models.PracticeSession, error) {
	db, err := conn()
	if err != nil {
		return nil, err
	}
	var sessions []models.PracticeSession
	if err := db.Where("user_id = ?", userID).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (gormSessionStore) ListAll() ([]models.PracticeSession, error) {
	db, err := conn()
	if err != nil {
		return nil, err
	}
	var sessions []models.PracticeSession
	if err := db.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

type gormAttemptStore struct{}

func (gormAttemptStore) Create(attempt *models.Attempt) error {
	db, err := conn()
	if err != nil {
		return err
	}
	return db.Create(attempt).Error
}

func (gormAttemptStore) List(limit int) ([]models.Attempt, error) {
	db, err := conn()
	if err != nil {
		return nil, err
	}
	var attempts []models.Attempt
	if err := db.Limit(limit).Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

type gormAchievementStore struct{}

func (gormAchievementStore) Create(achievement *models.Achievement) error {
	db, err := conn()
	if err != nil {
		return err
	}
	return db.Create(achievement).Error
}

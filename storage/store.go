// storage/store.go - Typed per-entity stores over the document tables
package storage

import (
	"errors"

	"shovetrainer/models"
)

// ErrUnavailable is returned when the backing store is not connected.
var ErrUnavailable = errors.New("database not available")

// UserStore persists app users.
type UserStore interface {
	Create(user *models.AppUser) error
}

// SessionStore persists and reads practice sessions. Sessions are
// insert-only; there is no update or delete path.
type SessionStore interface {
	Create(session *models.PracticeSession) error
	ListByUser(userID string) ([]models.PracticeSession, error)
	ListAll() ([]models.PracticeSession, error)
}

// AttemptStore persists and reads shared attempt posts.
type AttemptStore interface {
	Create(attempt *models.Attempt) error
	List(limit int) ([]models.Attempt, error)
}

// AchievementStore persists unlocked achievement records.
type AchievementStore interface {
	Create(achievement *models.Achievement) error
}

// Store bundles the per-entity stores handed to the handlers.
type Store struct {
	Users        UserStore
	Sessions     SessionStore
	Attempts     AttemptStore
	Achievements AchievementStore
}

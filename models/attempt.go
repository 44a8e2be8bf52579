// models/attempt.go
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attempt is a shared attempt media post (URL-based), independent of
// practice sessions.
type Attempt struct {
	ID             string `gorm:"primaryKey" json:"id"`
	UserID         string `gorm:"not null;index" json:"user_id"`
	MediaURL       string `gorm:"not null" json:"media_url"`
	Comment        string `json:"comment,omitempty"`
	TechniqueScore *int   `json:"technique_score,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Attempt) TableName() string { return "attempt" }

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a *Attempt) Validate() error {
	if a.UserID == "" {
		return errors.New("user_id is required")
	}
	if a.MediaURL == "" {
		return errors.New("media_url is required")
	}
	if len(a.Comment) > 300 {
		return errors.New("comment must be at most 300 characters")
	}
	if a.TechniqueScore != nil && (*a.TechniqueScore < 0 || *a.TechniqueScore > 100) {
		return errors.New("technique_score must be between 0 and 100")
	}
	return nil
}

// models/session.go
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeSession logs a single practice session for a user.
type PracticeSession struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	UserID         string     `gorm:"not null;index" json:"user_id"`
	DurationMin    int        `gorm:"not null" json:"duration_min"`
	TechniqueScore int        `gorm:"not null" json:"technique_score"` // self- or coach-rated, 0-100
	Attempts       int        `gorm:"not null" json:"attempts"`
	Notes          string     `json:"notes,omitempty"`
	PerformedAt    *time.Time `json:"performed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (PracticeSession) TableName() string { return "practicesession" }

func (s *PracticeSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *PracticeSession) Validate() error {
	if s.UserID == "" {
		return errors.New("user_id is required")
	}
	if s.DurationMin < 1 || s.DurationMin > 240 {
		return errors.New("duration_min must be between 1 and 240")
	}
	if s.TechniqueScore < 0 || s.TechniqueScore > 100 {
		return errors.New("technique_score must be between 0 and 100")
	}
	if s.Attempts < 1 || s.Attempts > 500 {
		return errors.New("attempts must be between 1 and 500")
	}
	if len(s.Notes) > 500 {
		return errors.New("notes must be at most 500 characters")
	}
	return nil
}

// Day returns the UTC calendar date the session counts toward:
// performed_at when set, otherwise the creation time.
func (s *PracticeSession) Day() time.Time {
	t := s.CreatedAt
	if s.PerformedAt != nil {
		t = *s.PerformedAt
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

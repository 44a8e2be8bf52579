// models/achievement.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Achievement is an unlocked badge record for a user. One row is written per
// unlock event; repeat unlocks of the same badge are not deduplicated.
type Achievement struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"not null;index" json:"user_id"`
	Key         string     `gorm:"not null" json:"key"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Achievement) TableName() string { return "achievement" }

func (a *Achievement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

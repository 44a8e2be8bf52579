// models/user.go
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppUser is a registered user of the Shove app.
type AppUser struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null" json:"username"`
	Segment  string `json:"segment,omitempty"` // audience segment: teen, young-pro, enthusiast
	Avatar   string `json:"avatar,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (AppUser) TableName() string { return "appuser" }

func (u *AppUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *AppUser) Validate() error {
	if len(u.Username) < 3 || len(u.Username) > 32 {
		return errors.New("username must be between 3 and 32 characters")
	}
	return nil
}

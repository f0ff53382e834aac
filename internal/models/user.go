package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an authenticated user. Identity is owned by Google; we keep
// a local row keyed by the Google subject so ratings have something to
// reference.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	GoogleID  string    `gorm:"size:64;uniqueIndex;not null" json:"google_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldUnknown is stored when the external source omits a player-count or
// play-time value.
const FieldUnknown = "Unknown"

// Game represents a board game in the catalog.
//
// PlayerCount and PlayTime are text columns holding either a single integer
// ("4"), an inclusive range ("2-4"), or "Unknown" — the format the external
// catalog has always been imported under.
type Game struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	BGGID       string    `gorm:"size:32;uniqueIndex:idx_games_bgg_id,where:bgg_id <> ''" json:"bgg_id,omitempty"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	PlayerCount string    `gorm:"size:32" json:"player_count"`
	PlayTime    string    `gorm:"size:32" json:"play_time"`
	Image       string    `gorm:"size:512" json:"image,omitempty"`
	Thumbnail   string    `gorm:"size:512" json:"thumbnail,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh UUID so games created through any path get an
// identifier without relying on a database default.
func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

package models

import "time"

// Rating records one user's score for one game.
// The primary key is a composite of (UserID, GameID): a user has at most one
// rating per game, and re-submitting overwrites the previous value.
type Rating struct {
	UserID    string    `gorm:"primaryKey;size:36" json:"user_id"`
	GameID    string    `gorm:"primaryKey;size:36" json:"game_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 10" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Game Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

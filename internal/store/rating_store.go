package store

import (
	"context"
	"fmt"

	"meeplevision/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingStore provides GORM-based persistence for ratings.
type RatingStore struct {
	db *gorm.DB
}

func NewRatingStore(db *gorm.DB) *RatingStore {
	return &RatingStore{db: db}
}

// GameRating is one rating of a game together with the rater's identity.
type GameRating struct {
	Rating   int    `json:"rating"`
	GameID   string `json:"game_id"`
	Name     string `json:"name"`
	GoogleID string `json:"google_id"`
}

// RatedGame is a game together with the rating a particular user gave it.
type RatedGame struct {
	models.Game
	Rating int `json:"rating"`
}

// Upsert writes a rating, overwriting any previous rating by the same user
// for the same game.
func (s *RatingStore) Upsert(ctx context.Context, rating *models.Rating) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(rating).Error
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

// ForGame returns all ratings for a game joined with the rater's display name.
func (s *RatingStore) ForGame(ctx context.Context, gameID string) ([]GameRating, error) {
	var ratings []GameRating
	err := s.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("ratings.rating, ratings.game_id, users.name, users.google_id").
		Joins("JOIN users ON users.id = ratings.user_id").
		Where("ratings.game_id = ?", gameID).
		Scan(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("fetch ratings for game: %w", err)
	}
	return ratings, nil
}

// ForUser returns all games a user has rated, best-rated first, ties broken
// by name.
func (s *RatingStore) ForUser(ctx context.Context, userID string) ([]RatedGame, error) {
	var games []RatedGame
	err := s.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("games.*, ratings.rating").
		Joins("JOIN games ON games.id = ratings.game_id").
		Where("ratings.user_id = ?", userID).
		Order("ratings.rating DESC, games.name ASC").
		Scan(&games).Error
	if err != nil {
		return nil, fmt.Errorf("fetch rated games: %w", err)
	}
	return games, nil
}

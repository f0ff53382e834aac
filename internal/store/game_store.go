package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"meeplevision/backend/internal/models"

	"gorm.io/gorm"
)

// GameStore provides GORM-based persistence for games.
type GameStore struct {
	db *gorm.DB
}

func NewGameStore(db *gorm.DB) *GameStore {
	return &GameStore{db: db}
}

// FindByNameExact returns games whose name equals the query, ignoring case.
func (s *GameStore) FindByNameExact(ctx context.Context, name string) ([]models.Game, error) {
	var games []models.Game
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Order("name ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("find games by name: %w", err)
	}
	return games, nil
}

// FindByNameSubstring returns games whose name contains the query, ignoring case.
func (s *GameStore) FindByNameSubstring(ctx context.Context, query string) ([]models.Game, error) {
	var games []models.Game
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("name ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("search games by name: %w", err)
	}
	return games, nil
}

// ByBGGID returns the game imported under the given external identifier, or
// nil when no such game exists.
func (s *GameStore) ByBGGID(ctx context.Context, bggID string) (*models.Game, error) {
	var game models.Game
	err := s.db.WithContext(ctx).Where("bgg_id = ?", bggID).First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find game by bgg id: %w", err)
	}
	return &game, nil
}

// Create inserts a game.
func (s *GameStore) Create(ctx context.Context, game *models.Game) error {
	if err := s.db.WithContext(ctx).Create(game).Error; err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	return nil
}

// CreateImported inserts a game fetched from the external catalog. Two
// concurrent resolutions of the same unseen game can both miss the local
// check and race to insert; the unique index on bgg_id decides the winner,
// and the loser re-fetches and returns the existing row.
func (s *GameStore) CreateImported(ctx context.Context, game *models.Game) (*models.Game, error) {
	err := s.db.WithContext(ctx).Create(game).Error
	if err == nil {
		return game, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) && game.BGGID != "" {
		existing, findErr := s.ByBGGID(ctx, game.BGGID)
		if findErr != nil {
			return nil, findErr
		}
		if existing != nil {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("create imported game: %w", err)
}

// ListByName returns all games ordered by name ascending.
func (s *GameStore) ListByName(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"meeplevision/backend/internal/models"

	"gorm.io/gorm"
)

// UserStore provides GORM-based persistence for users.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// UpsertGoogleUser finds the user for a Google subject, creating the row on
// first login and refreshing name/email on later ones.
func (s *UserStore) UpsertGoogleUser(ctx context.Context, googleID, name, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{GoogleID: googleID, Name: name, Email: email}
		if createErr := s.db.WithContext(ctx).Create(&user).Error; createErr != nil {
			return nil, fmt.Errorf("create user: %w", createErr)
		}
		return &user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by google id: %w", err)
	}

	if user.Name != name || user.Email != email {
		user.Name = name
		user.Email = email
		if saveErr := s.db.WithContext(ctx).Save(&user).Error; saveErr != nil {
			return nil, fmt.Errorf("update user: %w", saveErr)
		}
	}
	return &user, nil
}

// ByID returns the user with the given id.
func (s *UserStore) ByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

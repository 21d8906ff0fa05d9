package service

import (
	"context"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/domain/entity"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	// GetOrCreateUser finds a user by ID or creates a new one if not found.
	GetOrCreateUser(ctx context.Context, userID string) (*entity.User, error)
	// SyncSession upserts the user from verified token claims and refreshes
	// the whitelist flag.
	SyncSession(ctx context.Context, userID, email string, req dto.SessionRequest) (dto.UserResponse, error)
	// GetProfile returns the user with tier information.
	GetProfile(ctx context.Context, userID string) (dto.UserResponse, error)
	// UpdatePreferences patches the user's settings.
	UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (dto.UserResponse, error)
}

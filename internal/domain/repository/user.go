package repository

import (
	"context"

	"rudereminder/internal/domain/entity"
)

// UsageMutator receives the stored usage map and returns the map to store.
type UsageMutator func(usage map[string]int) map[string]int

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// FindByID retrieves a user by the auth provider's id.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// Create creates a new user.
	Create(ctx context.Context, user *entity.User) error
	// Update saves every field of an existing user.
	Update(ctx context.Context, user *entity.User) error
	// UpdateUsage applies fn to the monthly usage map inside one transaction
	// and returns the stored result.
	UpdateUsage(ctx context.Context, id string, fn UsageMutator) (map[string]int, error)
}

// RudePhraseRepository reads the template seed data.
type RudePhraseRepository interface {
	// FindByLevel returns every phrase for a rudeness level.
	FindByLevel(ctx context.Context, level int) ([]entity.RudePhrase, error)
}

// WhitelistRepository stores the premium override list.
type WhitelistRepository interface {
	Add(ctx context.Context, email string) error
	Remove(ctx context.Context, email string) error
	List(ctx context.Context) ([]string, error)
	Contains(ctx context.Context, email string) (bool, error)
}

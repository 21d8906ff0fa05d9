package gormdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rudereminder/internal/domain/entity"
	"rudereminder/internal/domain/repository"
	appErrors "rudereminder/internal/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user by the auth provider's id.
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %s not found: %w", id, appErrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find user %s: %w", id, err)
	}
	return &user, nil
}

// Create creates a new user.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create user %s: %w", user.ID, err)
	}
	return nil
}

// Update updates an existing user.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	// Use Save to update all fields, including zero values
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to update user %s: %w", user.ID, err)
	}
	return nil
}

// UpdateUsage runs a read-modify-write of the usage map inside one transaction.
func (r *userRepository) UpdateUsage(ctx context.Context, id string, fn repository.UsageMutator) (map[string]int, error) {
	var stored map[string]int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entity.User
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			return err
		}
		user.SetUsage(fn(user.Usage()))
		if err := tx.Model(&user).Update("monthly_reminder_usage", user.MonthlyReminderUsage).Error; err != nil {
			return err
		}
		stored = user.Usage()
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %s not found: %w", id, appErrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to update usage of user %s: %w", id, err)
	}
	return stored, nil
}

type rudePhraseRepository struct {
	db *gorm.DB
}

// NewRudePhraseRepository creates a new instance of RudePhraseRepository.
func NewRudePhraseRepository(db *gorm.DB) repository.RudePhraseRepository {
	return &rudePhraseRepository{db: db}
}

// FindByLevel returns every phrase for a rudeness level, in insertion order.
func (r *rudePhraseRepository) FindByLevel(ctx context.Context, level int) ([]entity.RudePhrase, error) {
	var phrases []entity.RudePhrase
	if err := r.db.WithContext(ctx).Where("rudeness_level = ?", level).Order("id asc").Find(&phrases).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find rude phrases for level %d: %w", level, err)
	}
	return phrases, nil
}

type whitelistRepository struct {
	db *gorm.DB
}

// NewWhitelistRepository creates a new instance of WhitelistRepository.
func NewWhitelistRepository(db *gorm.DB) repository.WhitelistRepository {
	return &whitelistRepository{db: db}
}

// Add inserts email; adding an existing email is a no-op.
func (r *whitelistRepository) Add(ctx context.Context, email string) error {
	entry := entity.WhitelistEntry{Email: strings.ToLower(email)}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to whitelist %s: %w", email, err)
	}
	return nil
}

// Remove deletes email from the whitelist.
func (r *whitelistRepository) Remove(ctx context.Context, email string) error {
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).Delete(&entity.WhitelistEntry{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to remove %s from whitelist: %w", email, err)
	}
	return nil
}

// List returns every whitelisted email, sorted.
func (r *whitelistRepository) List(ctx context.Context) ([]string, error) {
	var emails []string
	if err := r.db.WithContext(ctx).Model(&entity.WhitelistEntry{}).Order("email asc").Pluck("email", &emails).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to list whitelist: %w", err)
	}
	return emails, nil
}

// Contains reports whether email is whitelisted.
func (r *whitelistRepository) Contains(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.WhitelistEntry{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error; err != nil {
		return false, fmt.Errorf("🔴 ERROR: failed to check whitelist for %s: %w", email, err)
	}
	return count > 0, nil
}

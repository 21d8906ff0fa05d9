package gormdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rudereminder/internal/domain/entity"
	"rudereminder/internal/domain/repository"
	appErrors "rudereminder/internal/pkg/errors"

	"gorm.io/gorm"
)

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new instance of ReminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// Create creates a new reminder.
func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	if err := r.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to create reminder for user %s: %w", reminder.UserID, err)
	}
	return nil
}

// FindByID retrieves a reminder by its ID.
func (r *reminderRepository) FindByID(ctx context.Context, id string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reminder).Error; err != nil {
		return nil, notFoundOr(err, id)
	}
	return &reminder, nil
}

// FindByIDForUser retrieves a reminder by its ID, scoped to its owner.
func (r *reminderRepository) FindByIDForUser(ctx context.Context, id, userID string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error; err != nil {
		return nil, notFoundOr(err, id)
	}
	return &reminder, nil
}

// FindByUserID retrieves all reminders for a specific user.
func (r *reminderRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("scheduled_for asc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find reminders by user_id %s: %w", userID, err)
	}
	return reminders, nil
}

// FindUpcoming retrieves reminders due by now+window that are neither completed nor fired.
func (r *reminderRepository) FindUpcoming(ctx context.Context, now time.Time, window time.Duration) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	err := r.db.WithContext(ctx).
		Where("completed = ? AND last_fired_at IS NULL AND scheduled_for <= ?", false, now.Add(window).UTC()).
		Order("scheduled_for asc").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find upcoming reminders: %w", err)
	}
	return reminders, nil
}

// editableColumns are the columns Update may write.
var editableColumns = []string{
	"title", "original_message", "context",
	"rudeness_level", "voice_character", "motivational_quote",
	"rude_message", "responses",
	"browser_notification", "voice_notification", "email_notification",
	"attachments", "updated_at",
}

// Update writes the editable fields of an existing reminder.
func (r *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Reminder{ID: reminder.ID}).
		Select(editableColumns).
		Updates(reminder)
	if res.Error != nil {
		return fmt.Errorf("🔴 ERROR: failed to update reminder %s: %w", reminder.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("reminder %s: %w", reminder.ID, appErrors.ErrReminderNotFound)
	}
	return nil
}

// Reschedule moves an incomplete reminder and clears last_fired_at.
func (r *reminderRepository) Reschedule(ctx context.Context, id string, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&entity.Reminder{}).
		Where("id = ? AND completed = ?", id, false).
		Updates(map[string]any{"scheduled_for": at.UTC(), "last_fired_at": nil}).Error
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to reschedule reminder %s: %w", id, err)
	}
	return nil
}

// RecordDelivery stores the message generated at fire time.
func (r *reminderRepository) RecordDelivery(ctx context.Context, id string, rudeMessage string, responses []string, firedAt time.Time) error {
	firedAt = firedAt.UTC()
	res := r.db.WithContext(ctx).
		Model(&entity.Reminder{ID: id}).
		Select("rude_message", "responses", "last_fired_at").
		Updates(&entity.Reminder{RudeMessage: rudeMessage, Responses: responses, LastFiredAt: &firedAt})
	if res.Error != nil {
		return fmt.Errorf("🔴 ERROR: failed to record delivery of reminder %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("reminder %s: %w", id, appErrors.ErrReminderNotFound)
	}
	return nil
}

// Complete marks a reminder completed; completing twice keeps the first CompletedAt.
func (r *reminderRepository) Complete(ctx context.Context, id, userID string, at time.Time) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error; err != nil {
			return err
		}
		if reminder.Completed {
			return nil
		}
		completedAt := at.UTC()
		reminder.Completed = true
		reminder.CompletedAt = &completedAt
		return tx.Save(&reminder).Error
	})
	if err != nil {
		return nil, notFoundOr(err, id)
	}
	return &reminder, nil
}

// Delete deletes a reminder owned by userID.
func (r *reminderRepository) Delete(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Reminder{})
	if res.Error != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete reminder %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("reminder %s: %w", id, appErrors.ErrReminderNotFound)
	}
	return nil
}

func notFoundOr(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("reminder with ID %s not found: %w", id, appErrors.ErrReminderNotFound)
	}
	return fmt.Errorf("🔴 ERROR: failed to find reminder %s: %w", id, err)
}

package repository

import (
	"context"
	"time"

	"rudereminder/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	// Create persists a new reminder.
	Create(ctx context.Context, reminder *entity.Reminder) error
	// FindByID retrieves a reminder regardless of owner (used by the scheduler).
	FindByID(ctx context.Context, id string) (*entity.Reminder, error)
	// FindByIDForUser retrieves a reminder owned by userID.
	FindByIDForUser(ctx context.Context, id, userID string) (*entity.Reminder, error)
	// FindByUserID retrieves all reminders for a user, soonest first.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Reminder, error)
	// FindUpcoming retrieves incomplete, not yet fired reminders due at or before now+window.
	FindUpcoming(ctx context.Context, now time.Time, window time.Duration) ([]*entity.Reminder, error)
	// Update writes the editable content and channel fields. Schedule, completion
	// and delivery state are left untouched.
	Update(ctx context.Context, reminder *entity.Reminder) error
	// Reschedule moves an incomplete reminder to at and clears its fire marker.
	// It is a no-op for completed reminders.
	Reschedule(ctx context.Context, id string, at time.Time) error
	// RecordDelivery stores the freshly generated message and the fire time.
	RecordDelivery(ctx context.Context, id string, rudeMessage string, responses []string, firedAt time.Time) error
	// Complete marks the reminder completed. CompletedAt is only set the first time.
	Complete(ctx context.Context, id, userID string, at time.Time) (*entity.Reminder, error)
	// Delete deletes a reminder owned by userID.
	Delete(ctx context.Context, id, userID string) error
}

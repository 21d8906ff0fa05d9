package service

import (
	"context"

	"rudereminder/internal/application/dto"
)

// ReminderService defines the interface for reminder-related business logic.
// Every operation is scoped to the owning user.
type ReminderService interface {
	// CreateReminder validates, personalizes, persists and schedules a reminder.
	// Multi-day requests create one reminder per selected weekday.
	CreateReminder(ctx context.Context, userID string, req dto.CreateReminderRequest) ([]dto.ReminderResponse, error)
	// ListReminders returns the user's reminders, soonest first.
	ListReminders(ctx context.Context, userID string) ([]dto.ReminderResponse, error)
	// GetReminder retrieves a reminder by its ID.
	GetReminder(ctx context.Context, userID, reminderID string) (dto.ReminderResponse, error)
	// UpdateReminder applies a patch and re-arms the scheduler.
	UpdateReminder(ctx context.Context, userID, reminderID string, req dto.UpdateReminderRequest) (dto.ReminderResponse, error)
	// DeleteReminder deletes a reminder and disarms its timers.
	DeleteReminder(ctx context.Context, userID, reminderID string) error
	// CompleteReminder marks a reminder completed and disarms its timers. Idempotent.
	CompleteReminder(ctx context.Context, userID, reminderID string) (dto.ReminderResponse, error)
	// RegenerateResponse replaces the reminder's message with fresh variants.
	RegenerateResponse(ctx context.Context, userID, reminderID string) (dto.ReminderResponse, error)
	// MoreResponses returns extra variants without persisting them. refresh
	// yields new output on every call; otherwise output is stable per reminder.
	MoreResponses(ctx context.Context, userID, reminderID string, refresh bool) (dto.MoreResponsesResponse, error)
}
